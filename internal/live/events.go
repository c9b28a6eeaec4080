package live

import "time"

const (
	EventRegistrationCreated = "registration.created"
	EventPaymentUpdated      = "payment.updated"
)

type RegistrationEvent struct {
	Type           string    `json:"type"`
	RegistrationID string    `json:"registration_id"`
	EventID        string    `json:"event_id"`
	EventTitle     string    `json:"event_title,omitempty"`
	Name           string    `json:"name,omitempty"`
	PaymentStatus  string    `json:"payment_status,omitempty"`
	At             time.Time `json:"at"`
}
