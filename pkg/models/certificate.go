package models

import "time"

type Certificate struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	ParticipantName  string    `json:"participant_name"`
	ParticipantEmail string    `json:"participant_email"`
	CertificateURL   string    `json:"certificate_url"`
	RegistrationID   string    `json:"registration_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	EventTitle string `json:"event_title,omitempty"`
}
