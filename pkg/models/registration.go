package models

import "time"

// Payment status values allowed on a registration.
const (
	PaymentPending  = "pending"
	PaymentVerified = "verified"
	PaymentRejected = "rejected"
)

type Registration struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	DepartmentID  string    `json:"department_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ScreenshotURL string    `json:"screenshot_url,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`

	// Populated on joined reads only.
	EventTitle     string `json:"event_title,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	DepartmentCode string `json:"department_code,omitempty"`
}
