package models

import "time"

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Event struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	EventDate    string    `json:"event_date,omitempty"` // YYYY-MM-DD, empty when TBA
	Venue        string    `json:"venue,omitempty"`
	Fee          int       `json:"fee"`
	CreatedAt    time.Time `json:"created_at"`

	// Populated on joined reads only.
	DepartmentName string `json:"department_name,omitempty"`
	DepartmentCode string `json:"department_code,omitempty"`
}
