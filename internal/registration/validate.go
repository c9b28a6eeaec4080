package registration

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Input carries the trimmed registration form fields.
type Input struct {
	Name          string `validate:"required,max=100"`
	Email         string `validate:"required,email,max=255"`
	Phone         string `validate:"required,min=10,max=15"`
	College       string `validate:"required,max=200"`
	TransactionID string `validate:"required,max=100"`
	DepartmentID  string `validate:"required"`
	EventID       string `validate:"required"`
}

// Trim normalizes every field before validation.
func (in *Input) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.College = strings.TrimSpace(in.College)
	in.TransactionID = strings.TrimSpace(in.TransactionID)
	in.DepartmentID = strings.TrimSpace(in.DepartmentID)
	in.EventID = strings.TrimSpace(in.EventID)
}

// Validate returns a per-field error map, empty when the input is valid.
func (in *Input) Validate() map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(in)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			errs["name"] = "Name is required"
		case "Email":
			errs["email"] = "Invalid email"
		case "Phone":
			errs["phone"] = "Invalid phone number"
		case "College":
			errs["college"] = "College is required"
		case "TransactionID":
			errs["transaction_id"] = "Transaction ID is required"
		case "DepartmentID":
			errs["department_id"] = "Please select a department"
		case "EventID":
			errs["event_id"] = "Please select an event"
		}
	}
	return errs
}

const maxScreenshotBytes = 5 << 20 // 5 MiB

// CheckScreenshot enforces the upload constraints: JPEG/PNG only, at
// most 5 MiB. Returns an inline error message, empty when acceptable.
func CheckScreenshot(contentType string, size int64) string {
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "Screenshot must be a JPEG or PNG image"
	}
	if size > maxScreenshotBytes {
		return "Screenshot must be 5 MB or smaller"
	}
	if size == 0 {
		return "Screenshot is required"
	}
	return ""
}
