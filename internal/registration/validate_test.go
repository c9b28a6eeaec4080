package registration

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validInput() Input {
	return Input{
		Name:          "Asha Kumar",
		Email:         "asha@college.edu",
		Phone:         "9876543210",
		College:       "Govt Engineering College",
		TransactionID: "TXN42",
		DepartmentID:  "dept-1",
		EventID:       "event-1",
	}
}

func TestValidateOK(t *testing.T) {
	in := validInput()
	in.Trim()
	if errs := in.Validate(); len(errs) != 0 {
		t.Errorf("valid input rejected: %v", errs)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   map[string]string
	}{
		{
			name:   "missing name",
			mutate: func(in *Input) { in.Name = "" },
			want:   map[string]string{"name": "Name is required"},
		},
		{
			name:   "bad email",
			mutate: func(in *Input) { in.Email = "not-an-email" },
			want:   map[string]string{"email": "Invalid email"},
		},
		{
			name:   "phone too short",
			mutate: func(in *Input) { in.Phone = "12345" },
			want:   map[string]string{"phone": "Invalid phone number"},
		},
		{
			name:   "missing college",
			mutate: func(in *Input) { in.College = "" },
			want:   map[string]string{"college": "College is required"},
		},
		{
			name:   "missing transaction id",
			mutate: func(in *Input) { in.TransactionID = "" },
			want:   map[string]string{"transaction_id": "Transaction ID is required"},
		},
		{
			name:   "missing department",
			mutate: func(in *Input) { in.DepartmentID = "" },
			want:   map[string]string{"department_id": "Please select a department"},
		},
		{
			name:   "missing event",
			mutate: func(in *Input) { in.EventID = "" },
			want:   map[string]string{"event_id": "Please select an event"},
		},
		{
			name:   "name too long",
			mutate: func(in *Input) { in.Name = strings.Repeat("a", 101) },
			want:   map[string]string{"name": "Name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if diff := cmp.Diff(tt.want, in.Validate()); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	in := Input{
		Name:          "  Asha  ",
		Email:         " ASHA@College.EDU ",
		Phone:         " 9876543210 ",
		College:       " GEC ",
		TransactionID: " TXN42 ",
		DepartmentID:  " dept-1 ",
		EventID:       " event-1 ",
	}
	in.Trim()

	want := Input{
		Name:          "Asha",
		Email:         "asha@college.edu",
		Phone:         "9876543210",
		College:       "GEC",
		TransactionID: "TXN42",
		DepartmentID:  "dept-1",
		EventID:       "event-1",
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("trim mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckScreenshot(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"jpeg ok", "image/jpeg", 1024, false},
		{"png ok", "image/png", maxScreenshotBytes, false},
		{"pdf rejected", "application/pdf", 1024, true},
		{"gif rejected", "image/gif", 1024, true},
		{"too large", "image/png", maxScreenshotBytes + 1, true},
		{"empty file", "image/jpeg", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := CheckScreenshot(tt.contentType, tt.size)
			if (msg != "") != tt.wantErr {
				t.Errorf("CheckScreenshot(%q, %d) = %q, wantErr=%v", tt.contentType, tt.size, msg, tt.wantErr)
			}
		})
	}
}
