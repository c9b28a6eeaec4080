package events

import "errors"

// ErrNoDepartment rejects choosing an event before a department.
var ErrNoDepartment = errors.New("select a department first")

// Selection models the department→event cascade on the registration
// form. Transitions return a new value instead of mutating, so the
// rules stay explicit: picking a department always clears the event,
// and an event can only be picked under a chosen department.
type Selection struct {
	DepartmentID string `json:"department_id"`
	EventID      string `json:"event_id"`
}

func (s Selection) SelectDepartment(departmentID string) Selection {
	return Selection{DepartmentID: departmentID}
}

func (s Selection) SelectEvent(eventID string) (Selection, error) {
	if s.DepartmentID == "" {
		return s, ErrNoDepartment
	}
	return Selection{DepartmentID: s.DepartmentID, EventID: eventID}, nil
}

// Resolved sets both sides at once, for events arriving pre-selected
// from an external link once their department is looked up.
func Resolved(departmentID, eventID string) Selection {
	return Selection{DepartmentID: departmentID, EventID: eventID}
}
