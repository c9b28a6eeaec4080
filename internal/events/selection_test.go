package events

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectionCascade(t *testing.T) {
	var s Selection

	s = s.SelectDepartment("dept-1")
	if diff := cmp.Diff(Selection{DepartmentID: "dept-1"}, s); diff != "" {
		t.Fatalf("after department (-want +got):\n%s", diff)
	}

	s, err := s.SelectEvent("event-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Selection{DepartmentID: "dept-1", EventID: "event-1"}, s); diff != "" {
		t.Fatalf("after event (-want +got):\n%s", diff)
	}

	// Switching department must clear the chosen event.
	s = s.SelectDepartment("dept-2")
	if diff := cmp.Diff(Selection{DepartmentID: "dept-2"}, s); diff != "" {
		t.Errorf("department switch (-want +got):\n%s", diff)
	}
}

func TestSelectEventRequiresDepartment(t *testing.T) {
	var s Selection

	got, err := s.SelectEvent("event-1")
	if !errors.Is(err, ErrNoDepartment) {
		t.Fatalf("err = %v, want ErrNoDepartment", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("selection should be unchanged on error (-want +got):\n%s", diff)
	}
}

func TestResolved(t *testing.T) {
	s := Resolved("dept-1", "event-1")
	want := Selection{DepartmentID: "dept-1", EventID: "event-1"}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("resolved (-want +got):\n%s", diff)
	}
}
