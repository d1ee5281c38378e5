package payroll_test

import (
	"errors"
	"testing"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/payroll"
)

func TestCreateTimeInEvent(t *testing.T) {
	r := payroll.NewEmployeeRecord("Byron", "Poodle", "Mascot", 3)
	updated, err := payroll.CreateTimeInEvent(r, "2014-02-28 1400")
	if err != nil {
		t.Fatalf("CreateTimeInEvent: %v", err)
	}
	if updated != r {
		t.Error("CreateTimeInEvent did not return the same record")
	}
	if len(r.TimeInEvents) != 1 {
		t.Fatalf("TimeInEvents = %d, want 1", len(r.TimeInEvents))
	}
	want := model.TimeEvent{Kind: model.TimeIn, Date: "2014-02-28", Hour: 1400}
	if got := r.TimeInEvents[0]; got != want {
		t.Errorf("event = %+v, want %+v", got, want)
	}
	if len(r.TimeOutEvents) != 0 {
		t.Errorf("TimeOutEvents = %d, want 0", len(r.TimeOutEvents))
	}
}

func TestCreateTimeOutEvent(t *testing.T) {
	r := payroll.NewEmployeeRecord("Byron", "Poodle", "Mascot", 3)
	updated, err := payroll.CreateTimeOutEvent(r, "2015-02-28 1700")
	if err != nil {
		t.Fatalf("CreateTimeOutEvent: %v", err)
	}
	if updated != r {
		t.Error("CreateTimeOutEvent did not return the same record")
	}
	want := model.TimeEvent{Kind: model.TimeOut, Date: "2015-02-28", Hour: 1700}
	if len(r.TimeOutEvents) != 1 || r.TimeOutEvents[0] != want {
		t.Errorf("TimeOutEvents = %+v, want [%+v]", r.TimeOutEvents, want)
	}
}

func TestCreateTimeInEventAppends(t *testing.T) {
	r := payroll.NewEmployeeRecord("Byron", "Poodle", "Mascot", 3)
	for _, dt := range []string{"2015-03-01 1400", "2015-02-28 0900", "2015-03-01 1500"} {
		if _, err := payroll.CreateTimeInEvent(r, dt); err != nil {
			t.Fatalf("CreateTimeInEvent(%q): %v", dt, err)
		}
	}
	wantDates := []string{"2015-03-01", "2015-02-28", "2015-03-01"}
	if len(r.TimeInEvents) != len(wantDates) {
		t.Fatalf("TimeInEvents = %d, want %d", len(r.TimeInEvents), len(wantDates))
	}
	for i, d := range wantDates {
		if r.TimeInEvents[i].Date != d {
			t.Errorf("TimeInEvents[%d].Date = %q, want %q", i, r.TimeInEvents[i].Date, d)
		}
	}
	if last := r.TimeInEvents[2].Hour; last != 1500 {
		t.Errorf("last hour = %d, want 1500", last)
	}
}

func TestCreateTimeEventMalformedHour(t *testing.T) {
	tests := []string{
		"2015-02-28",
		"2015-02-28 noon",
		"2015-02-28 14h00",
		"",
	}
	for _, dt := range tests {
		r := payroll.NewEmployeeRecord("Byron", "Poodle", "Mascot", 3)
		_, err := payroll.CreateTimeInEvent(r, dt)
		if !errors.Is(err, payroll.ErrMalformedNumber) {
			t.Errorf("CreateTimeInEvent(%q) error = %v, want ErrMalformedNumber", dt, err)
		}
		if len(r.TimeInEvents) != 0 {
			t.Errorf("CreateTimeInEvent(%q) appended despite error", dt)
		}
		_, err = payroll.CreateTimeOutEvent(r, dt)
		if !errors.Is(err, payroll.ErrMalformedNumber) {
			t.Errorf("CreateTimeOutEvent(%q) error = %v, want ErrMalformedNumber", dt, err)
		}
	}
}

func TestRecordEvent(t *testing.T) {
	r := payroll.NewEmployeeRecord("Mo", "Fo", "Manager", 10)
	if _, err := payroll.RecordEvent(r, model.TimeIn, "2015-02-28 0900"); err != nil {
		t.Fatal(err)
	}
	if _, err := payroll.RecordEvent(r, model.TimeOut, "2015-02-28 1700"); err != nil {
		t.Fatal(err)
	}
	if len(r.TimeInEvents) != 1 || len(r.TimeOutEvents) != 1 {
		t.Fatalf("logs = %d/%d, want 1/1", len(r.TimeInEvents), len(r.TimeOutEvents))
	}
	if _, err := payroll.RecordEvent(r, model.EventKind("Break"), "2015-02-28 1200"); err == nil {
		t.Error("expected error for unknown event kind")
	}
}
