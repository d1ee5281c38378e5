package payroll

import (
	"fmt"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

// findEvent returns the first event in log whose date equals date.
func findEvent(log []model.TimeEvent, date string) (model.TimeEvent, bool) {
	for _, ev := range log {
		if ev.Date == date {
			return ev, true
		}
	}
	return model.TimeEvent{}, false
}

// HoursWorkedOnDate returns (out.Hour - in.Hour) / 100 for the first
// clock-in and clock-out recorded on date.
func HoursWorkedOnDate(r *model.EmployeeRecord, date string) (float64, error) {
	in, ok := findEvent(r.TimeInEvents, date)
	if !ok {
		return 0, fmt.Errorf("%s: %s on %q: %w", r.FullName(), model.TimeIn, date, ErrDateNotFound)
	}
	out, ok := findEvent(r.TimeOutEvents, date)
	if !ok {
		return 0, fmt.Errorf("%s: %s on %q: %w", r.FullName(), model.TimeOut, date, ErrDateNotFound)
	}
	return timecalc.HoursBetween(in.Hour, out.Hour), nil
}

// WagesEarnedOnDate returns the hours worked on date times the hourly rate.
func WagesEarnedOnDate(r *model.EmployeeRecord, date string) (float64, error) {
	hours, err := HoursWorkedOnDate(r, date)
	if err != nil {
		return 0, err
	}
	return hours * r.PayPerHour, nil
}
