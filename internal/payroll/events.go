package payroll

import (
	"fmt"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

// CreateTimeInEvent appends a clock-in parsed from "DATE HOUR" and returns r.
func CreateTimeInEvent(r *model.EmployeeRecord, dateTime string) (*model.EmployeeRecord, error) {
	ev, err := parseEvent(model.TimeIn, dateTime)
	if err != nil {
		return r, err
	}
	r.TimeInEvents = append(r.TimeInEvents, ev)
	return r, nil
}

// CreateTimeOutEvent appends a clock-out parsed from "DATE HOUR" and returns r.
func CreateTimeOutEvent(r *model.EmployeeRecord, dateTime string) (*model.EmployeeRecord, error) {
	ev, err := parseEvent(model.TimeOut, dateTime)
	if err != nil {
		return r, err
	}
	r.TimeOutEvents = append(r.TimeOutEvents, ev)
	return r, nil
}

// RecordEvent dispatches to CreateTimeInEvent or CreateTimeOutEvent by kind.
func RecordEvent(r *model.EmployeeRecord, kind model.EventKind, dateTime string) (*model.EmployeeRecord, error) {
	switch kind {
	case model.TimeIn:
		return CreateTimeInEvent(r, dateTime)
	case model.TimeOut:
		return CreateTimeOutEvent(r, dateTime)
	}
	return r, fmt.Errorf("unknown event kind %q", kind)
}

func parseEvent(kind model.EventKind, dateTime string) (model.TimeEvent, error) {
	date, token := timecalc.SplitDateTime(dateTime)
	hour, err := timecalc.ParseHour(token)
	if err != nil {
		return model.TimeEvent{}, fmt.Errorf("%s %q: %v: %w", kind, dateTime, err, ErrMalformedNumber)
	}
	return model.TimeEvent{Kind: kind, Date: date, Hour: hour}, nil
}
