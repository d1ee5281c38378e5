package payroll

import "errors"

var (
	// ErrDateNotFound is returned when a date has no matching event in one of the logs.
	ErrDateNotFound = errors.New("no event for date")
	// ErrMalformedNumber is returned when a pay rate or hour token is not a number.
	ErrMalformedNumber = errors.New("malformed number")
)
