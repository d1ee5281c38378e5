package model

// EventKind tags a TimeEvent as a clock-in or clock-out.
type EventKind string

const (
	TimeIn  EventKind = "TimeIn"
	TimeOut EventKind = "TimeOut"
)

// TimeEvent is a single clock-in or clock-out. Date is an opaque key that is
// only ever compared for equality; Hour is a military time such as 1400.
type TimeEvent struct {
	Kind EventKind `json:"type"`
	Date string    `json:"date"`
	Hour int       `json:"hour"`
}

// EmployeeRecord holds an employee's rate and both attendance logs.
// The logs are append-only and matched against each other by date, not by position.
type EmployeeRecord struct {
	FirstName     string      `json:"first_name"`
	FamilyName    string      `json:"family_name"`
	Title         string      `json:"title"`
	PayPerHour    float64     `json:"pay_per_hour"`
	TimeInEvents  []TimeEvent `json:"time_in_events"`
	TimeOutEvents []TimeEvent `json:"time_out_events"`
}

// FullName returns "First Family", trimming the gap when a name part is empty.
func (r *EmployeeRecord) FullName() string {
	switch {
	case r.FamilyName == "":
		return r.FirstName
	case r.FirstName == "":
		return r.FamilyName
	}
	return r.FirstName + " " + r.FamilyName
}

// Timesheet is the top-level structure stored in the timesheet JSON file.
type Timesheet struct {
	Employees []*EmployeeRecord `json:"employees"`
}

// Find returns the first employee with the given first and family name, or nil.
func (ts *Timesheet) Find(firstName, familyName string) *EmployeeRecord {
	for _, e := range ts.Employees {
		if e.FirstName == firstName && e.FamilyName == familyName {
			return e
		}
	}
	return nil
}
