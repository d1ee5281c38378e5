package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/trivial-payroll/internal/model"
)

// DayLine is the payroll breakdown of a single clock-in date.
type DayLine struct {
	Date    string  `json:"date"`
	InHour  int     `json:"in_hour"`
	OutHour int     `json:"out_hour"`
	Hours   float64 `json:"hours"`
	Wages   float64 `json:"wages"`
}

// EmployeeSummary is one employee's section of a payroll report.
type EmployeeSummary struct {
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	PayPerHour float64   `json:"pay_per_hour"`
	Days       []DayLine `json:"days"`
	TotalHours float64   `json:"total_hours"`
	TotalWages float64   `json:"total_wages"`
}

// Report is a full payroll run across a roster.
type Report struct {
	Employees []EmployeeSummary `json:"employees"`
	Total     float64           `json:"total"`
}

// Summarize builds the per-date breakdown for one employee. Its TotalWages
// equals AllWagesFor(r).
func Summarize(r *model.EmployeeRecord) (EmployeeSummary, error) {
	s := EmployeeSummary{
		Name:       r.FullName(),
		Title:      r.Title,
		PayPerHour: r.PayPerHour,
		Days:       make([]DayLine, 0, len(r.TimeInEvents)),
	}
	for _, ev := range r.TimeInEvents {
		hours, err := HoursWorkedOnDate(r, ev.Date)
		if err != nil {
			return EmployeeSummary{}, err
		}
		// Both lookups succeeded inside HoursWorkedOnDate.
		in, _ := findEvent(r.TimeInEvents, ev.Date)
		out, _ := findEvent(r.TimeOutEvents, ev.Date)
		wages := hours * r.PayPerHour
		s.Days = append(s.Days, DayLine{
			Date:    ev.Date,
			InHour:  in.Hour,
			OutHour: out.Hour,
			Hours:   hours,
			Wages:   wages,
		})
		s.TotalHours += hours
		s.TotalWages += wages
	}
	return s, nil
}

// BuildReport summarizes every employee. Its Total equals CalculatePayroll(records).
func BuildReport(records []*model.EmployeeRecord) (Report, error) {
	rep := Report{Employees: make([]EmployeeSummary, 0, len(records))}
	for i, r := range records {
		s, err := Summarize(r)
		if err != nil {
			return Report{}, fmt.Errorf("employee %d: %w", i, err)
		}
		rep.Employees = append(rep.Employees, s)
		rep.Total += s.TotalWages
	}
	return rep, nil
}

// FormatMoney rounds an amount half away from zero to two decimal places.
func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
