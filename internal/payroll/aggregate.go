package payroll

import (
	"fmt"

	"github.com/Tiliavir/trivial-payroll/internal/model"
)

// AllWagesFor sums the wages of every date in the clock-in log, in log order.
// A date clocked in twice is paid twice.
func AllWagesFor(r *model.EmployeeRecord) (float64, error) {
	var total float64
	for _, ev := range r.TimeInEvents {
		w, err := WagesEarnedOnDate(r, ev.Date)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// CalculatePayroll sums AllWagesFor over the roster. An empty roster pays 0.
func CalculatePayroll(records []*model.EmployeeRecord) (float64, error) {
	var total float64
	for i, r := range records {
		w, err := AllWagesFor(r)
		if err != nil {
			return 0, fmt.Errorf("employee %d: %w", i, err)
		}
		total += w
	}
	return total, nil
}
