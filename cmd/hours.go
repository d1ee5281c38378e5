package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/payroll"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

var hoursCmd = &cobra.Command{
	Use:   "hours <first> <family> <date>",
	Short: "Show hours worked by an employee on a date",
	Args:  cobra.ExactArgs(3),
	RunE:  runHours,
}

var wagesCmd = &cobra.Command{
	Use:   "wages <first> <family> [date]",
	Short: "Show wages earned on a date, or in total when no date is given",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runWages,
}

func runHours(cmd *cobra.Command, args []string) error {
	r, err := storage.FindEmployee(timesheetPath, args[0], args[1])
	if err != nil {
		fail(err)
	}
	hours, err := payroll.HoursWorkedOnDate(r, args[2])
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s worked %s on %s\n", r.FullName(), timecalc.FormatHours(hours), args[2])
	return nil
}

func runWages(cmd *cobra.Command, args []string) error {
	r, err := storage.FindEmployee(timesheetPath, args[0], args[1])
	if err != nil {
		fail(err)
	}

	if len(args) == 2 {
		total, err := payroll.AllWagesFor(r)
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s earned %s %s in total\n", r.FullName(), payroll.FormatMoney(total), cfg.Currency)
		return nil
	}

	wages, err := payroll.WagesEarnedOnDate(r, args[2])
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s earned %s %s on %s\n", r.FullName(), payroll.FormatMoney(wages), cfg.Currency, args[2])
	return nil
}
