package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

var inCmd = &cobra.Command{
	Use:     "in <first> <family> \"<date> <hour>\"",
	Short:   "Record a clock-in, e.g. tpr in Byron Poodle \"2015-02-28 1400\"",
	Args:    cobra.ExactArgs(3),
	Example: `  tpr in Byron Poodle "2015-02-28 1400"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClock(model.TimeIn, args)
	},
}

var outCmd = &cobra.Command{
	Use:     "out <first> <family> \"<date> <hour>\"",
	Short:   "Record a clock-out, e.g. tpr out Byron Poodle \"2015-02-28 1700\"",
	Args:    cobra.ExactArgs(3),
	Example: `  tpr out Byron Poodle "2015-02-28 1700"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClock(model.TimeOut, args)
	},
}

func runClock(kind model.EventKind, args []string) error {
	r, err := storage.RecordEvent(timesheetPath, args[0], args[1], kind, args[2])
	if err != nil {
		fail(err)
	}

	events := r.TimeInEvents
	verb := "in"
	if kind == model.TimeOut {
		events = r.TimeOutEvents
		verb = "out"
	}
	ev := events[len(events)-1]
	fmt.Printf("Clocked %s %s on %s at %s\n", verb, r.FullName(), ev.Date, timecalc.FormatMilitary(ev.Hour))
	return nil
}
