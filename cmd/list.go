package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/roster"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees on the timesheet",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "md", "Output format: md, csv (csv can be re-imported)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := validateFormat(listFormat, []string{"md", "csv"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ts, err := storage.Load(timesheetPath)
	if err != nil {
		fail(err)
	}

	if format == "csv" {
		if err := roster.WriteCSV(os.Stdout, rosterEntries(ts.Employees)); err != nil {
			fail(err)
		}
		return nil
	}
	printList(os.Stdout, ts.Employees)
	return nil
}

func rosterEntries(records []*model.EmployeeRecord) []roster.Entry {
	entries := make([]roster.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, roster.Entry{
			FirstName:  r.FirstName,
			FamilyName: r.FamilyName,
			Title:      r.Title,
			PayPerHour: roster.FormatRate(r.PayPerHour),
		})
	}
	return entries
}

// printList prints one line per employee with rate and event counts.
func printList(w io.Writer, records []*model.EmployeeRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No employees found.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%-24s%-20s%8s/h  in:%d out:%d\n",
			r.FullName(), r.Title, roster.FormatRate(r.PayPerHour),
			len(r.TimeInEvents), len(r.TimeOutEvents))
	}
}
