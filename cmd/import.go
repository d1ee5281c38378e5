package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/payroll"
	"github.com/Tiliavir/trivial-payroll/internal/roster"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <roster.csv|roster.yaml>",
	Short: "Add employees from a roster file",
	Long: `Add employees from a CSV or YAML roster with the columns
first_name, family_name, title and pay_per_hour.
Employees already on the timesheet (same first and family name) are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	rows, err := roster.ReadFile(args[0])
	if err != nil {
		fail(err)
	}

	records, err := payroll.CreateEmployeeRecords(rows)
	if err != nil {
		fail(fmt.Errorf("%s: %w", args[0], err))
	}
	log.Debug().Int("rows", len(rows)).Str("roster", args[0]).Msg("roster parsed")

	added, err := storage.AddEmployees(timesheetPath, records)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Imported %d of %d employees into %s\n", added, len(records), timesheetPath)
	return nil
}
