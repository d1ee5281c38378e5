package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/config"
	"github.com/Tiliavir/trivial-payroll/internal/logger"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
)

var (
	timesheetFlag string
	verboseFlag   bool

	// cfg and timesheetPath are resolved once in PersistentPreRunE.
	cfg           config.Config
	timesheetPath string
)

var rootCmd = &cobra.Command{
	Use:   "tpr",
	Short: "Trivial Payroll – wages from clock-in/clock-out logs",
	Long: `tpr is a single-binary, file-based payroll calculator.
Employees and their clock events are stored in one human-readable JSON
timesheet (~/.tpr/timesheet.json by default).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&timesheetFlag, "file", "", "Timesheet file (default from config or ~/.tpr/timesheet.json)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(wagesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	logger.Setup(verboseFlag)

	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("using default configuration")
	}

	switch {
	case timesheetFlag != "":
		timesheetPath = timesheetFlag
	case cfg.Timesheet != "":
		timesheetPath = cfg.Timesheet
	default:
		timesheetPath, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	log.Debug().Str("timesheet", timesheetPath).Msg("resolved timesheet")
	return nil
}

// validateFormat matches param case-insensitively against the valid options.
func validateFormat(param string, validOptions []string) (string, error) {
	clean := strings.TrimSpace(param)
	for _, option := range validOptions {
		if strings.EqualFold(clean, option) {
			return option, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: expected one of: %s", clean, strings.Join(validOptions, ", "))
}

// fail prints err and exits with the storage/calculation error code.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
