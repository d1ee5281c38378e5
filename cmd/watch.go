package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/watch"
)

var watchFormat string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-print the payroll report whenever the timesheet changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "Output format: md, csv, json (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	format := resolveFormat(watchFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := &watch.Watcher{
		Path:     timesheetPath,
		Debounce: watch.DefaultDebounce,
		OnChange: func(ts model.Timesheet) error {
			fmt.Println()
			return writeReport(os.Stdout, ts, format, cfg.Currency)
		},
	}
	if err := w.Run(ctx); err != nil {
		fail(err)
	}
	return nil
}
