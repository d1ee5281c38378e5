package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-payroll/internal/config"
	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/payroll"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the payroll for every employee on the timesheet",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Output format: md, csv, json (default from config)")
}

// resolveFormat returns the --format flag or the configured default.
func resolveFormat(flag string) string {
	format := flag
	if format == "" {
		format = cfg.ReportFormat
	}
	valid, err := validateFormat(format, config.ReportFormats)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return valid
}

func runReport(cmd *cobra.Command, args []string) error {
	format := resolveFormat(reportFormat)

	ts, err := storage.Load(timesheetPath)
	if err != nil {
		fail(err)
	}
	if err := writeReport(os.Stdout, ts, format, cfg.Currency); err != nil {
		fail(err)
	}
	return nil
}

// writeReport builds the payroll report for ts and renders it in format.
func writeReport(w io.Writer, ts model.Timesheet, format, currency string) error {
	rep, err := payroll.BuildReport(ts.Employees)
	if err != nil {
		return err
	}
	switch format {
	case "csv":
		return renderCSV(w, rep)
	case "json":
		return renderJSON(w, rep)
	default: // md
		renderMarkdown(w, rep, currency)
		return nil
	}
}

// reportLine is one CSV row of the payroll report.
type reportLine struct {
	Employee string `csv:"employee"`
	Title    string `csv:"title"`
	Date     string `csv:"date"`
	In       string `csv:"in"`
	Out      string `csv:"out"`
	Hours    string `csv:"hours"`
	Rate     string `csv:"pay_per_hour"`
	Wages    string `csv:"wages"`
}

func renderCSV(w io.Writer, rep payroll.Report) error {
	var lines []reportLine
	for _, e := range rep.Employees {
		for _, d := range e.Days {
			lines = append(lines, reportLine{
				Employee: e.Name,
				Title:    e.Title,
				Date:     d.Date,
				In:       timecalc.FormatMilitary(d.InHour),
				Out:      timecalc.FormatMilitary(d.OutHour),
				Hours:    fmt.Sprint(d.Hours),
				Rate:     payroll.FormatMoney(e.PayPerHour),
				Wages:    payroll.FormatMoney(d.Wages),
			})
		}
	}
	if lines == nil {
		lines = []reportLine{}
	}
	if err := gocsv.Marshal(lines, w); err != nil {
		return fmt.Errorf("gocsv.Marshal: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, rep payroll.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderMarkdown(w io.Writer, rep payroll.Report, currency string) {
	if len(rep.Employees) == 0 {
		fmt.Fprintln(w, "No employees found.")
		return
	}
	for _, e := range rep.Employees {
		fmt.Fprintf(w, "%s (%s, %s %s/h)\n", e.Name, e.Title, payroll.FormatMoney(e.PayPerHour), currency)
		for _, d := range e.Days {
			fmt.Fprintf(w, "  %-12s%s–%s  %-6s%12s\n",
				d.Date,
				timecalc.FormatMilitary(d.InHour),
				timecalc.FormatMilitary(d.OutHour),
				timecalc.FormatHours(d.Hours),
				payroll.FormatMoney(d.Wages))
		}
		fmt.Fprintf(w, "  %-25s%-6s%12s\n", "Subtotal", timecalc.FormatHours(e.TotalHours), payroll.FormatMoney(e.TotalWages))
	}
	fmt.Fprintln(w, "--------------------------------------------")
	fmt.Fprintf(w, "%-33s%12s %s\n", "Total", payroll.FormatMoney(rep.Total), currency)
}
