// Package roster reads employee rows from CSV and YAML roster files.
package roster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/trivial-payroll/internal/payroll"
)

// Entry is one roster line. PayPerHour stays text; payroll.CreateEmployeeRecord parses it.
type Entry struct {
	FirstName  string `csv:"first_name" yaml:"first_name"`
	FamilyName string `csv:"family_name" yaml:"family_name"`
	Title      string `csv:"title" yaml:"title"`
	PayPerHour string `csv:"pay_per_hour" yaml:"pay_per_hour"`
}

// Row converts the entry to positional roster fields.
func (e Entry) Row() payroll.Row {
	return payroll.Row{e.FirstName, e.FamilyName, e.Title, e.PayPerHour}
}

func toRows(entries []Entry) []payroll.Row {
	rows := make([]payroll.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Row())
	}
	return rows
}

// ReadCSV parses a roster with the header first_name,family_name,title,pay_per_hour.
func ReadCSV(r io.Reader) ([]payroll.Row, error) {
	var entries []Entry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("gocsv.Unmarshal: %w", err)
	}
	return toRows(entries), nil
}

// ReadYAML parses a roster given as a YAML list of mappings.
func ReadYAML(r io.Reader) ([]payroll.Row, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return []payroll.Row{}, nil
		}
		return nil, fmt.Errorf("yaml.Decode: %w", err)
	}
	return toRows(entries), nil
}

// ReadFile reads a roster, choosing the format from the file extension.
func ReadFile(path string) ([]payroll.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f)
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("unsupported roster format %q: expected .csv, .yaml or .yml", ext)
	}
}

// WriteCSV writes entries with the same header ReadCSV expects.
func WriteCSV(w io.Writer, entries []Entry) error {
	if err := gocsv.Marshal(entries, w); err != nil {
		return fmt.Errorf("gocsv.Marshal: %w", err)
	}
	return nil
}

// FormatRate renders a pay rate the way it appears in roster files.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
