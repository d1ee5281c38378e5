package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Config is the root configuration for tpr, stored in ~/.tpr/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Timesheet is the path of the timesheet JSON file. Empty = ~/.tpr/timesheet.json.
	Timesheet string `json:"timesheet"`
	// Currency is the label printed next to amounts in reports.
	Currency string `json:"currency"`
	// ReportFormat is the default output format for report and watch: md, csv or json.
	ReportFormat string `json:"report_format"`
}

const (
	// DefaultCurrency is printed when no currency is configured.
	DefaultCurrency = "USD"
	// DefaultReportFormat is the report format used when none is configured.
	DefaultReportFormat = "md"
)

// ReportFormats lists the accepted report formats.
var ReportFormats = []string{"md", "csv", "json"}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Currency:     DefaultCurrency,
		ReportFormat: DefaultReportFormat,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tpr configuration – ~/.tpr/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise tpr behaviour.
{
  // Path of the timesheet file holding the roster and all clock events.
  // Leave empty to use ~/.tpr/timesheet.json. Can be overridden with: tpr --file <path>
  "timesheet": "",

  // Currency label printed next to wages in reports. No conversion is applied.
  "currency": "USD",

  // Default output format for "tpr report" and "tpr watch": md, csv or json.
  // Can be overridden with: tpr report --format <fmt>
  "report_format": "md"
}
`

// configFilePath returns the path to ~/.tpr/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tpr", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tpr/config.json, creating it with annotated defaults on first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, writing the annotated template there if
// the file does not exist yet. Lines starting with // are treated as comments
// and stripped before JSON parsing.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			log.Warn().Err(writeErr).Str("path", path).Msg("could not create config file")
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = DefaultReportFormat
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
