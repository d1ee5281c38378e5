package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/payroll"
)

// ErrEmployeeNotFound is returned when no employee matches a name.
var ErrEmployeeNotFound = errors.New("employee not found")

// BaseDir returns the root data directory (~/.tpr).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tpr"), nil
}

// DefaultPath returns the default timesheet location (~/.tpr/timesheet.json).
func DefaultPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "timesheet.json"), nil
}

// Load reads the timesheet at path. Returns an empty Timesheet if not found.
func Load(path string) (model.Timesheet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("timesheet not found, starting empty")
		return model.Timesheet{Employees: []*model.EmployeeRecord{}}, nil
	}
	if err != nil {
		return model.Timesheet{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var ts model.Timesheet
	if err := json.Unmarshal(data, &ts); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		log.Warn().Str("path", path).Str("backup", backupPath).Err(err).Msg("corrupt timesheet")
		return model.Timesheet{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if ts.Employees == nil {
		ts.Employees = []*model.EmployeeRecord{}
	}
	// Files written by hand may omit the event logs.
	for _, e := range ts.Employees {
		if e.TimeInEvents == nil {
			e.TimeInEvents = []model.TimeEvent{}
		}
		if e.TimeOutEvents == nil {
			e.TimeOutEvents = []model.TimeEvent{}
		}
	}
	return ts, nil
}

// Save atomically writes the timesheet to path.
func Save(path string, ts model.Timesheet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	log.Debug().Str("path", path).Int("employees", len(ts.Employees)).Msg("timesheet saved")
	return nil
}

// AddEmployees appends records whose full name is not yet on the timesheet.
// It returns the number of records added.
func AddEmployees(path string, records []*model.EmployeeRecord) (int, error) {
	ts, err := Load(path)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, r := range records {
		if ts.Find(r.FirstName, r.FamilyName) != nil {
			log.Warn().Str("employee", r.FullName()).Msg("already on timesheet, skipping")
			continue
		}
		ts.Employees = append(ts.Employees, r)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, Save(path, ts)
}

// RecordEvent appends a clock-in or clock-out to the named employee and saves.
func RecordEvent(path, firstName, familyName string, kind model.EventKind, dateTime string) (*model.EmployeeRecord, error) {
	ts, err := Load(path)
	if err != nil {
		return nil, err
	}
	r := ts.Find(firstName, familyName)
	if r == nil {
		return nil, fmt.Errorf("%s %s: %w", firstName, familyName, ErrEmployeeNotFound)
	}
	if _, err := payroll.RecordEvent(r, kind, dateTime); err != nil {
		return nil, err
	}
	if err := Save(path, ts); err != nil {
		return nil, err
	}
	return r, nil
}

// FindEmployee loads the timesheet and returns the named employee.
func FindEmployee(path, firstName, familyName string) (*model.EmployeeRecord, error) {
	ts, err := Load(path)
	if err != nil {
		return nil, err
	}
	r := ts.Find(firstName, familyName)
	if r == nil {
		return nil, fmt.Errorf("%s %s: %w", firstName, familyName, ErrEmployeeNotFound)
	}
	return r, nil
}
