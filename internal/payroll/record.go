package payroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tiliavir/trivial-payroll/internal/model"
)

// Row is a raw roster row: first name, family name, title, pay per hour.
type Row []string

// field returns the i-th position or "" when the row is too short.
func (r Row) field(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// NewEmployeeRecord builds a record with empty event logs.
func NewEmployeeRecord(firstName, familyName, title string, payPerHour float64) *model.EmployeeRecord {
	return &model.EmployeeRecord{
		FirstName:     firstName,
		FamilyName:    familyName,
		Title:         title,
		PayPerHour:    payPerHour,
		TimeInEvents:  []model.TimeEvent{},
		TimeOutEvents: []model.TimeEvent{},
	}
}

// CreateEmployeeRecord builds a record from a roster row. Short rows are not
// rejected: missing names are left empty and a missing rate is 0.
func CreateEmployeeRecord(row Row) (*model.EmployeeRecord, error) {
	var pay float64
	if raw := strings.TrimSpace(row.field(3)); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("pay per hour %q: %w", raw, ErrMalformedNumber)
		}
		pay = p
	}
	return NewEmployeeRecord(row.field(0), row.field(1), row.field(2), pay), nil
}

// CreateEmployeeRecords maps CreateEmployeeRecord over rows, preserving order.
func CreateEmployeeRecords(rows []Row) ([]*model.EmployeeRecord, error) {
	records := make([]*model.EmployeeRecord, 0, len(rows))
	for i, row := range rows {
		r, err := CreateEmployeeRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}
