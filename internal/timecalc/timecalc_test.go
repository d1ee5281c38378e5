package timecalc_test

import (
	"testing"

	"github.com/Tiliavir/trivial-payroll/internal/timecalc"
)

func TestSplitDateTime(t *testing.T) {
	tests := []struct {
		input    string
		wantDate string
		wantHour string
	}{
		{"2014-02-28 1400", "2014-02-28", "1400"},
		{"44-03-15 0900", "44-03-15", "0900"},
		{"2015-02-28\t1700", "2015-02-28", "1700"},
		{"  2015-02-28   1700  ", "2015-02-28", "1700"},
		{"2015-02-28", "2015-02-28", "2015-02-28"},
		{"", "", ""},
	}
	for _, tt := range tests {
		date, hour := timecalc.SplitDateTime(tt.input)
		if date != tt.wantDate || hour != tt.wantHour {
			t.Errorf("SplitDateTime(%q) = (%q, %q), want (%q, %q)",
				tt.input, date, hour, tt.wantDate, tt.wantHour)
		}
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{"1400", 1400, false},
		{"0900", 900, false},
		{"0", 0, false},
		{"12ab", 0, true},
		{"", 0, true},
		{"2015-02-28", 0, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseHour(tt.token)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHour(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHour(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		in, out int
		want    float64
	}{
		{900, 1700, 8},
		{900, 1100, 2},
		{1400, 1700, 3},
		{1400, 1430, 0.3},
	}
	for _, tt := range tests {
		got := timecalc.HoursBetween(tt.in, tt.out)
		if got != tt.want {
			t.Errorf("HoursBetween(%d, %d) = %v, want %v", tt.in, tt.out, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0h"},
		{8, "8h"},
		{2.5, "2.5h"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFormatMilitary(t *testing.T) {
	if got := timecalc.FormatMilitary(900); got != "09:00" {
		t.Errorf("FormatMilitary(900) = %q, want %q", got, "09:00")
	}
	if got := timecalc.FormatMilitary(1430); got != "14:30" {
		t.Errorf("FormatMilitary(1430) = %q, want %q", got, "14:30")
	}
}
