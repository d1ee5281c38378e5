package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SplitDateTime splits a "DATE HOUR" string at the first run of whitespace.
// When there is no whitespace the whole string is returned as both tokens,
// which makes the hour token fail to parse downstream.
func SplitDateTime(s string) (date, hour string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, s
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// ParseHour parses a military hour token such as "0900" or "1400" as a
// base-10 integer.
func ParseHour(token string) (int, error) {
	h, err := strconv.ParseInt(token, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", token, err)
	}
	return int(h), nil
}

// HoursBetween returns (out - in) / 100. Both values use the HHMM encoding,
// so the result is only true elapsed hours for on-the-hour times.
func HoursBetween(in, out int) float64 {
	return float64(out-in) / 100
}

// FormatHours formats fractional hours like "8h", "2.5h" or "0h".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// FormatMilitary formats a military hour as HH:MM, e.g. 900 -> "09:00".
func FormatMilitary(hour int) string {
	return fmt.Sprintf("%02d:%02d", hour/100, hour%100)
}
