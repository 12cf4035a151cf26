package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseStamp combines a date string and a time string into a single
// timestamp. The date is day-first when ambiguous (05/06/2024 is 5 June),
// accepts `.`, `/` or `-` separators and 2- or 4-digit years. The time is
// H:MM with optional seconds. Returns an error when either part cannot be
// interpreted; there are no partial results.
func ParseStamp(dateStr, timeStr string) (time.Time, error) {
	year, month, day, err := parseDayFirstDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, second, err := parseTimeOfDay(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	// time.Date normalizes out-of-range components (31/02 becomes 2 March);
	// a round-trip mismatch means the calendar date never existed.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", dateStr)
	}

	return t, nil
}

// parseDayFirstDate tokenizes DD<sep>MM<sep>YY[YY] with sep in `./-`.
func parseDayFirstDate(s string) (year, month, day int, err error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '/' || r == '-'
	})
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q (expected day, month and year)", s)
	}

	day, err = atoiInRange(parts[0], 1, 31)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	month, err = atoiInRange(parts[1], 1, 12)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	year, err = atoiInRange(parts[2], 0, 9999)
	if err != nil || (len(parts[2]) != 2 && len(parts[2]) != 4) {
		return 0, 0, 0, fmt.Errorf("invalid year in %q", s)
	}

	// Two-digit years pivot at 70: 24 means 2024, 99 means 1999.
	if year < 100 {
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}

	return year, month, day, nil
}

// parseTimeOfDay tokenizes H:MM or H:MM:SS.
func parseTimeOfDay(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid time %q (expected H:MM or H:MM:SS)", s)
	}

	hour, err = atoiInRange(parts[0], 0, 23)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	if len(parts[1]) != 2 {
		return 0, 0, 0, fmt.Errorf("invalid minutes in %q", s)
	}
	minute, err = atoiInRange(parts[1], 0, 59)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid minutes in %q: %w", s, err)
	}
	if len(parts) == 3 {
		if len(parts[2]) != 2 {
			return 0, 0, 0, fmt.Errorf("invalid seconds in %q", s)
		}
		second, err = atoiInRange(parts[2], 0, 59)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid seconds in %q: %w", s, err)
		}
	}

	return hour, minute, second, nil
}

func atoiInRange(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}
