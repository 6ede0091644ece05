package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Define the regular expression to capture "N [units] ago"
// e.g., "2 years ago", "3 months ago", "1 week ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day)s?\s+ago$`)

// ParseDatePoint converts a date flag value into a time.Time. It accepts
// absolute dates ("2023-04-01", RFC3339 timestamps) and relative expressions
// ("6 months ago", "2 weeks ago") anchored at now.
func ParseDatePoint(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return parseRelativeTime(s, now)
}

// parseRelativeTime converts strings like "2 years ago" into a time.Time in the past.
func parseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(s)
	matches := relativeTimeRe.FindStringSubmatch(s)

	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid date format: %q (want YYYY-MM-DD, RFC3339, or 'N units ago')", s)
	}

	// 1: Value (e.g., "2")
	// 2: Unit (e.g., "year" or "month")
	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.AddDate(0, 0, -7*value), nil
	case "day":
		return now.AddDate(0, 0, -value), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", unit)
	}
}
