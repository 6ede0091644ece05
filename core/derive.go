package core

import (
	"time"

	"github.com/strideworks/stridemap/schema"
)

// Derive extracts the calendar components used for grouping from a timestamp.
// Year is the calendar year, while week numbers follow ISO 8601, so an
// early-January week may belong to the previous ISO year; callers grouping
// by (year, week) should use DeriveISOYearWeek, not the fields returned here.
func Derive(t time.Time) schema.CalendarFields {
	_, isoWeek := t.ISOWeek()
	return schema.CalendarFields{
		Year:    t.Year(),
		Month:   t.Month(),
		ISOWeek: isoWeek,
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
	}
}

// DeriveISOYearWeek returns the ISO 8601 year and week for grouping weekly
// totals. Unlike CalendarFields.Year, the ISO year shifts at year boundaries
// so that each week belongs to exactly one (year, week) bucket.
func DeriveISOYearWeek(t time.Time) (int, int) {
	return t.ISOWeek()
}
