package schema

import "time"

// Sequence returns the weekday axis order for this named ordering.
// The returned slice is a fresh copy; callers may reorder it freely.
func (o WeekdayOrder) Sequence() []time.Weekday {
	switch o {
	case MondayFirst:
		return []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday,
		}
	default: // SundayFirst
		return []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
	}
}

// Valid reports whether the ordering is one of the supported names.
func (o WeekdayOrder) Valid() bool {
	switch o {
	case SundayFirst, MondayFirst:
		return true
	}
	return false
}

// WeekdayLabel returns the three-letter label used on heatmap axes and in
// tabular output (Sun, Mon, ...).
func WeekdayLabel(d time.Weekday) string {
	return d.String()[:3]
}
