// Package schema has configs, models and shared types for all parts of stridemap.
package schema

import "time"

// Activity represents a single recorded exercise session from a tracker export.
// Required fields (StartTime, DistanceKm) are always populated; optional
// metrics are nil when the export left the column empty.
type Activity struct {
	Sport      SportKind `json:"sport"`                 // Activity type as recorded (Running, Cycling, ...)
	StartTime  time.Time `json:"start_time"`            // Local start timestamp of the session
	DistanceKm float64   `json:"distance_km"`           // Distance covered in kilometers
	Calories   *float64  `json:"calories,omitempty"`    // Energy burned, nil when not recorded
	Duration   string    `json:"duration,omitempty"`    // Raw duration string from the export (unparsed)
	AvgPace    string    `json:"avg_pace,omitempty"`    // Raw average pace string from the export (unparsed)
	ElevGainM  *float64  `json:"elev_gain_m,omitempty"` // Elevation gain in meters, nil when not recorded
}

// CalendarFields holds the calendar components derived from an activity timestamp.
type CalendarFields struct {
	Year    int          // Calendar year
	Month   time.Month   // Calendar month
	ISOWeek int          // ISO 8601 week number
	Weekday time.Weekday // Day of week
	Hour    int          // Hour of day (0-23)
}

// GridKey identifies one cell of the weekly weekday x hour grid.
type GridKey struct {
	Weekday time.Weekday
	Hour    int
}

// GridCell is one row of a completed weekly grid: a key plus its value.
// After grid completion every (weekday, hour) pair in the domain has exactly
// one cell, with Value zero when no activity fell into it.
type GridCell struct {
	Weekday time.Weekday `json:"weekday"`
	Hour    int          `json:"hour"`
	Value   float64      `json:"value"`
}

// DayValue is one day of a calendar heatmap: a date and its aggregated value.
type DayValue struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SummaryStats holds whole-dataset aggregates over the filtered activities.
type SummaryStats struct {
	Activities      int       `json:"activities"`        // Number of activities after filtering
	TotalDistanceKm float64   `json:"total_distance_km"` // Sum of distances
	MeanDistanceKm  float64   `json:"mean_distance_km"`  // Mean distance per activity
	MaxDistanceKm   float64   `json:"max_distance_km"`   // Longest single activity
	TotalCalories   float64   `json:"total_calories"`    // Sum over activities with calories recorded
	First           time.Time `json:"first"`             // Earliest activity timestamp
	Last            time.Time `json:"last"`              // Latest activity timestamp
}

// WeekTotal aggregates activities for one ISO week.
type WeekTotal struct {
	Year       int     `json:"year"`
	Week       int     `json:"week"` // ISO week number
	Activities int     `json:"activities"`
	DistanceKm float64 `json:"distance_km"`
}

// MonthTotal aggregates activities for one calendar month.
type MonthTotal struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	Activities int        `json:"activities"`
	DistanceKm float64    `json:"distance_km"`
}

// SportCount is the number of activities recorded for one sport.
type SportCount struct {
	Sport SportKind `json:"sport"`
	Count int       `json:"count"`
}

// SummaryReport bundles every summary aggregate for one run.
type SummaryReport struct {
	Stats   SummaryStats `json:"stats"`
	Weekly  []WeekTotal  `json:"weekly"`
	Monthly []MonthTotal `json:"monthly"`
	Sports  []SportCount `json:"sports"`
}

// StoreStatus describes the state of the activity store backend.
type StoreStatus struct {
	Backend    DatabaseBackend `json:"backend"`
	Location   string          `json:"location"`
	Activities int             `json:"activities"`
	First      time.Time       `json:"first,omitzero"`
	Last       time.Time       `json:"last,omitzero"`
}
