// Package ingest reads tracker CSV exports into activity records.
//
// Ingestion is fail-fast: a row with an unparseable required field (Date,
// Distance) aborts the load with a row-numbered error instead of silently
// dropping the row. Optional numeric fields (Calories, Elev.Gain) parse to
// nil when empty.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/strideworks/stridemap/schema"
)

// Column names as exported by the tracker. Headers are normalized before
// lookup, so "Activity Type" and "Activity.Type" both match.
const (
	ColSport    = "Activity.Type"
	ColDate     = "Date"
	ColDistance = "Distance"
	ColCalories = "Calories"
	ColDuration = "Time"
	ColAvgPace  = "Avg.Pace"
	ColElevGain = "Elev.Gain"
)

// timestampLayouts are tried in order when parsing the Date column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ReadActivitiesFile opens path and reads all activities from it.
func ReadActivitiesFile(path string) ([]schema.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open activities CSV: %w", err)
	}
	defer func() { _ = f.Close() }()

	acts, err := ReadActivities(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return acts, nil
}

// ReadActivities reads all activities from r. The first record must be a
// header row containing at least the Sport, Date and Distance columns.
func ReadActivities(r io.Reader) ([]schema.Activity, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var acts []schema.Activity
	rowNum := 1 // header was row 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		act, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		acts = append(acts, act)
	}
	return acts, nil
}

// columnIndex maps normalized column names to their position in the header.
// Optional columns that are missing from the header map to -1.
type columnIndex map[string]int

// indexColumns builds the header lookup and verifies required columns.
func indexColumns(header []string) (columnIndex, error) {
	cols := columnIndex{
		ColSport:    -1,
		ColDate:     -1,
		ColDistance: -1,
		ColCalories: -1,
		ColDuration: -1,
		ColAvgPace:  -1,
		ColElevGain: -1,
	}
	for i, h := range header {
		key := normalizeHeader(h)
		if _, known := cols[key]; known {
			cols[key] = i
		}
	}

	for _, required := range []string{ColSport, ColDate, ColDistance} {
		if cols[required] < 0 {
			return nil, fmt.Errorf("missing required column %q in CSV header", required)
		}
	}
	return cols, nil
}

// normalizeHeader folds the two header spellings seen in exports
// ("Activity Type" vs "Activity.Type") into one key.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, "\ufeff") // UTF-8 BOM on the first column
	return strings.ReplaceAll(h, " ", ".")
}

// field returns the raw cell for the named column, or "" when the column is
// absent from the export.
func (c columnIndex) field(record []string, name string) string {
	i := c[name]
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseRecord converts one CSV record into an Activity.
func parseRecord(record []string, cols columnIndex) (schema.Activity, error) {
	var act schema.Activity

	act.Sport = schema.SportKind(cols.field(record, ColSport))

	rawDate := cols.field(record, ColDate)
	start, err := parseTimestamp(rawDate)
	if err != nil {
		return act, fmt.Errorf("column %s: %w", ColDate, err)
	}
	act.StartTime = start

	rawDist := cols.field(record, ColDistance)
	dist, err := ParseThousands(rawDist)
	if err != nil {
		return act, fmt.Errorf("column %s: %w", ColDistance, err)
	}
	act.DistanceKm = dist

	if act.Calories, err = parseOptional(cols.field(record, ColCalories)); err != nil {
		return act, fmt.Errorf("column %s: %w", ColCalories, err)
	}
	if act.ElevGainM, err = parseOptional(cols.field(record, ColElevGain)); err != nil {
		return act, fmt.Errorf("column %s: %w", ColElevGain, err)
	}

	// Kept verbatim: duration and pace are display strings in the export.
	act.Duration = cols.field(record, ColDuration)
	act.AvgPace = cols.field(record, ColAvgPace)

	return act, nil
}

// parseTimestamp tries the known export layouts in order.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// ParseThousands parses a numeric string that may carry thousands separators,
// e.g. "12,345" -> 12345. The export writes calories and elevation this way.
func ParseThousands(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q", s)
	}
	return v, nil
}

// parseOptional parses an optional numeric cell: empty or "--" means absent.
func parseOptional(s string) (*float64, error) {
	if s == "" || s == "--" {
		return nil, nil
	}
	v, err := ParseThousands(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
