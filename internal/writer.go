package internal

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/strideworks/stridemap/schema"
)

// selectOutputFile returns the file handle for output. Callers fall back to
// os.Stdout when no file is specified.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return nil, errors.New("no file specified")
	}
	return os.Create(filePath)
}

// writeWeeklyCSV writes the per-week totals in CSV format.
func writeWeeklyCSV(out io.Writer, weekly []schema.WeekTotal, fmtFloat func(float64) string) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"year", "week", "activities", "distance_km"}); err != nil {
		return err
	}
	for _, wk := range weekly {
		rec := []string{
			strconv.Itoa(wk.Year),
			strconv.Itoa(wk.Week),
			strconv.Itoa(wk.Activities),
			fmtFloat(wk.DistanceKm),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeSummaryJSON writes the whole report as indented JSON.
func writeSummaryJSON(out io.Writer, report *schema.SummaryReport) error {
	return writeJSONValue(out, report)
}

// writeJSONValue writes any exportable value as indented JSON.
func writeJSONValue(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeGridCSV writes completed grid cells in CSV format, one row per
// (weekday, hour) cell.
func writeGridCSV(out io.Writer, cells []schema.GridCell, fmtFloat func(float64) string) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"weekday", "hour", "value"}); err != nil {
		return err
	}
	for _, c := range cells {
		rec := []string{
			schema.WeekdayLabel(c.Weekday),
			strconv.Itoa(c.Hour),
			fmtFloat(c.Value),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeActivitiesCSV writes activities in CSV format, mirroring the export
// column set with parsed values.
func writeActivitiesCSV(out io.Writer, acts []schema.Activity, fmtFloat func(float64) string) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"sport", "start_time", "distance_km", "calories", "duration", "avg_pace", "elev_gain_m"}); err != nil {
		return err
	}
	optional := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmtFloat(*v)
	}
	for _, a := range acts {
		rec := []string{
			string(a.Sport),
			a.StartTime.Format("2006-01-02 15:04:05"),
			fmtFloat(a.DistanceKm),
			optional(a.Calories),
			a.Duration,
			a.AvgPace,
			optional(a.ElevGainM),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
