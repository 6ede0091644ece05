package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

var bestColor = color.New(color.FgGreen, color.Bold) // Highest-distance period

// PrintSummary outputs the summary report as formatted tables, or exports it
// as CSV/JSON. CSV exports the weekly totals (the most granular table);
// JSON exports the whole report.
func PrintSummary(report *schema.SummaryReport, cfg *contract.Config) error {
	numFmt := "%.*f"
	fmtFloat := func(v float64) string {
		return fmt.Sprintf(numFmt, cfg.Precision, v)
	}

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return printSummaryJSON(report, cfg)
	case schema.CSVOut:
		return printWeeklyCSV(report.Weekly, cfg, fmtFloat)
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported by the export command")
	default:
		return printSummaryTables(report, cfg, fmtFloat)
	}
}

// printSummaryTables renders the human-readable tables.
func printSummaryTables(report *schema.SummaryReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	s := report.Stats

	// 1. Overall statistics
	overall := tablewriter.NewWriter(os.Stdout)
	overall.Header([]string{"Metric", "Value"})
	rows := [][]string{
		{"Activities", strconv.Itoa(s.Activities)},
		{"Total distance (km)", fmtFloat(s.TotalDistanceKm)},
		{"Mean distance (km)", fmtFloat(s.MeanDistanceKm)},
		{"Longest activity (km)", fmtFloat(s.MaxDistanceKm)},
		{"Total calories", fmtFloat(s.TotalCalories)},
	}
	if !s.First.IsZero() {
		rows = append(rows,
			[]string{"First activity", s.First.Format(contract.DateFormat)},
			[]string{"Last activity", s.Last.Format(contract.DateFormat)},
		)
	}
	if err := overall.Bulk(rows); err != nil {
		return err
	}
	if err := overall.Render(); err != nil {
		return err
	}

	// 2. Per-sport counts
	if len(report.Sports) > 0 {
		sports := tablewriter.NewWriter(os.Stdout)
		sports.Header([]string{"Sport", "Activities"})
		sports.Configure(func(tc *tablewriter.Config) {
			tc.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, sc := range report.Sports {
			data = append(data, []string{string(sc.Sport), strconv.Itoa(sc.Count)})
		}
		if err := sports.Bulk(data); err != nil {
			return err
		}
		if err := sports.Render(); err != nil {
			return err
		}
	}

	// 3. Monthly totals with a distance bar scaled to the terminal
	if len(report.Monthly) > 0 {
		barWidth := distanceBarWidth(cfg)
		var maxKm float64
		for _, m := range report.Monthly {
			maxKm = max(maxKm, m.DistanceKm)
		}

		monthly := tablewriter.NewWriter(os.Stdout)
		monthly.Header([]string{"Year", "Month", "Activities", "Km", "Trend"})
		monthly.Configure(func(tc *tablewriter.Config) {
			tc.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, m := range report.Monthly {
			km := fmtFloat(m.DistanceKm)
			if cfg.UseColors && m.DistanceKm == maxKm {
				km = bestColor.Sprint(km)
			}
			data = append(data, []string{
				strconv.Itoa(m.Year),
				m.Month.String()[:3],
				strconv.Itoa(m.Activities),
				km,
				distanceBar(m.DistanceKm, maxKm, barWidth),
			})
		}
		if err := monthly.Bulk(data); err != nil {
			return err
		}
		if err := monthly.Render(); err != nil {
			return err
		}
	}

	return nil
}

// printSummaryJSON writes the whole report as indented JSON.
func printSummaryJSON(report *schema.SummaryReport, cfg *contract.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		file = os.Stdout
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writeSummaryJSON(file, report); err != nil {
		return err
	}
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}

// printWeeklyCSV writes the weekly totals as CSV.
func printWeeklyCSV(weekly []schema.WeekTotal, cfg *contract.Config, fmtFloat func(float64) string) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		file = os.Stdout
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writeWeeklyCSV(file, weekly, fmtFloat); err != nil {
		return err
	}
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote CSV to %s\n", cfg.OutputFile)
	}
	return nil
}

// PrintGrid renders a completed weekday x hour grid as a table, one row per
// weekday in axis order and one column per hour.
func PrintGrid(cells []schema.GridCell, order []time.Weekday, cfg *contract.Config) error {
	byKey := make(map[schema.GridKey]float64, len(cells))
	for _, c := range cells {
		byKey[schema.GridKey{Weekday: c.Weekday, Hour: c.Hour}] = c.Value
	}

	table := tablewriter.NewWriter(os.Stdout)
	header := make([]string, 0, schema.HoursPerDay+1)
	header = append(header, "Day")
	for h := range schema.HoursPerDay {
		header = append(header, fmt.Sprintf("%02d", h))
	}
	table.Header(header)
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range order {
		row := make([]string, 0, schema.HoursPerDay+1)
		row = append(row, schema.WeekdayLabel(d))
		for h := range schema.HoursPerDay {
			row = append(row, fmt.Sprintf("%.*f", cfg.Precision, byKey[schema.GridKey{Weekday: d, Hour: h}]))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// distanceBar renders a proportional bar for tabular trend columns.
func distanceBar(v, maxV float64, width int) string {
	if maxV <= 0 || width <= 0 {
		return ""
	}
	n := int(v / maxV * float64(width))
	if n < 1 && v > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
