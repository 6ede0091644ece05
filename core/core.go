// Package core holds the analysis pipeline: loading, filtering, aggregation
// and grid completion, plus the orchestration entrypoints the commands call.
package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strideworks/stridemap/core/ingest"
	"github.com/strideworks/stridemap/internal"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/internal/render"
	"github.com/strideworks/stridemap/schema"
)

// Fixed output file names inside the results directory.
const (
	WeeklyCountsImage   = "heatmap_weekly_counts.png"
	WeeklyDistanceImage = "heatmap_weekly_dist.png"
	CalendarImagePrefix = "heatmap_calendar_"
)

// LoadActivities reads activities from the configured source (store or CSV)
// and applies the sport, date-range and outlier filters.
func LoadActivities(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) ([]schema.Activity, error) {
	var acts []schema.Activity
	var err error

	if cfg.FromStore {
		if store == nil {
			return nil, fmt.Errorf("--from-store requires an initialized activity store")
		}
		acts, err = store.ListActivities(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list stored activities: %w", err)
		}
	} else {
		acts, err = ingest.ReadActivitiesFile(cfg.CSVPath)
		if err != nil {
			return nil, err
		}
	}

	acts = BySport(acts, cfg.Sport)
	acts = ByDateRange(acts, cfg.Since, cfg.Until)
	acts = ByMaxDistance(acts, cfg.MaxDistanceKm)
	return acts, nil
}

// GetWeeklyHeatmapResults runs the pipeline for one metric and returns the
// completed 7x24 grid. Exposed for MCP handlers and tests.
func GetWeeklyHeatmapResults(ctx context.Context, cfg *contract.Config, store contract.ActivityStore, metric schema.Metric) ([]schema.GridCell, error) {
	acts, err := LoadActivities(ctx, cfg, store)
	if err != nil {
		return nil, err
	}
	agg := AggregateWeekly(acts)
	return CompleteGrid(agg.Values(metric), cfg.WeekdayOrder.Sequence()), nil
}

// GetSummaryResults runs the pipeline and returns every summary aggregate.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) (*schema.SummaryReport, error) {
	acts, err := LoadActivities(ctx, cfg, store)
	if err != nil {
		return nil, err
	}
	return &schema.SummaryReport{
		Stats:   Summarize(acts),
		Weekly:  WeeklyTotals(acts),
		Monthly: MonthlyTotals(acts),
		Sports:  SportCounts(acts),
	}, nil
}

// ExecuteHeatmap renders the weekly count and mean-distance heatmap PNGs
// into the results directory.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) error {
	acts, err := LoadActivities(ctx, cfg, store)
	if err != nil {
		return err
	}
	internal.LogRunHeader(cfg, len(acts))
	if len(acts) == 0 {
		internal.Warning("No activities in the requested window.")
		return nil
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("cannot create results dir: %w", err)
	}

	agg := AggregateWeekly(acts)
	order := cfg.WeekdayOrder.Sequence()

	countCells := CompleteGrid(agg.CountValues(), order)
	countPath := filepath.Join(cfg.ResultsDir, WeeklyCountsImage)
	if err := render.SaveWeeklyHeatmap(countCells, render.Options{
		Title:   "Activities by weekday and hour",
		Order:   order,
		Buckets: cfg.ColorBuckets,
	}, countPath); err != nil {
		return fmt.Errorf("cannot render count heatmap: %w", err)
	}
	internal.LogWroteFile(cfg, countPath)

	distCells := CompleteGrid(agg.MeanDistanceValues(), order)
	distPath := filepath.Join(cfg.ResultsDir, WeeklyDistanceImage)
	if err := render.SaveWeeklyHeatmap(distCells, render.Options{
		Title:   "Mean distance (km) by weekday and hour",
		Order:   order,
		Buckets: cfg.ColorBuckets,
	}, distPath); err != nil {
		return fmt.Errorf("cannot render distance heatmap: %w", err)
	}
	internal.LogWroteFile(cfg, distPath)

	if cfg.GridTable {
		cells := countCells
		if cfg.Metric == schema.DistanceMetric {
			cells = distCells
		}
		return internal.PrintGrid(cells, order, cfg)
	}
	return nil
}

// ExecuteCalendar renders the calendar heatmap PNG for the configured metric.
func ExecuteCalendar(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) error {
	acts, err := LoadActivities(ctx, cfg, store)
	if err != nil {
		return err
	}
	internal.LogRunHeader(cfg, len(acts))
	if len(acts) == 0 {
		internal.Warning("No activities in the requested window.")
		return nil
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("cannot create results dir: %w", err)
	}

	days := DailyValues(acts, cfg.Metric)
	name := fmt.Sprintf("%s%s.png", CalendarImagePrefix, cfg.Metric)
	path := filepath.Join(cfg.ResultsDir, name)

	title := "Activities per day"
	if cfg.Metric == schema.DistanceMetric {
		title = "Distance (km) per day"
	}
	if err := render.SaveCalendarHeatmap(days, render.Options{
		Title:   title,
		Buckets: cfg.ColorBuckets,
	}, path); err != nil {
		return fmt.Errorf("cannot render calendar heatmap: %w", err)
	}
	internal.LogWroteFile(cfg, path)

	return nil
}

// ExecuteSummary prints or writes the summary aggregates in the configured
// output format.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) error {
	report, err := GetSummaryResults(ctx, cfg, store)
	if err != nil {
		return err
	}
	internal.LogRunHeader(cfg, report.Stats.Activities)
	return internal.PrintSummary(report, cfg)
}

// ExecuteExport writes activities and both completed grids to the results
// directory in the configured format (csv, json or parquet).
func ExecuteExport(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) error {
	acts, err := LoadActivities(ctx, cfg, store)
	if err != nil {
		return err
	}
	internal.LogRunHeader(cfg, len(acts))

	agg := AggregateWeekly(acts)
	order := cfg.WeekdayOrder.Sequence()
	countCells := CompleteGrid(agg.CountValues(), order)
	distCells := CompleteGrid(agg.MeanDistanceValues(), order)

	return internal.ExportAll(acts, countCells, distCells, cfg)
}

// ExecuteImport reads the CSV export and saves all activities into the store.
// The import is unfiltered: the store holds the raw export, and filters apply
// at analysis time.
func ExecuteImport(ctx context.Context, cfg *contract.Config, store contract.ActivityStore) error {
	acts, err := ingest.ReadActivitiesFile(cfg.CSVPath)
	if err != nil {
		return err
	}
	n, err := store.SaveActivities(ctx, acts)
	if err != nil {
		return fmt.Errorf("cannot save activities: %w", err)
	}
	internal.LogImported(cfg, n)
	return nil
}
