package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/internal/parquet"
	"github.com/strideworks/stridemap/schema"
)

// Base names for exported data files; the format decides the extension.
const (
	activitiesExport = "activities"
	countsExport     = "heatmap_weekly_counts"
	distanceExport   = "heatmap_weekly_dist"
)

// ExportAll writes the activities and both completed grids into the results
// directory. The text output mode exports CSV, since there is no tabular
// terminal form of a bulk export.
func ExportAll(acts []schema.Activity, countCells, distCells []schema.GridCell, cfg *contract.Config) error {
	format := cfg.Output
	if format == schema.TextOut {
		format = schema.CSVOut
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("cannot create results dir: %w", err)
	}

	fmtFloat := func(v float64) string {
		return fmt.Sprintf("%.*f", cfg.Precision, v)
	}

	switch format {
	case schema.CSVOut:
		if err := exportCSVFile(cfg, activitiesExport, func(f *os.File) error {
			return writeActivitiesCSV(f, acts, fmtFloat)
		}); err != nil {
			return err
		}
		if err := exportCSVFile(cfg, countsExport, func(f *os.File) error {
			return writeGridCSV(f, countCells, fmtFloat)
		}); err != nil {
			return err
		}
		return exportCSVFile(cfg, distanceExport, func(f *os.File) error {
			return writeGridCSV(f, distCells, fmtFloat)
		})

	case schema.JSONOut:
		if err := exportJSONFile(cfg, activitiesExport, acts); err != nil {
			return err
		}
		if err := exportJSONFile(cfg, countsExport, countCells); err != nil {
			return err
		}
		return exportJSONFile(cfg, distanceExport, distCells)

	case schema.ParquetOut:
		path := exportPath(cfg, activitiesExport, "parquet")
		if err := parquet.WriteActivities(acts, path); err != nil {
			return err
		}
		LogWroteFile(cfg, path)

		path = exportPath(cfg, countsExport, "parquet")
		if err := parquet.WriteGridCells(countCells, schema.CountMetric, path); err != nil {
			return err
		}
		LogWroteFile(cfg, path)

		path = exportPath(cfg, distanceExport, "parquet")
		if err := parquet.WriteGridCells(distCells, schema.DistanceMetric, path); err != nil {
			return err
		}
		LogWroteFile(cfg, path)
		return nil

	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// exportPath builds the output file path for one export artifact.
func exportPath(cfg *contract.Config, base, ext string) string {
	return filepath.Join(cfg.ResultsDir, base+"."+ext)
}

func exportCSVFile(cfg *contract.Config, base string, write func(*os.File) error) error {
	path := exportPath(cfg, base, "csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := write(f); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	LogWroteFile(cfg, path)
	return nil
}

func exportJSONFile(cfg *contract.Config, base string, v any) error {
	path := exportPath(cfg, base, "json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := writeJSONValue(f, v); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	LogWroteFile(cfg, path)
	return nil
}
