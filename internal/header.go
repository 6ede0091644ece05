package internal

import (
	"fmt"
	"path/filepath"

	"github.com/strideworks/stridemap/internal/contract"
)

// LogRunHeader prints a concise, 2-line header for each analysis phase.
func LogRunHeader(cfg *contract.Config, activities int) {
	source := filepath.Base(cfg.CSVPath)
	if cfg.FromStore {
		source = fmt.Sprintf("store (%s)", cfg.StoreBackend)
	}

	// Line 1: The input source and sport selector
	fmt.Printf("%sSource: %s (Sport: %s)\n", emoji(cfg, "🔎 "), source, cfg.Sport)

	// Line 2: The date window and outlier cutoff actually applied
	since, until := "beginning", "now"
	if !cfg.Since.IsZero() {
		since = cfg.Since.Format(contract.DateFormat)
	}
	if !cfg.Until.IsZero() {
		until = cfg.Until.Format(contract.DateFormat)
	}
	cutoff := fmt.Sprintf("max distance %.0f km", cfg.MaxDistanceKm)
	if cfg.MaxDistanceKm <= 0 {
		cutoff = "no distance cutoff"
	}
	fmt.Printf("%sWindow: %s → %s (%s), %d activities\n",
		emoji(cfg, "📅 "), since, until, cutoff, activities)
}

// LogWroteFile reports a written output file.
func LogWroteFile(cfg *contract.Config, path string) {
	fmt.Printf("%sWrote %s\n", emoji(cfg, "🖼️  "), path)
}

// LogImported reports the number of rows written to the activity store.
func LogImported(cfg *contract.Config, n int) {
	fmt.Printf("%sImported %d activities into %s store\n", emoji(cfg, "💾 "), n, cfg.StoreBackend)
}

// emoji returns the prefix when emojis are enabled, else empty.
func emoji(cfg *contract.Config, s string) string {
	if cfg.UseEmojis {
		return s
	}
	return ""
}
