package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/strideworks/stridemap/schema"
)

// Default values for configuration.
const (
	// DefaultMaxDistanceKm is the outlier cutoff for single-activity distance.
	// Rows above it are treated as data-entry errors (misclassified sport,
	// GPS glitches) and removed before aggregation.
	DefaultMaxDistanceKm = 60.0

	DefaultResultsDir   = "results"
	DefaultColorBuckets = 6
	MaxColorBuckets     = 12
	DefaultPrecision    = 1
	MaxPrecision        = 6
)

// Date and time formats for parsing flags and rendering output.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

// Config holds the runtime configuration for a stridemap run.
// This struct remains the "final, validated" config.
type Config struct {
	CSVPath    string
	ResultsDir string

	Since time.Time // Zero means no lower bound
	Until time.Time // Zero means no upper bound

	MaxDistanceKm float64
	Sport         schema.SportKind
	WeekdayOrder  schema.WeekdayOrder
	Metric        schema.Metric

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	ColorBuckets int
	GridTable    bool // Also print the dense weekday x hour grid as a table

	StoreBackend schema.DatabaseBackend
	StoreConnect string // Please use env var as this is plaintext
	FromStore    bool

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored values in table output
}

// Clone returns a shallow copy of the config. Used by MCP handlers that
// override per-request fields without mutating the base config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper will unmarshal into this struct.
type ConfigRawInput struct {
	CSVPathStr    string  `mapstructure:"csv"`
	ResultsDir    string  `mapstructure:"results-dir"`
	SinceStr      string  `mapstructure:"since"`
	UntilStr      string  `mapstructure:"until"`
	MaxDistanceKm float64 `mapstructure:"max-distance"`
	Sport         string  `mapstructure:"sport"`
	WeekdayOrder  string  `mapstructure:"weekday-order"`
	Metric        string  `mapstructure:"metric"`
	Precision     int     `mapstructure:"precision"`
	Output        string  `mapstructure:"output"`
	OutputFile    string  `mapstructure:"output-file"`
	Width         int     `mapstructure:"width"`
	ColorBuckets  int     `mapstructure:"color-buckets"`
	GridTable     bool    `mapstructure:"table"`
	StoreBackend  string  `mapstructure:"store-backend"`
	StoreConnect  string  `mapstructure:"store-db-connect"`
	FromStore     bool    `mapstructure:"from-store"`
	Color         string  `mapstructure:"color"`
	Emoji         string  `mapstructure:"emoji"`
}

// ProcessAndValidate parses and validates the raw input, populating cfg.
// It is the single funnel between flag/env/file values and the rest of the
// program: nothing downstream re-parses strings.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()

	// 1. Input source
	cfg.CSVPath = input.CSVPathStr
	cfg.FromStore = input.FromStore
	if cfg.CSVPath == "" && !cfg.FromStore {
		return fmt.Errorf("no input: provide a CSV path or use --from-store")
	}

	cfg.ResultsDir = input.ResultsDir
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = DefaultResultsDir
	}

	// 2. Date window
	var err error
	if input.SinceStr != "" {
		if cfg.Since, err = ParseDatePoint(input.SinceStr, now); err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}
	}
	if input.UntilStr != "" {
		if cfg.Until, err = ParseDatePoint(input.UntilStr, now); err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}
	}
	if !cfg.Since.IsZero() && !cfg.Until.IsZero() && !cfg.Since.Before(cfg.Until) {
		return fmt.Errorf("--since (%s) must be before --until (%s)",
			cfg.Since.Format(DateFormat), cfg.Until.Format(DateFormat))
	}

	// 3. Outlier cutoff, zero disables it
	cfg.MaxDistanceKm = input.MaxDistanceKm
	if cfg.MaxDistanceKm < 0 {
		return fmt.Errorf("--max-distance must be zero or positive, got %v", cfg.MaxDistanceKm)
	}

	// 4. Categorical selectors
	cfg.Sport = schema.SportKind(input.Sport)
	if cfg.Sport == "" {
		cfg.Sport = schema.SportAll
	}

	cfg.WeekdayOrder = schema.WeekdayOrder(input.WeekdayOrder)
	if cfg.WeekdayOrder == "" {
		cfg.WeekdayOrder = schema.SundayFirst
	}
	if !cfg.WeekdayOrder.Valid() {
		return fmt.Errorf("invalid --weekday-order %q: must be %s or %s",
			input.WeekdayOrder, schema.SundayFirst, schema.MondayFirst)
	}

	cfg.Metric = schema.Metric(input.Metric)
	switch cfg.Metric {
	case "", schema.CountMetric:
		cfg.Metric = schema.CountMetric
	case schema.DistanceMetric:
	default:
		return fmt.Errorf("invalid --metric %q: must be %s or %s",
			input.Metric, schema.CountMetric, schema.DistanceMetric)
	}

	// 5. Output settings
	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return fmt.Errorf("--precision must be between 0 and %d, got %d", MaxPrecision, cfg.Precision)
	}

	cfg.Output = schema.OutputMode(input.Output)
	switch cfg.Output {
	case "", schema.TextOut:
		cfg.Output = schema.TextOut
	case schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid --output %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.ColorBuckets = input.ColorBuckets
	if cfg.ColorBuckets < 2 || cfg.ColorBuckets > MaxColorBuckets {
		return fmt.Errorf("--color-buckets must be between 2 and %d, got %d", MaxColorBuckets, cfg.ColorBuckets)
	}
	cfg.GridTable = input.GridTable

	// 6. Activity store
	cfg.StoreBackend = schema.DatabaseBackend(input.StoreBackend)
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	cfg.StoreConnect = input.StoreConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreConnect); err != nil {
		return err
	}
	if cfg.FromStore && cfg.StoreBackend == schema.NoneBackend {
		return fmt.Errorf("--from-store requires a database backend, but store-backend is none")
	}

	// 7. Cosmetics
	cfg.UseColors = parseToggle(input.Color, true)
	cfg.UseEmojis = parseToggle(input.Emoji, true)

	return nil
}

// parseToggle interprets yes/no style flag values, falling back to def.
func parseToggle(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	}
	return def
}

// ValidateDatabaseConnectionString checks that the connect string is present
// when the backend needs one, and absent expectations otherwise.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		// SQLite falls back to a default file path; none needs nothing.
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires --store-db-connect (user:pass@tcp(host:port)/dbname)")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires --store-db-connect (host=... port=... user=... dbname=...)")
		}
		return nil
	default:
		return fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}
