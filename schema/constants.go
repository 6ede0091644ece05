package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the activity store.
	DatabaseBackend string

	// Metric represents the value plotted in a heatmap cell.
	Metric string

	// SportKind represents the activity type recorded by the tracker.
	SportKind string

	// WeekdayOrder represents a named ordering of the weekday axis.
	WeekdayOrder string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All heatmap metrics supported.
const (
	CountMetric    Metric = "counts" // default
	DistanceMetric Metric = "distance"
)

// Sport kinds seen in tracker CSV exports. Unknown values are kept verbatim
// so that filtering by an unrecognized sport still works.
const (
	SportRunning SportKind = "Running"
	SportCycling SportKind = "Cycling"
	SportWalking SportKind = "Walking"
	SportHiking  SportKind = "Hiking"
	SportAll     SportKind = "All"
)

// All weekday axis orderings supported.
const (
	SundayFirst WeekdayOrder = "sunday-first" // default
	MondayFirst WeekdayOrder = "monday-first"
)

// Grid dimensions for the weekly heatmap.
const (
	HoursPerDay = 24
	DaysPerWeek = 7

	// GridSize is the number of cells in a complete weekday x hour grid.
	GridSize = HoursPerDay * DaysPerWeek
)
