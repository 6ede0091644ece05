// Package activitystore persists imported activities in a SQL backend.
package activitystore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

const tableName = "activities"

// Store handles durable activity storage using various database backends.
// Timestamps are stored as Unix seconds and read back in local time, so the
// calendar derivations match a fresh CSV read on the same machine.
type Store struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.ActivityStore = &Store{} // Compile-time check

// Open initializes a store for the given backend. The SQLite backend falls
// back to a per-user default database file when connStr is empty.
func Open(backend schema.DatabaseBackend, connStr string) (*Store, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = DefaultDBFilePath()
			if mkErr := os.MkdirAll(filepath.Dir(dbPath), 0o755); mkErr != nil {
				return nil, fmt.Errorf("cannot create store directory: %w", mkErr)
			}
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		connStr = dbPath

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=stridemap
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Bootstrap the table so first use works without an explicit migrate run
	if _, err := db.Exec(getCreateTableQuery()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &Store{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// DefaultDBFilePath returns the per-user default SQLite database location.
func DefaultDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stridemap.db"
	}
	return filepath.Join(home, ".stridemap", "activities.db")
}

// getCreateTableQuery returns the CREATE TABLE bootstrap query.
func getCreateTableQuery() string {
	// Types chosen to be valid on all three backends.
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			start_unix BIGINT NOT NULL,
			sport VARCHAR(64) NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			calories DOUBLE PRECISION,
			duration VARCHAR(32),
			avg_pace VARCHAR(32),
			elev_gain_m DOUBLE PRECISION,
			PRIMARY KEY (start_unix, sport)
		);
	`, tableName)
}

// getUpsertQuery returns the backend-specific insert-or-replace statement.
func getUpsertQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			INSERT INTO %s (start_unix, sport, distance_km, calories, duration, avg_pace, elev_gain_m)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				distance_km = VALUES(distance_km), calories = VALUES(calories),
				duration = VALUES(duration), avg_pace = VALUES(avg_pace),
				elev_gain_m = VALUES(elev_gain_m)
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			INSERT INTO %s (start_unix, sport, distance_km, calories, duration, avg_pace, elev_gain_m)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (start_unix, sport) DO UPDATE SET
				distance_km = EXCLUDED.distance_km, calories = EXCLUDED.calories,
				duration = EXCLUDED.duration, avg_pace = EXCLUDED.avg_pace,
				elev_gain_m = EXCLUDED.elev_gain_m
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			INSERT INTO %s (start_unix, sport, distance_km, calories, duration, avg_pace, elev_gain_m)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (start_unix, sport) DO UPDATE SET
				distance_km = excluded.distance_km, calories = excluded.calories,
				duration = excluded.duration, avg_pace = excluded.avg_pace,
				elev_gain_m = excluded.elev_gain_m
		`, tableName)
	}
}

// SaveActivities upserts all activities in one transaction.
func (s *Store) SaveActivities(ctx context.Context, acts []schema.Activity) (int, error) {
	if len(acts) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, getUpsertQuery(s.backend))
	if err != nil {
		return 0, fmt.Errorf("cannot prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range acts {
		_, err := stmt.ExecContext(ctx,
			a.StartTime.Unix(),
			string(a.Sport),
			a.DistanceKm,
			a.Calories,
			nullableString(a.Duration),
			nullableString(a.AvgPace),
			a.ElevGainM,
		)
		if err != nil {
			return 0, fmt.Errorf("cannot upsert activity at %s: %w", a.StartTime, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("cannot commit: %w", err)
	}
	return len(acts), nil
}

// ListActivities returns all stored activities ordered by start time.
func (s *Store) ListActivities(ctx context.Context) ([]schema.Activity, error) {
	query := fmt.Sprintf(`
		SELECT start_unix, sport, distance_km, calories, duration, avg_pace, elev_gain_m
		FROM %s ORDER BY start_unix
	`, tableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var acts []schema.Activity
	for rows.Next() {
		var startUnix int64
		var sport string
		var a schema.Activity
		var duration, avgPace sql.NullString
		if err := rows.Scan(&startUnix, &sport, &a.DistanceKm, &a.Calories, &duration, &avgPace, &a.ElevGainM); err != nil {
			return nil, err
		}
		a.StartTime = time.Unix(startUnix, 0)
		a.Sport = schema.SportKind(sport)
		a.Duration = duration.String
		a.AvgPace = avgPace.String
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

// Status reports backend identity and row counts.
func (s *Store) Status(ctx context.Context) (*schema.StoreStatus, error) {
	status := &schema.StoreStatus{
		Backend:  s.backend,
		Location: s.location(),
	}

	query := fmt.Sprintf(`SELECT COUNT(*), COALESCE(MIN(start_unix), 0), COALESCE(MAX(start_unix), 0) FROM %s`, tableName)
	var first, last int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&status.Activities, &first, &last); err != nil {
		return nil, err
	}
	if status.Activities > 0 {
		status.First = time.Unix(first, 0)
		status.Last = time.Unix(last, 0)
	}
	return status, nil
}

// Clear removes all stored activities.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, tableName))
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// location describes the store target without leaking credentials.
func (s *Store) location() string {
	if s.backend == schema.SQLiteBackend {
		return s.connStr
	}
	// Keep only the part after the credentials, if any.
	if i := strings.LastIndex(s.connStr, "@"); i >= 0 {
		return s.connStr[i+1:]
	}
	return s.connStr
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
