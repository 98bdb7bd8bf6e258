// Package history records suggestions in a local SQLite database so past
// picks can be reviewed. The yes/no feedback given after a suggestion is
// deliberately not stored.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and path.
type DB struct {
	sql  *sql.DB
	path string
}

// Record is one suggestion made to the user.
type Record struct {
	ID        int64
	Time      time.Time
	Mood      string
	TaskTitle string
	Source    string // ai or fallback
	Reason    string
}

// DefaultPath returns the default database path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "moodtask", "moodtask.db")
}

// Open opens or creates the database, applies pragmas, and runs migrations.
func Open(dbPath string) (*DB, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}

	resolved := expandPath(dbPath)
	if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := applyPragmas(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := Migrate(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &DB{sql: sqlDB, path: resolved}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Add inserts a suggestion record.
func (d *DB) Add(rec Record) error {
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	_, err := d.sql.Exec(
		`INSERT INTO suggestions (suggested_at, mood, task_title, source, reason) VALUES (?, ?, ?, ?, ?)`,
		rec.Time.UTC(), rec.Mood, rec.TaskTitle, rec.Source, rec.Reason,
	)
	if err != nil {
		return fmt.Errorf("inserting suggestion: %w", err)
	}
	return nil
}

// Recent returns the last n suggestions, most recent first.
func (d *DB) Recent(n int) ([]Record, error) {
	if n <= 0 {
		n = 10
	}

	rows, err := d.sql.Query(
		`SELECT id, suggested_at, mood, task_title, source, reason
		 FROM suggestions ORDER BY suggested_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying suggestions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Time, &rec.Mood, &rec.TaskTitle, &rec.Source, &rec.Reason); err != nil {
			return nil, fmt.Errorf("scanning suggestion: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored suggestions.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.sql.QueryRow(`SELECT COUNT(*) FROM suggestions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting suggestions: %w", err)
	}
	return count, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
