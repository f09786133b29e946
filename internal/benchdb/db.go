// Package benchdb stores benchmark timings in SQLite.
package benchdb

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB
}

// Open opens or creates the SQLite database
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// InsertRun records a new run and returns its ID.
func (d *DB) InsertRun(r Run) (int64, error) {
	result, err := d.db.Exec(
		"INSERT INTO runs (source, scales, block, workers, started_at) VALUES (?, ?, ?, ?, ?)",
		r.Source, r.Scales, r.Block, r.Workers, r.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return result.LastInsertId()
}

// InsertTiming records or replaces the timing of one size of a run.
func (d *DB) InsertTiming(t Timing) (int64, error) {
	result, err := d.db.Exec(`INSERT OR REPLACE INTO timings
		(run_id, size, pixels, mark_len, apply_ms, decode_ms, jpeg_bytes, png_bytes, recovered, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Size, t.Pixels, t.MarkLen,
		t.ApplyMs, t.DecodeMs, t.JPEGBytes, t.PNGBytes, t.Recovered, nullString(t.Error),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert timing: %w", err)
	}
	return result.LastInsertId()
}

// Run returns the run with the given ID.
func (d *DB) Run(id int64) (*Run, error) {
	var (
		r       Run
		started string
	)
	err := d.db.QueryRow(
		"SELECT id, source, scales, block, workers, started_at FROM runs WHERE id = ?", id,
	).Scan(&r.ID, &r.Source, &r.Scales, &r.Block, &r.Workers, &started)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("failed to parse run start: %w", err)
	}
	return &r, nil
}

// Timings returns the timings of a run ordered by size.
func (d *DB) Timings(runID int64) ([]*Timing, error) {
	rows, err := d.db.Query(`SELECT
		id, run_id, size, pixels, mark_len, apply_ms, decode_ms, jpeg_bytes, png_bytes, recovered, error
		FROM timings WHERE run_id = ? ORDER BY size`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query timings: %w", err)
	}
	defer rows.Close()

	var timings []*Timing
	for rows.Next() {
		var (
			t      Timing
			errStr sql.NullString
		)
		if err := rows.Scan(
			&t.ID, &t.RunID, &t.Size, &t.Pixels, &t.MarkLen,
			&t.ApplyMs, &t.DecodeMs, &t.JPEGBytes, &t.PNGBytes, &t.Recovered, &errStr,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timing: %w", err)
		}
		t.Error = errStr.String
		timings = append(timings, &t)
	}
	return timings, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
