// Package storage keeps a history of completed level runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// LevelRun is one won level.
type LevelRun struct {
	ID         int64
	Level      string
	LevelIndex int
	Elapsed    float64 // seconds
	Frames     int
	Life       float64
	FirePieces int
	Deaths     int
	Autopilot  bool
	CreatedAt  time.Time
}

// LevelStats aggregates the runs of one level.
type LevelStats struct {
	Level      string
	Runs       int
	BestTime   float64
	AvgTime    float64
	BestLife   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			elapsed_secs REAL NOT NULL,
			frames INTEGER NOT NULL,
			life REAL NOT NULL,
			fire_pieces INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			autopilot INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_level ON level_runs(level);
		CREATE INDEX IF NOT EXISTS idx_level_runs_best ON level_runs(level, elapsed_secs);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a won level and returns the ID of the inserted record.
func (s *Store) SaveRun(run LevelRun) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO level_runs
		 (level, level_index, elapsed_secs, frames, life, fire_pieces, deaths, autopilot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Level,
		run.LevelIndex,
		run.Elapsed,
		run.Frames,
		run.Life,
		run.FirePieces,
		run.Deaths,
		run.Autopilot,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRuns retrieves the fastest runs of a level, quickest first.
func (s *Store) BestRuns(level string, limit int) ([]LevelRun, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_index, elapsed_secs, frames, life, fire_pieces, deaths, autopilot, created_at
		 FROM level_runs
		 WHERE level = ?
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []LevelRun
	for rows.Next() {
		var r LevelRun
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.LevelIndex, &r.Elapsed, &r.Frames, &r.Life,
			&r.FirePieces, &r.Deaths, &r.Autopilot, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestTime returns the fastest time for a level. ok is false when the
// level has no runs yet.
func (s *Store) BestTime(level string) (best float64, ok bool, err error) {
	var t sql.NullFloat64
	err = s.db.QueryRow(
		"SELECT MIN(elapsed_secs) FROM level_runs WHERE level = ?",
		level,
	).Scan(&t)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !t.Valid {
		return 0, false, nil
	}
	return t.Float64, true, nil
}

// Stats retrieves aggregated statistics for a level. It returns nil when
// the level has no runs.
func (s *Store) Stats(level string) (*LevelStats, error) {
	stats := &LevelStats{Level: level}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(elapsed_secs), AVG(elapsed_secs), MAX(life), MAX(created_at)
		 FROM level_runs WHERE level = ?
		 GROUP BY level`,
		level,
	).Scan(&stats.Runs, &stats.BestTime, &stats.AvgTime, &stats.BestLife, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes all runs of a level.
func (s *Store) ClearRuns(level string) error {
	if _, err := s.db.Exec("DELETE FROM level_runs WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both driver representations of DATETIME.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
