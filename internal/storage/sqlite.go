// Package storage provides SQLite-based run history for td.
// A run is the outcome of one session, never a save of simulation state.
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

	"github.com/vovakirdan/tui-towerdefense/internal/core"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the recorded outcome of one session.
type Run struct {
	ID        int64
	Layout    string
	Wave      int // highest wave reached
	Defeated  int
	Leaked    int
	Ticks     int
	Health    int
	GameOver  bool // false when the session was quit while alive
	CreatedAt time.Time
}

// NewRun builds a run record from the final state of a session.
func NewRun(layout string, st core.GameState) Run {
	return Run{
		Layout:   layout,
		Wave:     st.Wave,
		Defeated: st.Score,
		Leaked:   st.Leaked,
		Ticks:    st.Ticks,
		Health:   st.Health,
		GameOver: st.GameOver,
	}
}

// RunStats contains aggregated statistics for a layout.
type RunStats struct {
	Layout      string
	RunsCount   int
	BestWave    int
	AvgWave     float64
	TotalKills  int64
	TotalLeaked int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path. The path is
// used as given; callers expand "~" first. It creates the parent
// directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			wave INTEGER NOT NULL,
			defeated INTEGER NOT NULL DEFAULT 0,
			leaked INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(layout, wave DESC, defeated DESC);
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

// SaveRun records a finished session and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (layout, wave, defeated, leaked, ticks, health, game_over)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Layout, r.Wave, r.Defeated, r.Leaked, r.Ticks, r.Health, r.GameOver,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for a layout, by wave then defeated enemies.
func (s *Store) TopRuns(layout string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, layout, wave, defeated, leaked, ticks, health, game_over, created_at
		 FROM runs
		 WHERE layout = ?
		 ORDER BY wave DESC, defeated DESC, id ASC
		 LIMIT ?`,
		layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs across all layouts, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, layout, wave, defeated, leaked, ticks, health, game_over, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Layout, &r.Wave, &r.Defeated, &r.Leaked,
			&r.Ticks, &r.Health, &r.GameOver, &createdAt); err != nil {
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

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestWave returns the highest wave reached on a layout.
// Returns 0 if no runs exist.
func (s *Store) BestWave(layout string) (int, error) {
	var wave sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(wave) FROM runs WHERE layout = ?",
		layout,
	).Scan(&wave)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best wave: %w", err)
	}

	if !wave.Valid {
		return 0, nil
	}

	return int(wave.Int64), nil
}

// ClearRuns deletes all runs for a layout.
func (s *Store) ClearRuns(layout string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE layout = ?", layout)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a layout.
func (s *Store) Stats(layout string) (*RunStats, error) {
	stats := &RunStats{Layout: layout}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(wave), 0), COALESCE(AVG(wave), 0),
		        COALESCE(SUM(defeated), 0), COALESCE(SUM(leaked), 0)
		 FROM runs WHERE layout = ?`,
		layout,
	).Scan(&stats.RunsCount, &stats.BestWave, &stats.AvgWave, &stats.TotalKills, &stats.TotalLeaked)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE layout = ? ORDER BY id DESC LIMIT 1`,
		layout,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every layout that has been played.
func (s *Store) AllStats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT layout, COUNT(*), MAX(wave), AVG(wave), SUM(defeated), SUM(leaked), MAX(created_at)
		 FROM runs
		 GROUP BY layout`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var rs RunStats
		var lastPlayed any
		if err := rows.Scan(&rs.Layout, &rs.RunsCount, &rs.BestWave, &rs.AvgWave,
			&rs.TotalKills, &rs.TotalLeaked, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		rs.LastPlayed = parseTime(lastPlayed)
		stats[rs.Layout] = &rs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
