// Package storage persists high scores and the run history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	RunID     uuid.UUID
	Variant   string
	Score     int
	Bricks    int // bricks destroyed
	BallsLost int
	Won       bool
	Ticks     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			bricks INTEGER NOT NULL DEFAULT 0,
			balls_lost INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
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

// HighScore returns the stored best score for key, or 0 if there is none.
func (s *Store) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore stores score as the best score for key, replacing any
// previous value.
func (s *Store) SetHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// HighScores returns a view of the best score under key that a game can
// load and save without knowing about the database.
func (s *Store) HighScores(key string) *KeyedHighScore {
	return &KeyedHighScore{store: s, key: key}
}

// KeyedHighScore is a single high score slot.
type KeyedHighScore struct {
	store *Store
	key   string
}

// LoadHighScore returns the stored score.
func (k *KeyedHighScore) LoadHighScore() (int, error) {
	return k.store.HighScore(k.key)
}

// SaveHighScore replaces the stored score.
func (k *KeyedHighScore) SaveHighScore(score int) error {
	return k.store.SetHighScore(k.key, score)
}

// SaveRun records a finished game. A nil RunID gets a fresh one, which is
// returned.
func (s *Store) SaveRun(r Run) (uuid.UUID, error) {
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, variant, score, bricks, balls_lost, won, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.Variant, r.Score, r.Bricks, r.BallsLost, r.Won, r.Ticks,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

const runColumns = `id, run_id, variant, score, bricks, balls_lost, won, ticks, created_at`

// TopRuns returns the best runs of variant, highest score first. Ties go
// to the run that destroyed more bricks.
func (s *Store) TopRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, bricks DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// RecentRuns returns the latest runs across all variants.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunByID returns the run with the given run ID, or nil if there is none.
func (s *Store) RunByID(id uuid.UUID) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, id.String())
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			runID     string
			createdAt any
		)
		if err := rows.Scan(&r.ID, &runID, &r.Variant, &r.Score, &r.Bricks, &r.BallsLost, &r.Won, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// ClearVariant deletes the run history and the high score of variant.
func (s *Store) ClearVariant(variant string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM runs WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE key = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a variant.
type Stats struct {
	Variant    string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	Bricks     int64
	LastPlayed time.Time
}

// AllStats returns statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), COALESCE(SUM(won), 0), MAX(score), AVG(score), COALESCE(SUM(bricks), 0), MAX(created_at)
		 FROM runs
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.Runs, &st.Wins, &st.HighScore, &st.AvgScore, &st.Bricks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and the text form SQLite hands back.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
