// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionRecord represents one finished play session.
type SessionRecord struct {
	ID            int64
	Score         int
	PeakTier      int
	RoundsWon     int
	RoundsMissed  int
	DurationTicks int64
	Player        string // empty for local play, SSH user for remote
	CreatedAt     time.Time
}

// SessionStats contains aggregated statistics over all recorded sessions.
type SessionStats struct {
	Sessions   int
	HighScore  int
	AvgScore   float64
	TotalWon   int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			peak_tier INTEGER NOT NULL DEFAULT 0,
			rounds_won INTEGER NOT NULL DEFAULT 0,
			rounds_missed INTEGER NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (score, peak_tier, rounds_won, rounds_missed, duration_ticks, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Score, rec.PeakTier, rec.RoundsWon, rec.RoundsMissed, rec.DurationTicks, rec.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the top N sessions ordered by score descending.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, peak_tier, rounds_won, rounds_missed, duration_ticks, player, created_at
		 FROM sessions
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// scanSession reads one session row, tolerating both time.Time and string
// datetime representations from the driver.
func scanSession(rows *sql.Rows) (SessionRecord, error) {
	var rec SessionRecord
	var createdAt any
	if err := rows.Scan(
		&rec.ID, &rec.Score, &rec.PeakTier, &rec.RoundsWon, &rec.RoundsMissed,
		&rec.DurationTicks, &rec.Player, &createdAt,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.CreatedAt = parseCreatedAt(createdAt)
	return rec, nil
}

func parseCreatedAt(v any) time.Time {
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

// HighScore returns the highest recorded score.
// Returns 0 if no sessions exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics over all recorded sessions.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(rounds_won), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.HighScore, &stats.AvgScore, &stats.TotalWon)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// PlayerSessions retrieves the top sessions for a specific player.
func (s *Store) PlayerSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, peak_tier, rounds_won, rounds_missed, duration_ticks, player, created_at
		 FROM sessions
		 WHERE player = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
