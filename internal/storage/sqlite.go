// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only final results are recorded; live game state is never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// Match result constants.
const (
	ResultWhite = "white"
	ResultBlack = "black"
	ResultDraw  = "draw"

	EndReasonCompleted = "completed" // Game-over condition was reached
	EndReasonAbandoned = "abandoned" // Player left or started a new game mid-match
)

// MatchRecord is the result of a finished (or abandoned) match.
type MatchRecord struct {
	Mode         string // "local" or "ssh"
	Session      string // SSH session user, empty for local play
	WhiteScore   int
	BlackScore   int
	Result       string // ResultWhite, ResultBlack or ResultDraw
	EndReason    string // EndReasonCompleted or EndReasonAbandoned
	Moves        int    // Number of accepted moves
	DurationSecs int
}

// MatchEntry is a stored match row.
type MatchEntry struct {
	ID int64
	MatchRecord
	CreatedAt time.Time
}

// Tally aggregates match outcomes.
type Tally struct {
	Total     int
	WhiteWins int
	BlackWins int
	Draws     int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			white_score INTEGER NOT NULL,
			black_score INTEGER NOT NULL,
			result TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_result ON matches(result);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (mode, session, white_score, black_score, result, end_reason, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Mode, rec.Session, rec.WhiteScore, rec.BlackScore,
		rec.Result, rec.EndReason, rec.Moves, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent N matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, session, white_score, black_score, result, end_reason, moves, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Session, &e.WhiteScore, &e.BlackScore,
			&e.Result, &e.EndReason, &e.Moves, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// MatchTally returns aggregate win counts across all completed matches.
func (s *Store) MatchTally() (Tally, error) {
	var t Tally
	rows, err := s.db.Query(
		`SELECT result, COUNT(*) FROM matches
		 WHERE end_reason = ?
		 GROUP BY result`,
		EndReasonCompleted,
	)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result string
		var count int
		if err := rows.Scan(&result, &count); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.Total += count
		switch result {
		case ResultWhite:
			t.WhiteWins = count
		case ResultBlack:
			t.BlackWins = count
		case ResultDraw:
			t.Draws = count
		}
	}

	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return t, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
