// Package storage provides SQLite-based persistence for round history.
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

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	GameID    string
	Round     int
	Level     int
	Players   int
	Winner    int // 1-based seat, 0 when nobody won
	Draw      bool
	Ticks     uint64
	CreatedAt time.Time
}

// RoundStats contains aggregated statistics for a game.
type RoundStats struct {
	GameID      string
	RoundsCount int
	Draws       int
	LongestTick uint64
	MaxLevel    int
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			level INTEGER NOT NULL,
			players INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			draw INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_winner ON rounds(game_id, winner);
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

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.Draw {
		r.Winner = 0
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, round, level, players, winner, draw, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Round, r.Level, r.Players, r.Winner, r.Draw, int64(r.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the last N rounds for the given game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, round, level, players, winner, draw, ticks, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Round,
			&r.Level,
			&r.Players,
			&r.Winner,
			&r.Draw,
			&ticks,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// WinTally returns the number of rounds won per seat for the given game.
// Draws and rounds without a winner are not counted.
func (s *Store) WinTally(gameID string) (map[int]int, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*)
		 FROM rounds
		 WHERE game_id = ? AND winner > 0
		 GROUP BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	tally := make(map[int]int)
	for rows.Next() {
		var seat, wins int
		if err := rows.Scan(&seat, &wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally[seat] = wins
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tally, nil
}

// GetRoundStats retrieves aggregated statistics for a specific game.
func (s *Store) GetRoundStats(gameID string) (*RoundStats, error) {
	stats := &RoundStats{GameID: gameID}

	var longest int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(draw), 0), COALESCE(MAX(ticks), 0), COALESCE(MAX(level), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RoundsCount, &stats.Draws, &longest, &stats.MaxLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.LongestTick = uint64(longest)

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRounds removes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime converts a scanned DATETIME column.
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
