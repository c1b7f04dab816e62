// Package storage persists Galaxy Wars scores: a per-ruleset score history
// and the highscore key-value pairs the game loads at session start.
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

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
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

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and the driver's string form.
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

// BestScore returns the highest recorded score for the given game.
// Returns 0 if no scores exist.
func (s *Store) BestScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the score history and the stored highscore of a game.
func (s *Store) ClearScores(gameID, highscoreKey string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", highscoreKey); err != nil {
		return fmt.Errorf("storage: cannot clear highscore: %w", err)
	}
	return nil
}

// GetInt reads an integer value. ok is false when the key was never set.
func (s *Store) GetInt(key string) (value int, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// RaiseInt writes value only if it is higher than the stored one. The check
// and the write are one statement, so sessions sharing the database cannot
// lower each other's value.
func (s *Store) RaiseInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE excluded.value > kv.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Highscore returns the highscore stored under key, backed by the kv table.
func (s *Store) Highscore(key string) *SQLiteHighscore {
	return &SQLiteHighscore{store: s, key: key}
}

// SQLiteHighscore adapts one kv key to the game's highscore interface.
type SQLiteHighscore struct {
	store *Store
	key   string
}

// LoadHighscore returns the stored highscore, or 0 if none was saved.
func (h *SQLiteHighscore) LoadHighscore() (int, error) {
	v, _, err := h.store.GetInt(h.key)
	return v, err
}

// SaveHighscore stores score if it beats the stored highscore.
func (h *SQLiteHighscore) SaveHighscore(score int) error {
	return h.store.RaiseInt(h.key, score)
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
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
