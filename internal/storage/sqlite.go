package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"wolfjudge/internal/config"
	"wolfjudge/internal/models"
)

// DefaultHistoryLimit caps the game history at the 20 most recent
// entries; older ones are evicted.
const DefaultHistoryLimit = 20

// SQLite stores game states in a local SQLite database: one
// current-game slot plus a capped history table.
type SQLite struct {
	db           *sql.DB
	historyLimit int
}

// Open prepares the database at the given path and ensures the schema
// exists. A historyLimit of 0 applies DefaultHistoryLimit.
func Open(path string, historyLimit int) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, historyLimit: historyLimit}, nil
}

// OpenDefault opens the database configured through the environment.
func OpenDefault() (*SQLite, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return Open(cfg.DatabasePath, cfg.HistorySize)
}

func initSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS current_game (
			slot INTEGER PRIMARY KEY CHECK (slot = 1),
			game_id TEXT NOT NULL,
			state TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS game_history (
			game_id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_game_history_saved ON game_history(saved_at DESC);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveCurrentGame writes the single current-game slot.
func (s *SQLite) SaveCurrentGame(state *models.GameState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO current_game (slot, game_id, state, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET game_id = excluded.game_id,
			state = excluded.state, saved_at = excluded.saved_at`,
		state.ID, string(blob), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save current game: %w", err)
	}
	return nil
}

// LoadCurrentGame reads the current-game slot, returning nil with no
// error when the slot is empty.
func (s *SQLite) LoadCurrentGame() (*models.GameState, error) {
	var blob string
	err := s.db.QueryRow(`SELECT state FROM current_game WHERE slot = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load current game: %w", err)
	}
	return unmarshalState(blob)
}

// ClearCurrentGame empties the current-game slot.
func (s *SQLite) ClearCurrentGame() error {
	if _, err := s.db.Exec(`DELETE FROM current_game`); err != nil {
		return fmt.Errorf("clear current game: %w", err)
	}
	return nil
}

// SaveToHistory appends a game to the history, evicting the oldest
// entries beyond the limit. Saving the same game id again replaces
// its entry.
func (s *SQLite) SaveToHistory(state *models.GameState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO game_history (game_id, state, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(game_id) DO UPDATE SET state = excluded.state,
			saved_at = excluded.saved_at`,
		state.ID, string(blob), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save to history: %w", err)
	}

	_, err = s.db.Exec(`DELETE FROM game_history WHERE game_id NOT IN (
		SELECT game_id FROM game_history ORDER BY saved_at DESC, game_id LIMIT ?)`,
		s.historyLimit)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// GameHistory returns the stored games, most recently saved first.
func (s *SQLite) GameHistory() ([]*models.GameState, error) {
	rows, err := s.db.Query(`SELECT state FROM game_history ORDER BY saved_at DESC, game_id`)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var history []*models.GameState
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		state, err := unmarshalState(blob)
		if err != nil {
			return nil, err
		}
		history = append(history, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return history, nil
}

// DeleteFromHistory removes one game by id.
func (s *SQLite) DeleteFromHistory(id string) error {
	if _, err := s.db.Exec(`DELETE FROM game_history WHERE game_id = ?`, id); err != nil {
		return fmt.Errorf("delete from history: %w", err)
	}
	return nil
}

// ClearHistory removes every stored game.
func (s *SQLite) ClearHistory() error {
	if _, err := s.db.Exec(`DELETE FROM game_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func unmarshalState(blob string) (*models.GameState, error) {
	var state models.GameState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &state, nil
}
