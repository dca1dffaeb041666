// Package storage persists game states: a SQLite-backed current-game
// slot with a capped history, and a versioned JSON export format.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wolfjudge/internal/models"
)

// ExportVersion tags exported blobs.
const ExportVersion = "1.0.0"

// ErrInvalidExport marks a blob without the expected game-state field.
var ErrInvalidExport = errors.New("invalid export: missing game state")

type exportEnvelope struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	GameState  *models.GameState `json:"gameState"`
}

// ExportGame serializes a game into a versioned, timestamped blob.
// Date fields travel as RFC 3339 strings.
func ExportGame(state *models.GameState) ([]byte, error) {
	blob, err := json.MarshalIndent(exportEnvelope{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		GameState:  state,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export game: %w", err)
	}
	return blob, nil
}

// ImportGame parses an exported blob back into a game state,
// rejecting blobs that lack the game-state field.
func ImportGame(blob []byte) (*models.GameState, error) {
	var envelope exportEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return nil, fmt.Errorf("import game: %w", err)
	}
	if envelope.GameState == nil {
		return nil, ErrInvalidExport
	}
	return envelope.GameState, nil
}
