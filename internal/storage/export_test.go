package storage

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExportImportRoundtrip(t *testing.T) {
	game := sampleGame(t, "export-me")

	blob, err := ExportGame(game)
	if err != nil {
		t.Fatalf("ExportGame: %v", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(blob, &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	var version string
	if err := json.Unmarshal(envelope["version"], &version); err != nil || version != ExportVersion {
		t.Errorf("version = %q, want %q", version, ExportVersion)
	}

	imported, err := ImportGame(blob)
	if err != nil {
		t.Fatalf("ImportGame: %v", err)
	}
	if imported.ID != "export-me" {
		t.Errorf("id = %s, want export-me", imported.ID)
	}
	if imported.Round != game.Round || imported.Day.PoliceChief != game.Day.PoliceChief {
		t.Errorf("state lost in roundtrip: round=%d chief=%d", imported.Round, imported.Day.PoliceChief)
	}
	if !imported.CreatedAt.Equal(game.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", imported.CreatedAt, game.CreatedAt)
	}
	if len(imported.Players) != len(game.Players) {
		t.Errorf("players = %d, want %d", len(imported.Players), len(game.Players))
	}
}

func TestImportGameMissingState(t *testing.T) {
	blob := []byte(`{"version":"1.0.0","exportedAt":"2026-08-30T20:00:00Z"}`)
	if _, err := ImportGame(blob); !errors.Is(err, ErrInvalidExport) {
		t.Fatalf("err = %v, want ErrInvalidExport", err)
	}
}

func TestImportGameMalformed(t *testing.T) {
	if _, err := ImportGame([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed blob")
	}
}

func TestImportGameWrongShape(t *testing.T) {
	// A valid JSON document that is not an export envelope still fails
	// the game-state check instead of importing garbage.
	if _, err := ImportGame([]byte(`{"foo": 1}`)); !errors.Is(err, ErrInvalidExport) {
		t.Fatalf("err = %v, want ErrInvalidExport", err)
	}
}
