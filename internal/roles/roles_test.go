package roles

import (
	"testing"

	"wolfjudge/internal/models"
)

func TestPresetCompositions(t *testing.T) {
	for _, preset := range Presets {
		if len(preset.Roles) != preset.PlayerCount {
			t.Errorf("%s: %d roles for %d seats", preset.Mode, len(preset.Roles), preset.PlayerCount)
		}

		wolves := 0
		for _, rt := range preset.Roles {
			if Get(rt).Team == models.TeamWerewolf {
				wolves++
			}
		}
		if wolves == 0 || wolves*2 >= preset.PlayerCount {
			t.Errorf("%s: %d wolves on a %d seat board", preset.Mode, wolves, preset.PlayerCount)
		}
	}
}

func TestNewConfigPreset(t *testing.T) {
	cfg, err := NewConfig(models.ModeNine, nil)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.PlayerCount != 9 {
		t.Errorf("player count = %d, want 9", cfg.PlayerCount)
	}
	if len(cfg.Roles) != 9 {
		t.Errorf("roles = %d, want 9", len(cfg.Roles))
	}
	if cfg.Mode != models.ModeNine {
		t.Errorf("mode = %s, want %s", cfg.Mode, models.ModeNine)
	}
	if !cfg.Rules.SameGuardSameSave {
		t.Error("default rules must enable same-guard-same-save")
	}
	if cfg.Rules.WitchFirstNightSelfSave {
		t.Error("default rules must forbid first night self-save")
	}
}

func TestNewConfigCustom(t *testing.T) {
	custom := []models.RoleType{
		models.RoleWerewolf, models.RoleWerewolf,
		models.RoleSeer, models.RoleVillager, models.RoleVillager,
	}
	cfg, err := NewConfig(models.ModeCustom, custom)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.PlayerCount != 5 {
		t.Errorf("player count = %d, want 5", cfg.PlayerCount)
	}
	for i, role := range cfg.Roles {
		if role.Type != custom[i] {
			t.Errorf("role %d = %s, want %s", i, role.Type, custom[i])
		}
	}
}

func TestNewConfigCustomWithoutRoles(t *testing.T) {
	if _, err := NewConfig(models.ModeCustom, nil); err == nil {
		t.Fatal("expected error for custom mode without roles")
	}
}

func TestNewConfigUnknownMode(t *testing.T) {
	if _, err := NewConfig(models.GameMode("13_players"), nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	cfg, err := NewConfig(models.ModeWolfKingGuard, nil)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	shuffled := Shuffle(cfg.Roles)
	if len(shuffled) != len(cfg.Roles) {
		t.Fatalf("len = %d, want %d", len(shuffled), len(cfg.Roles))
	}

	count := make(map[models.RoleType]int)
	for _, role := range cfg.Roles {
		count[role.Type]++
	}
	for _, role := range shuffled {
		count[role.Type]--
	}
	for rt, n := range count {
		if n != 0 {
			t.Errorf("role %s off by %d after shuffle", rt, n)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	cfg, err := NewConfig(models.ModeNine, nil)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	before := make([]models.RoleType, len(cfg.Roles))
	for i, role := range cfg.Roles {
		before[i] = role.Type
	}

	Shuffle(cfg.Roles)

	for i, role := range cfg.Roles {
		if role.Type != before[i] {
			t.Fatalf("input mutated at %d: %s != %s", i, role.Type, before[i])
		}
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown role type")
		}
	}()
	Get(models.RoleType("vampire"))
}
