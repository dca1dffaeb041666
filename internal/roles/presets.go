package roles

import (
	"fmt"
	"time"

	"wolfjudge/internal/models"
)

// Preset is a named board: a fixed role list for a fixed seat count.
type Preset struct {
	Mode        models.GameMode
	PlayerCount int
	Roles       []models.RoleType
	Description string
}

// Presets lists the built-in boards in menu order.
var Presets = []Preset{
	{
		Mode:        models.ModeNine,
		PlayerCount: 9,
		Roles: []models.RoleType{
			models.RoleWerewolf, models.RoleWerewolf, models.RoleWerewolf,
			models.RoleVillager, models.RoleVillager, models.RoleVillager,
			models.RoleSeer, models.RoleWitch, models.RoleHunter,
		},
		Description: "3 wolves, 3 villagers, 3 gods; the starter board",
	},
	{
		Mode:        models.ModeTen,
		PlayerCount: 10,
		Roles: []models.RoleType{
			models.RoleWerewolf, models.RoleWerewolf, models.RoleWerewolf,
			models.RoleVillager, models.RoleVillager, models.RoleVillager, models.RoleVillager,
			models.RoleSeer, models.RoleWitch, models.RoleHunter,
		},
		Description: "3 wolves, 4 villagers, 3 gods",
	},
	{
		Mode:        models.ModeWolfKingGuard,
		PlayerCount: 12,
		Roles: []models.RoleType{
			models.RoleWolfKing, models.RoleWerewolf, models.RoleWerewolf, models.RoleWerewolf,
			models.RoleVillager, models.RoleVillager, models.RoleVillager, models.RoleVillager,
			models.RoleSeer, models.RoleWitch, models.RoleHunter, models.RoleGuard,
		},
		Description: "4 wolves (wolf king), 4 villagers, 4 gods with guard",
	},
	{
		Mode:        models.ModeWhiteWolfKnight,
		PlayerCount: 12,
		Roles: []models.RoleType{
			models.RoleWhiteWolf, models.RoleWerewolf, models.RoleWerewolf, models.RoleWerewolf,
			models.RoleVillager, models.RoleVillager, models.RoleVillager, models.RoleVillager,
			models.RoleSeer, models.RoleWitch, models.RoleHunter, models.RoleKnight,
		},
		Description: "4 wolves (white wolf king), 4 villagers, 4 gods with knight",
	},
}

// DefaultRules is the rules snapshot applied to every new game.
var DefaultRules = models.GameRules{
	WitchFirstNightSelfSave: false,
	GuardConsecutive:        false,
	GuardSelfProtect:        true,
	SameGuardSameSave:       true,
	FirstNightGuard:         true,
}

// NewConfig resolves a mode into a full game configuration. Custom
// mode requires a non-empty role list; preset modes ignore it.
func NewConfig(mode models.GameMode, customRoles []models.RoleType) (models.GameConfig, error) {
	var preset *Preset
	for i := range Presets {
		if Presets[i].Mode == mode {
			preset = &Presets[i]
			break
		}
	}

	if preset == nil && mode == models.ModeCustom {
		if len(customRoles) == 0 {
			return models.GameConfig{}, fmt.Errorf("custom mode requires a role list")
		}
		preset = &Preset{
			Mode:        models.ModeCustom,
			PlayerCount: len(customRoles),
			Roles:       customRoles,
			Description: "custom board",
		}
	}

	if preset == nil {
		return models.GameConfig{}, fmt.Errorf("unknown game mode %q", mode)
	}

	resolved := make([]models.Role, len(preset.Roles))
	for i, t := range preset.Roles {
		resolved[i] = Get(t)
	}

	return models.GameConfig{
		Mode:        preset.Mode,
		PlayerCount: preset.PlayerCount,
		Roles:       resolved,
		Rules:       DefaultRules,
		CreatedAt:   time.Now(),
	}, nil
}
