package models

// RoleType identifies one of the nine role variants.
type RoleType string

const (
	RoleWerewolf  RoleType = "werewolf"
	RoleWolfKing  RoleType = "wolf_king"
	RoleWhiteWolf RoleType = "white_wolf"
	RoleSeer      RoleType = "seer"
	RoleWitch     RoleType = "witch"
	RoleHunter    RoleType = "hunter"
	RoleGuard     RoleType = "guard"
	RoleKnight    RoleType = "knight"
	RoleVillager  RoleType = "villager"
)

// Camp is the coarse grouping used for total-kill win conditions.
type Camp string

const (
	CampWerewolf Camp = "werewolf"
	CampGods     Camp = "gods"
	CampVillager Camp = "villager"
)

// Team is the binary grouping used for the majority win condition and
// for seer check results.
type Team string

const (
	TeamWerewolf Team = "werewolf"
	TeamGood     Team = "good"
)

// Ability describes one skill a role holds. A UsageLimit of 0 means
// the ability is not limited per game.
type Ability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UsageLimit  int    `json:"usageLimit,omitempty"`
	Night       bool   `json:"night,omitempty"`
	Day         bool   `json:"day,omitempty"`
}

// Role is an immutable catalog entry. Instances are created once by
// the roles package and copied into player records at game creation.
type Role struct {
	Type        RoleType  `json:"type"`
	Name        string    `json:"name"`
	Camp        Camp      `json:"camp"`
	Team        Team      `json:"team"`
	Abilities   []Ability `json:"abilities"`
	Description string    `json:"description"`
}
