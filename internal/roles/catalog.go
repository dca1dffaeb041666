// Package roles holds the static role catalog and the preset boards
// games are created from.
package roles

import (
	"fmt"
	"math/rand"

	"wolfjudge/internal/models"
)

var catalog = map[models.RoleType]models.Role{
	models.RoleWerewolf: {
		Type: models.RoleWerewolf,
		Name: "Werewolf",
		Camp: models.CampWerewolf,
		Team: models.TeamWerewolf,
		Abilities: []models.Ability{
			{ID: "kill", Name: "Kill", Description: "Agrees a kill target with the pack each night", Night: true},
		},
		Description: "Kills one player per night with the pack and knows the other wolves",
	},
	models.RoleWolfKing: {
		Type: models.RoleWolfKing,
		Name: "Wolf King",
		Camp: models.CampWerewolf,
		Team: models.TeamWerewolf,
		Abilities: []models.Ability{
			{ID: "kill", Name: "Kill", Description: "Agrees a kill target with the pack each night", Night: true},
			{ID: "shoot", Name: "Shoot", Description: "Takes one player down when voted out", UsageLimit: 1, Day: true},
		},
		Description: "A werewolf that may shoot when exiled by vote, but not when poisoned",
	},
	models.RoleWhiteWolf: {
		Type: models.RoleWhiteWolf,
		Name: "White Wolf King",
		Camp: models.CampWerewolf,
		Team: models.TeamWerewolf,
		Abilities: []models.Ability{
			{ID: "kill", Name: "Kill", Description: "Agrees a kill target with the pack each night", Night: true},
			{ID: "bomb", Name: "Self-destruct", Description: "Blows up during a speech step and takes one player along", UsageLimit: 1, Day: true},
		},
		Description: "A werewolf that may self-destruct by day and take one player along",
	},
	models.RoleSeer: {
		Type: models.RoleSeer,
		Name: "Seer",
		Camp: models.CampGods,
		Team: models.TeamGood,
		Abilities: []models.Ability{
			{ID: "check", Name: "Check", Description: "Learns one player's alignment each night", Night: true},
		},
		Description: "Checks one player per night and learns good or werewolf",
	},
	models.RoleWitch: {
		Type: models.RoleWitch,
		Name: "Witch",
		Camp: models.CampGods,
		Team: models.TeamGood,
		Abilities: []models.Ability{
			{ID: "antidote", Name: "Antidote", Description: "Saves the night's kill target", UsageLimit: 1, Night: true},
			{ID: "poison", Name: "Poison", Description: "Poisons one player", UsageLimit: 1, Night: true},
		},
		Description: "Holds one antidote and one poison for the whole game; no self-save on the first night",
	},
	models.RoleHunter: {
		Type: models.RoleHunter,
		Name: "Hunter",
		Camp: models.CampGods,
		Team: models.TeamGood,
		Abilities: []models.Ability{
			{ID: "shoot", Name: "Shoot", Description: "Takes one player down on elimination", UsageLimit: 1, Day: true},
		},
		Description: "Shoots one player when eliminated, unless killed by poison",
	},
	models.RoleGuard: {
		Type: models.RoleGuard,
		Name: "Guard",
		Camp: models.CampGods,
		Team: models.TeamGood,
		Abilities: []models.Ability{
			{ID: "guard", Name: "Protect", Description: "Protects one player from the night kill", Night: true},
		},
		Description: "Protects one player per night, never the same player twice in a row",
	},
	models.RoleKnight: {
		Type: models.RoleKnight,
		Name: "Knight",
		Camp: models.CampGods,
		Team: models.TeamGood,
		Abilities: []models.Ability{
			{ID: "duel", Name: "Duel", Description: "Challenges a player by day", UsageLimit: 1, Day: true},
		},
		Description: "Duels one player by day; a werewolf target dies, otherwise the knight does",
	},
	models.RoleVillager: {
		Type:        models.RoleVillager,
		Name:        "Villager",
		Camp:        models.CampVillager,
		Team:        models.TeamGood,
		Abilities:   nil,
		Description: "No special skill; speaks and votes",
	},
}

// Get returns the catalog entry for a role type. An unknown type is a
// programmer error and panics.
func Get(t models.RoleType) models.Role {
	role, ok := catalog[t]
	if !ok {
		panic(fmt.Sprintf("roles: unknown role type %q", t))
	}
	return role
}

// Shuffle returns a Fisher-Yates shuffled copy of the role list.
func Shuffle(roles []models.Role) []models.Role {
	shuffled := make([]models.Role, len(roles))
	copy(shuffled, roles)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
