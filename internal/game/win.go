// Package game holds the pure rule functions of the judge engine:
// win evaluation, vote tallying, night resolution and step
// sequencing. Nothing in this package mutates game state.
package game

import "wolfjudge/internal/models"

// Win reasons, in check order.
const (
	ReasonWolvesEliminated    = "all werewolves eliminated"
	ReasonGodsEliminated      = "all gods eliminated"
	ReasonVillagersEliminated = "all villagers eliminated"
	ReasonWolfMajority        = "werewolves reached parity with the good team"
)

// WinResult is the outcome of a win check. Winner is empty while the
// game is still undecided.
type WinResult struct {
	Winner models.Team
	Reason string
}

// CheckWin evaluates the win conditions against the living players.
// The checks run in fixed precedence: wolves wiped, gods wiped,
// villagers wiped, wolf parity. It is pure; callers are responsible
// for writing the result into the game state.
func CheckWin(players []*models.Player) WinResult {
	var wolves, good, gods, villagers int
	for _, p := range players {
		if !p.Alive {
			continue
		}
		if p.Role.Team == models.TeamWerewolf {
			wolves++
		} else {
			good++
		}
		switch p.Role.Camp {
		case models.CampGods:
			gods++
		case models.CampVillager:
			villagers++
		}
	}

	if wolves == 0 {
		return WinResult{Winner: models.TeamGood, Reason: ReasonWolvesEliminated}
	}
	if gods == 0 {
		return WinResult{Winner: models.TeamWerewolf, Reason: ReasonGodsEliminated}
	}
	if villagers == 0 && gods > 0 {
		return WinResult{Winner: models.TeamWerewolf, Reason: ReasonVillagersEliminated}
	}
	if wolves >= good {
		return WinResult{Winner: models.TeamWerewolf, Reason: ReasonWolfMajority}
	}
	return WinResult{}
}
