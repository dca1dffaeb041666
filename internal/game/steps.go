package game

import "wolfjudge/internal/models"

// nightOrder is the canonical night sequence before filtering.
var nightOrder = []models.Step{
	models.StepGuard,
	models.StepWerewolf,
	models.StepSeer,
	models.StepWitch,
	models.StepHunterStatus,
}

// policePrefix is the day prefix used when a chief election runs.
var policePrefix = []models.Step{
	models.StepPoliceCampaign,
	models.StepPoliceSpeech,
	models.StepPoliceWithdraw,
	models.StepPoliceVote,
	models.StepDawn,
}

// selfDestructSteps are the day steps during which a werewolf may
// self-destruct.
var selfDestructSteps = map[models.Step]bool{
	models.StepPoliceCampaign: true,
	models.StepPoliceSpeech:   true,
	models.StepPoliceWithdraw: true,
	models.StepDiscussion:     true,
}

// NightSteps returns the night sequence filtered to steps whose
// governing role still has a living holder. The werewolf step keys on
// the werewolf team, the others on the exact role type. If nothing
// qualifies the sequence falls back to the werewolf step alone; no
// catalog board can actually produce that, it is a defensive default.
func NightSteps(players []*models.Player) []models.Step {
	var steps []models.Step
	for _, step := range nightOrder {
		if nightStepQualifies(step, players) {
			steps = append(steps, step)
		}
	}
	if len(steps) == 0 {
		steps = []models.Step{models.StepWerewolf}
	}
	return steps
}

func nightStepQualifies(step models.Step, players []*models.Player) bool {
	for _, p := range players {
		if !p.Alive {
			continue
		}
		switch step {
		case models.StepGuard:
			if p.Role.Type == models.RoleGuard {
				return true
			}
		case models.StepWerewolf:
			if p.Role.Team == models.TeamWerewolf {
				return true
			}
		case models.StepSeer:
			if p.Role.Type == models.RoleSeer {
				return true
			}
		case models.StepWitch:
			if p.Role.Type == models.RoleWitch {
				return true
			}
		case models.StepHunterStatus:
			if p.Role.Type == models.RoleHunter {
				return true
			}
		}
	}
	return false
}

// ShouldRunPoliceElection reports whether the day opens with the
// police campaign prefix: round 1 with no chief, or round 2 with no
// chief on a 12 or 15 seat board after at least one self-destruct.
func ShouldRunPoliceElection(state *models.GameState) bool {
	if state.Day.PoliceChief != 0 {
		return false
	}
	if state.Round == 1 {
		return true
	}
	return state.Round == 2 &&
		(state.Config.PlayerCount == 12 || state.Config.PlayerCount == 15) &&
		state.SelfDestructCount > 0
}

// ShootEligible reports whether a dying player may fire: a hunter with
// shoot rights who was not poisoned, or a wolf king who has not shot.
func ShootEligible(p *models.Player, poisoned bool) bool {
	if p == nil {
		return false
	}
	switch p.Role.Type {
	case models.RoleHunter:
		return p.CanShoot && !p.HasShot && !poisoned
	case models.RoleWolfKing:
		return !p.HasShot
	}
	return false
}

// DaySteps assembles the day sequence for the current state: the
// police prefix or a bare dawn, a skill activation step when a night
// death can fire, then last words, discussion, vote and execution.
func DaySteps(state *models.GameState) []models.Step {
	var steps []models.Step
	if ShouldRunPoliceElection(state) {
		steps = append(steps, policePrefix...)
	} else {
		steps = append(steps, models.StepDawn)
	}

	if needsSkillActivation(state) {
		steps = append(steps, models.StepSkill)
	}

	return append(steps,
		models.StepLastWords,
		models.StepDiscussion,
		models.StepVote,
		models.StepExecution,
	)
}

func needsSkillActivation(state *models.GameState) bool {
	for _, seat := range ResolveNightDeaths(state.Night) {
		poisoned := state.Night.PoisonTarget == seat
		if ShootEligible(state.PlayerBySeat(seat), poisoned) {
			return true
		}
	}
	return false
}

// AllowsSelfDestruct reports whether a werewolf self-destruct is legal
// during the given day step.
func AllowsSelfDestruct(step models.Step) bool {
	return selfDestructSteps[step]
}
