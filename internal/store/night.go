package store

import (
	"fmt"

	"wolfjudge/internal/models"
)

// SetGuardTarget records the guard's protection for the night. The
// target must differ from the previous night's target.
func (s *GameStore) SetGuardTarget(target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	guard := livingByRole(st, models.RoleGuard)
	if guard == nil {
		return fmt.Errorf("guard: %w", ErrNoLivingActor)
	}
	victim := st.PlayerBySeat(target)
	if victim == nil {
		return fmt.Errorf("guard: %w", ErrUnknownSeat)
	}
	if !victim.Alive {
		return fmt.Errorf("guard: %w", ErrDeadTarget)
	}
	if !st.Config.Rules.GuardConsecutive && st.Night.GuardLastTarget == target {
		return ErrGuardRepeat
	}

	st.Night.GuardTarget = target
	st.Night.GuardLastTarget = target
	guard.Used.GuardHistory = append(guard.Used.GuardHistory, target)

	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseNight,
		Step:   models.StepGuard,
		Actor:  guard.Seat,
		Action: models.ActionGuard,
		Target: target,
	})
	return nil
}

// SetWolfKillTarget records the pack's kill choice for the night.
// The actor is recorded as 0, a whole-team action.
func (s *GameStore) SetWolfKillTarget(target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	victim := st.PlayerBySeat(target)
	if victim == nil {
		return fmt.Errorf("wolf kill: %w", ErrUnknownSeat)
	}
	if !victim.Alive {
		return fmt.Errorf("wolf kill: %w", ErrDeadTarget)
	}

	st.Night.WolfKillTarget = target
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseNight,
		Step:   models.StepWerewolf,
		Actor:  0,
		Action: models.ActionKill,
		Target: target,
	})
	return nil
}

// SetSeerCheck performs the seer's check. The result is derived from
// the target's team here, the caller cannot supply it.
func (s *GameStore) SetSeerCheck(target int) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return "", err
	}

	seer := livingByRole(st, models.RoleSeer)
	if seer == nil {
		return "", fmt.Errorf("seer: %w", ErrNoLivingActor)
	}
	checked := st.PlayerBySeat(target)
	if checked == nil {
		return "", fmt.Errorf("seer: %w", ErrUnknownSeat)
	}

	result := models.TeamGood
	if checked.Role.Team == models.TeamWerewolf {
		result = models.TeamWerewolf
	}

	st.Night.SeerCheckTarget = target
	st.Night.SeerCheckResult = result
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseNight,
		Step:   models.StepSeer,
		Actor:  seer.Seat,
		Action: models.ActionCheck,
		Target: target,
		Result: string(result),
	})
	return result, nil
}

// WitchAction selects which potion a witch action uses.
type WitchAction string

const (
	WitchAntidote WitchAction = "antidote"
	WitchPoison   WitchAction = "poison"
)

// SetWitchAction applies an antidote or poison choice. Target 0 is a
// skip: nothing is recorded and no usage is marked. Each potion works
// once per game, and the antidote may not target the witch herself on
// round 1.
func (s *GameStore) SetWitchAction(action WitchAction, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	witch := livingByRole(st, models.RoleWitch)
	if witch == nil {
		return fmt.Errorf("witch: %w", ErrNoLivingActor)
	}

	switch action {
	case WitchAntidote:
		if witch.Used.Antidote {
			return ErrAntidoteUsed
		}
		if target != 0 && st.Round == 1 && target == witch.Seat &&
			!st.Config.Rules.WitchFirstNightSelfSave {
			return ErrFirstNightSelfSave
		}
		st.Night.AntidoteTarget = target
		st.Night.AntidoteUsed = target != 0
	case WitchPoison:
		if witch.Used.Poison {
			return ErrPoisonUsed
		}
		st.Night.PoisonTarget = target
		st.Night.PoisonUsed = target != 0
	default:
		return fmt.Errorf("witch: unknown action %q", action)
	}

	if target == 0 {
		return nil
	}

	actionType := models.ActionAntidote
	if action == WitchPoison {
		actionType = models.ActionPoison
		witch.Used.Poison = true
	} else {
		witch.Used.Antidote = true
	}
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseNight,
		Step:   models.StepWitch,
		Actor:  witch.Seat,
		Action: actionType,
		Target: target,
	})
	return nil
}

// SetHunterStatus records whether the hunter may shoot tonight and
// writes the flag onto the player. This is distinct from shooting.
func (s *GameStore) SetHunterStatus(canShoot bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	hunter := livingByRole(st, models.RoleHunter)
	if hunter == nil {
		return fmt.Errorf("hunter status: %w", ErrNoLivingActor)
	}

	st.Night.HunterCanShoot = canShoot
	hunter.CanShoot = canShoot

	result := "cannot_shoot"
	if canShoot {
		result = "can_shoot"
	}
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseNight,
		Step:   models.StepHunterStatus,
		Actor:  hunter.Seat,
		Action: models.ActionHunterStatus,
		Result: result,
	})
	return nil
}
