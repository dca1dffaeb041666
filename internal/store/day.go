package store

import (
	"fmt"
	"sort"
	"strings"

	"wolfjudge/internal/game"
	"wolfjudge/internal/models"
)

// ApplyDawnDeaths resolves the night and marks the victims dead with
// reason poison or knife. A poisoned hunter loses shoot rights. The
// applied death set is returned in resolution order.
func (s *GameStore) ApplyDawnDeaths() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return nil, err
	}

	deaths := game.ResolveNightDeaths(st.Night)
	var applied []int
	for _, seat := range deaths {
		p := st.PlayerBySeat(seat)
		if p == nil || !p.Alive {
			continue
		}
		reason := models.DeathKnife
		if st.Night.PoisonTarget == seat {
			reason = models.DeathPoison
			p.CanShoot = false
		}
		s.kill(st, p, reason, models.PhaseNight)
		applied = append(applied, seat)
	}

	st.Day.Deaths = applied
	if len(applied) > 0 {
		s.checkWinLocked(st)
	}
	return applied, nil
}

// AddVote casts an execution ballot. Target 0 abstains. The police
// weight is snapshotted now by comparing the voter to the sitting
// chief; a later badge transfer does not reweigh this ballot.
func (s *GameStore) AddVote(voter, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	caster := st.PlayerBySeat(voter)
	if caster == nil {
		return fmt.Errorf("vote: %w", ErrUnknownSeat)
	}
	if !caster.Alive {
		return fmt.Errorf("vote: %w", ErrDeadActor)
	}
	if target != 0 {
		candidate := st.PlayerBySeat(target)
		if candidate == nil {
			return fmt.Errorf("vote: %w", ErrUnknownSeat)
		}
		if !candidate.Alive {
			return fmt.Errorf("vote: %w", ErrDeadTarget)
		}
	}

	st.Day.Votes = append(st.Day.Votes, models.VoteRecord{
		Round:      st.Round,
		Voter:      voter,
		Target:     target,
		PoliceVote: st.Day.PoliceChief != 0 && voter == st.Day.PoliceChief,
	})
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   models.StepVote,
		Actor:  voter,
		Action: models.ActionVote,
		Target: target,
	})
	return nil
}

// CompleteVoting tallies the day's ballots, appends a summary audit
// record and returns the tally. Execution only follows when the tally
// has a single winner with a positive count.
func (s *GameStore) CompleteVoting() (game.TallyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return game.TallyResult{}, err
	}

	tally := game.Tally(st.Day.Votes)

	targets := make([]int, 0, len(tally.VoteCount))
	for target := range tally.VoteCount {
		targets = append(targets, target)
	}
	sort.Ints(targets)
	parts := make([]string, 0, len(targets)+1)
	for _, target := range targets {
		parts = append(parts, fmt.Sprintf("seat %d: %g", target, tally.VoteCount[target]))
	}
	if tally.AbstainCount > 0 {
		parts = append(parts, fmt.Sprintf("abstain: %g", tally.AbstainCount))
	}
	summary := "no votes"
	if len(parts) > 0 {
		summary = strings.Join(parts, ", ")
	}

	s.record(st, models.ActionRecord{
		Round:       st.Round,
		Phase:       models.PhaseDay,
		Step:        models.StepVote,
		Actor:       0,
		Action:      models.ActionVote,
		Description: "vote result: " + summary,
	})
	return tally, nil
}

// ExecutePlayer exiles the vote loser. Callers check ShootEligible on
// the executed player afterwards to route into a shoot dialog.
func (s *GameStore) ExecutePlayer(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	p := st.PlayerBySeat(seat)
	if p == nil {
		return fmt.Errorf("execute: %w", ErrUnknownSeat)
	}
	if !p.Alive {
		return fmt.Errorf("execute: %w", ErrDeadTarget)
	}

	s.kill(st, p, models.DeathVote, models.PhaseDay)
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   models.StepExecution,
		Actor:  0,
		Action: models.ActionVote,
		Target: seat,
	})
	s.checkWinLocked(st)
	return nil
}

// ShootPlayer fires a hunter's or wolf king's shot. A shot target who
// is themself shoot-eligible may chain into another ShootPlayer call.
func (s *GameStore) ShootPlayer(shooter, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	p := st.PlayerBySeat(shooter)
	if p == nil {
		return fmt.Errorf("shoot: %w", ErrUnknownSeat)
	}
	if p.HasShot {
		return fmt.Errorf("shoot: %w", ErrShootUnavailable)
	}
	victim := st.PlayerBySeat(target)
	if victim == nil {
		return fmt.Errorf("shoot: %w", ErrUnknownSeat)
	}
	if !victim.Alive {
		return fmt.Errorf("shoot: %w", ErrDeadTarget)
	}

	p.HasShot = true
	p.Used.Shoot = true
	s.kill(st, victim, models.DeathShoot, st.Phase)
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  st.Phase,
		Actor:  shooter,
		Action: models.ActionShoot,
		Target: target,
	})
	s.checkWinLocked(st)
	return nil
}

// UseBomb detonates a werewolf. The bomber always dies; a wolf king
// bomber who picked a distinct target takes that player along. Counts
// into ExplosionCount.
func (s *GameStore) UseBomb(bomber, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	p := st.PlayerBySeat(bomber)
	if p == nil {
		return fmt.Errorf("bomb: %w", ErrUnknownSeat)
	}
	if !p.Alive {
		return fmt.Errorf("bomb: %w", ErrDeadActor)
	}
	if p.Used.Bomb {
		return fmt.Errorf("bomb: %w", ErrBombUsed)
	}

	p.Used.Bomb = true
	s.kill(st, p, models.DeathBomb, models.PhaseDay)

	takesTarget := p.Role.Type == models.RoleWolfKing && target != 0 && target != bomber
	if takesTarget {
		victim := st.PlayerBySeat(target)
		if victim != nil {
			s.kill(st, victim, models.DeathBomb, models.PhaseDay)
		}
		s.record(st, models.ActionRecord{
			Round:       st.Round,
			Phase:       models.PhaseDay,
			Actor:       bomber,
			Action:      models.ActionBomb,
			Target:      target,
			Description: fmt.Sprintf("seat %d self-destructed and took seat %d along", bomber, target),
		})
	} else {
		s.record(st, models.ActionRecord{
			Round:       st.Round,
			Phase:       models.PhaseDay,
			Actor:       bomber,
			Action:      models.ActionBomb,
			Target:      bomber,
			Description: fmt.Sprintf("seat %d (%s) self-destructed", bomber, p.Role.Name),
		})
	}

	st.ExplosionCount++
	s.checkWinLocked(st)
	return nil
}

// UseDuel resolves the knight's challenge: a werewolf target dies,
// otherwise the knight does. The duel is spent either way.
func (s *GameStore) UseDuel(knight, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	challenger := st.PlayerBySeat(knight)
	if challenger == nil {
		return fmt.Errorf("duel: %w", ErrUnknownSeat)
	}
	if !challenger.Alive {
		return fmt.Errorf("duel: %w", ErrDeadActor)
	}
	if challenger.Used.Duel {
		return fmt.Errorf("duel: %w", ErrDuelUsed)
	}
	challenged := st.PlayerBySeat(target)
	if challenged == nil {
		return fmt.Errorf("duel: %w", ErrUnknownSeat)
	}
	if !challenged.Alive {
		return fmt.Errorf("duel: %w", ErrDeadTarget)
	}

	won := challenged.Role.Team == models.TeamWerewolf
	if won {
		s.kill(st, challenged, models.DeathDuel, models.PhaseDay)
	} else {
		s.kill(st, challenger, models.DeathDuel, models.PhaseDay)
	}
	challenger.Used.Duel = true

	result := "failed"
	if won {
		result = "success"
	}
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Actor:  knight,
		Action: models.ActionDuel,
		Target: target,
		Result: result,
	})
	s.checkWinLocked(st)
	return nil
}

// UseSelfDestruct is the plain werewolf self-destruct, legal only
// during campaign, speech, withdraw and discussion steps. Counts into
// SelfDestructCount, which feeds the round-2 election rule.
func (s *GameStore) UseSelfDestruct(wolf int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	p := st.PlayerBySeat(wolf)
	if p == nil {
		return fmt.Errorf("self-destruct: %w", ErrUnknownSeat)
	}
	if !p.Alive {
		return fmt.Errorf("self-destruct: %w", ErrDeadActor)
	}
	if p.Role.Team != models.TeamWerewolf {
		return fmt.Errorf("self-destruct: %w", ErrNotWerewolf)
	}
	if !st.Day.AllowSelfDestruct {
		return fmt.Errorf("self-destruct: %w", ErrSelfDestructStep)
	}

	s.kill(st, p, models.DeathBomb, models.PhaseDay)
	st.SelfDestructCount++
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   st.Day.CurrentStep,
		Actor:  wolf,
		Action: models.ActionSelfDestruct,
	})
	s.checkWinLocked(st)
	return nil
}
