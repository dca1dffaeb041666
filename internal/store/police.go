package store

import (
	"fmt"
	"sort"
	"strings"

	"wolfjudge/internal/game"
	"wolfjudge/internal/models"
)

// AddPoliceCandidate registers a seat for the chief election.
// Idempotent.
func (s *GameStore) AddPoliceCandidate(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	p := st.PlayerBySeat(seat)
	if p == nil {
		return fmt.Errorf("police candidacy: %w", ErrUnknownSeat)
	}
	if !p.Alive {
		return fmt.Errorf("police candidacy: %w", ErrDeadActor)
	}
	for _, c := range st.Day.PoliceCandidates {
		if c == seat {
			return nil
		}
	}
	st.Day.PoliceCandidates = append(st.Day.PoliceCandidates, seat)
	s.touch(st)
	return nil
}

// RemovePoliceCandidate removes a seat from the candidate list.
func (s *GameStore) RemovePoliceCandidate(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}
	st.Day.PoliceCandidates = removeSeat(st.Day.PoliceCandidates, seat)
	s.touch(st)
	return nil
}

// WithdrawFromPolice moves a candidate to the withdrawn list.
// Withdrawal is terminal for the game; a withdrawn seat never
// re-enters candidacy.
func (s *GameStore) WithdrawFromPolice(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	registered := false
	for _, c := range st.Day.PoliceCandidates {
		if c == seat {
			registered = true
			break
		}
	}
	if !registered {
		return ErrNotCandidate
	}

	st.Day.PoliceCandidates = removeSeat(st.Day.PoliceCandidates, seat)
	st.Day.PoliceWithdrawn = append(st.Day.PoliceWithdrawn, seat)
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   models.StepPoliceCampaign,
		Actor:  seat,
		Action: models.ActionPoliceWithdraw,
	})
	return nil
}

// GeneratePoliceSpeechOrder derives the campaign speech rotation from
// the clock and resets the speech cursor.
func (s *GameStore) GeneratePoliceSpeechOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	st.Day.PoliceSpeechOrder = game.SpeechOrder(st.Day.PoliceCandidates, s.now())
	st.Day.PoliceSpeechIndex = 0
	s.touch(st)
	return nil
}

// AdvancePoliceSpeech moves the speech cursor to the next candidate.
func (s *GameStore) AdvancePoliceSpeech() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}
	st.Day.PoliceSpeechIndex++
	s.touch(st)
	return nil
}

// AddPoliceVote casts a chief-election ballot. Election ballots are
// unweighted; the record's police flag only marks which election the
// vote belongs to.
func (s *GameStore) AddPoliceVote(voter, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	caster := st.PlayerBySeat(voter)
	if caster == nil {
		return fmt.Errorf("police vote: %w", ErrUnknownSeat)
	}
	if !caster.Alive {
		return fmt.Errorf("police vote: %w", ErrDeadActor)
	}

	st.Day.PoliceVotes = append(st.Day.PoliceVotes, models.VoteRecord{
		Round:      st.Round,
		Voter:      voter,
		Target:     target,
		PoliceVote: true,
	})
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   models.StepPoliceVote,
		Actor:  voter,
		Action: models.ActionPoliceElect,
		Target: target,
	})
	return nil
}

// AddPoliceAbstention marks a seat as abstaining from the election.
// Idempotent.
func (s *GameStore) AddPoliceAbstention(voter int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	for _, seat := range st.Day.PoliceAbstentions {
		if seat == voter {
			return nil
		}
	}
	st.Day.PoliceAbstentions = append(st.Day.PoliceAbstentions, voter)
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  models.PhaseDay,
		Step:   models.StepPoliceVote,
		Actor:  voter,
		Action: models.ActionPoliceAbstain,
	})
	return nil
}

// ElectPoliceChief counts the election ballots with simple unweighted
// counts. No ballots is a no-op. A single maximum seats the chief; a
// tie re-enters a tie-breaker vote restricted to the tied candidates.
// The elected seat is returned, 0 when nobody was seated.
func (s *GameStore) ElectPoliceChief() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return 0, err
	}

	counts := make(map[int]int)
	for _, v := range st.Day.PoliceVotes {
		counts[v.Target]++
	}
	if len(counts) == 0 {
		return 0, nil
	}

	targets := make([]int, 0, len(counts))
	maxVotes := 0
	for target, n := range counts {
		targets = append(targets, target)
		if n > maxVotes {
			maxVotes = n
		}
	}
	sort.Ints(targets)

	parts := make([]string, 0, len(targets))
	var winners []int
	for _, target := range targets {
		parts = append(parts, fmt.Sprintf("seat %d: %d", target, counts[target]))
		if counts[target] == maxVotes {
			winners = append(winners, target)
		}
	}
	s.record(st, models.ActionRecord{
		Round:       st.Round,
		Phase:       models.PhaseDay,
		Step:        models.StepPoliceVote,
		Actor:       0,
		Action:      models.ActionPoliceElect,
		Description: "police election count: " + strings.Join(parts, ", "),
	})

	if len(winners) == 1 {
		st.Day.PoliceChief = winners[0]
		st.Day.PoliceTieBreaker = false
		s.record(st, models.ActionRecord{
			Round:       st.Round,
			Phase:       models.PhaseDay,
			Step:        models.StepPoliceVote,
			Actor:       0,
			Action:      models.ActionPoliceElect,
			Target:      winners[0],
			Description: fmt.Sprintf("seat %d elected police chief", winners[0]),
		})
		s.log.Info("police chief elected", "seat", winners[0], "round", st.Round)
		return winners[0], nil
	}

	seats := make([]string, len(winners))
	for i, seat := range winners {
		seats[i] = fmt.Sprintf("%d", seat)
	}
	s.record(st, models.ActionRecord{
		Round:       st.Round,
		Phase:       models.PhaseDay,
		Step:        models.StepPoliceVote,
		Actor:       0,
		Action:      models.ActionPoliceElect,
		Description: "police election tied between seats " + strings.Join(seats, ", "),
	})
	s.startTieBreakerLocked(st, winners)
	return 0, nil
}

// StartPoliceTieBreaker restricts the election to the tied seats and
// clears the ballots for the re-vote.
func (s *GameStore) StartPoliceTieBreaker(tied []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}
	s.startTieBreakerLocked(st, tied)
	return nil
}

func (s *GameStore) startTieBreakerLocked(st *models.GameState, tied []int) {
	st.Day.PoliceCandidates = append([]int(nil), tied...)
	st.Day.PoliceVotes = nil
	st.Day.PoliceAbstentions = nil
	st.Day.PoliceTieBreaker = true
	s.touch(st)
}

// TransferPoliceChief hands the badge to another seat, or destroys it
// when target is 0. Requires a sitting chief.
func (s *GameStore) TransferPoliceChief(target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireActiveGame()
	if err != nil {
		return err
	}

	previous := st.Day.PoliceChief
	if previous == 0 {
		return ErrNoPoliceChief
	}

	if target != 0 {
		if st.PlayerBySeat(target) == nil {
			return fmt.Errorf("badge transfer: %w", ErrUnknownSeat)
		}
		st.Day.PoliceChief = target
		s.record(st, models.ActionRecord{
			Round:  st.Round,
			Phase:  st.Phase,
			Actor:  previous,
			Action: models.ActionPoliceTransfer,
			Target: target,
		})
		return nil
	}

	st.Day.PoliceChief = 0
	s.record(st, models.ActionRecord{
		Round:  st.Round,
		Phase:  st.Phase,
		Actor:  previous,
		Action: models.ActionPoliceDestroy,
	})
	return nil
}

func removeSeat(seats []int, seat int) []int {
	filtered := seats[:0]
	for _, s := range seats {
		if s != seat {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
