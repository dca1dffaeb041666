// Package store owns the single mutable game state and exposes every
// judge operation as a method. One store moderates one game at a
// time; all methods are serialized behind the store mutex, so a timer
// callback racing a manual confirm degrades to a rejected second
// call instead of a corrupted state.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wolfjudge/internal/game"
	"wolfjudge/internal/models"
	"wolfjudge/internal/roles"
)

// Storage persists game states. Implementations live outside the
// engine; the store treats persistence failures as reportable errors,
// never as crashes.
type Storage interface {
	SaveCurrentGame(*models.GameState) error
	LoadCurrentGame() (*models.GameState, error)
	ClearCurrentGame() error
	SaveToHistory(*models.GameState) error
	GameHistory() ([]*models.GameState, error)
	DeleteFromHistory(id string) error
	ClearHistory() error
}

// GameStore owns the game state. The zero value is not usable; create
// one with New.
type GameStore struct {
	mu      sync.Mutex
	state   *models.GameState
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// New creates a store. Storage may be nil for a purely in-memory
// session; logger may be nil to use slog.Default.
func New(storage Storage, logger *slog.Logger) *GameStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameStore{
		storage: storage,
		log:     logger,
		now:     time.Now,
	}
}

// State returns the current game state, or nil when no game is
// active. The returned value is owned by the store; callers must not
// mutate it.
func (s *GameStore) State() *models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Player returns the player at the given seat, or nil.
func (s *GameStore) Player(seat int) *models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	return s.state.PlayerBySeat(seat)
}

// CreateGame resolves the requested board, shuffles roles over the
// seats and initializes a fresh night-1 state.
func (s *GameStore) CreateGame(params models.CreateGameParams) error {
	cfg, err := roles.NewConfig(params.Mode, params.CustomRoles)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	shuffled := roles.Shuffle(cfg.Roles)

	players := make([]*models.Player, cfg.PlayerCount)
	for i := range players {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(params.PlayerNames) && params.PlayerNames[i] != "" {
			name = params.PlayerNames[i]
		}
		role := shuffled[i]
		players[i] = &models.Player{
			Seat:     i + 1,
			Name:     name,
			Role:     role,
			Alive:    true,
			CanShoot: role.Type == models.RoleHunter || role.Type == models.RoleWolfKing,
		}
	}

	firstStep := game.NightSteps(players)[0]
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &models.GameState{
		ID:          uuid.NewString(),
		Config:      cfg,
		Phase:       models.PhaseNight,
		Round:       1,
		CurrentStep: firstStep,
		Players:     players,
		Night: models.NightState{
			CurrentStep:    firstStep,
			HunterCanShoot: true,
		},
		Day: models.DayState{
			CurrentStep: models.StepDawn,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.log.Info("game created",
		"id", s.state.ID,
		"mode", cfg.Mode,
		"players", cfg.PlayerCount,
		"firstStep", firstStep)
	return nil
}

// StartGame re-derives the first applicable night step. It is safe to
// call right after CreateGame or after loading a night-phase game.
func (s *GameStore) StartGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireGame()
	if err != nil {
		return err
	}

	first := game.NightSteps(st.Players)[0]
	st.Phase = models.PhaseNight
	st.CurrentStep = first
	st.Night.CurrentStep = first
	s.touch(st)
	return nil
}

// NextStep advances within the current phase's step list, delegating
// to the phase flip once the last step is done.
func (s *GameStore) NextStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireGame()
	if err != nil {
		return err
	}

	var steps []models.Step
	var current models.Step
	if st.Phase == models.PhaseNight {
		steps = game.NightSteps(st.Players)
		current = st.Night.CurrentStep
	} else {
		steps = game.DaySteps(st)
		current = st.Day.CurrentStep
	}

	index := -1
	for i, step := range steps {
		if step == current {
			index = i
			break
		}
	}
	if index < 0 || index == len(steps)-1 {
		s.nextPhaseLocked(st)
		return nil
	}

	next := steps[index+1]
	st.CurrentStep = next
	if st.Phase == models.PhaseNight {
		st.Night.CurrentStep = next
	} else {
		st.Day.CurrentStep = next
		st.Day.AllowSelfDestruct = game.AllowsSelfDestruct(next)
	}
	s.touch(st)
	s.log.Debug("step advanced", "phase", st.Phase, "step", next)
	return nil
}

// NextPhase flips night and day. The round increments only on the
// day-to-night transition; the incoming phase's sub-state is rebuilt
// from scratch, carrying only the last guard target and the police
// chief across resets.
func (s *GameStore) NextPhase() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireGame()
	if err != nil {
		return err
	}
	s.nextPhaseLocked(st)
	return nil
}

func (s *GameStore) nextPhaseLocked(st *models.GameState) {
	if st.Phase == models.PhaseNight {
		st.Phase = models.PhaseDay
		st.Night.Completed = true

		first := models.StepDawn
		if game.ShouldRunPoliceElection(st) {
			first = models.StepPoliceCampaign
		}
		st.Day = models.DayState{
			CurrentStep:       first,
			PoliceChief:       st.Day.PoliceChief,
			AllowSelfDestruct: game.AllowsSelfDestruct(first),
		}
		st.CurrentStep = first
	} else {
		st.Phase = models.PhaseNight
		st.Round++
		st.Day.Completed = true

		first := game.NightSteps(st.Players)[0]
		st.Night = models.NightState{
			CurrentStep:     first,
			GuardLastTarget: st.Night.GuardLastTarget,
			HunterCanShoot:  true,
		}
		st.CurrentStep = first
	}
	s.touch(st)
	s.log.Info("phase changed", "phase", st.Phase, "round", st.Round, "step", st.CurrentStep)
}

// CheckGameEnd runs the win evaluator and stamps the result. It is
// invoked by every death-causing operation and may also be called
// directly.
func (s *GameStore) CheckGameEnd() game.WinResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.WinResult{}
	}
	return s.checkWinLocked(s.state)
}

func (s *GameStore) checkWinLocked(st *models.GameState) game.WinResult {
	result := game.CheckWin(st.Players)
	if result.Winner != "" && !st.GameEnded {
		st.Winner = result.Winner
		st.GameEnded = true
		s.touch(st)
		s.log.Info("game ended", "winner", result.Winner, "reason", result.Reason)
	}
	return result
}

// SaveGame persists the current game to the external storage; a
// finished game is also appended to the history.
func (s *GameStore) SaveGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.requireGame()
	if err != nil {
		return err
	}
	if s.storage == nil {
		return fmt.Errorf("save game: no storage configured")
	}

	s.touch(st)
	if err := s.storage.SaveCurrentGame(st); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if st.GameEnded {
		if err := s.storage.SaveToHistory(st); err != nil {
			return fmt.Errorf("save game history: %w", err)
		}
	}
	return nil
}

// LoadGame rehydrates a game from storage. An empty id loads the
// current-game slot; otherwise the id is looked up in the history.
func (s *GameStore) LoadGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storage == nil {
		return fmt.Errorf("load game: no storage configured")
	}

	var loaded *models.GameState
	if id == "" {
		st, err := s.storage.LoadCurrentGame()
		if err != nil {
			return fmt.Errorf("load game: %w", err)
		}
		loaded = st
	} else {
		history, err := s.storage.GameHistory()
		if err != nil {
			return fmt.Errorf("load game: %w", err)
		}
		for _, st := range history {
			if st.ID == id {
				loaded = st
				break
			}
		}
	}

	if loaded == nil {
		return fmt.Errorf("load game: no saved game found")
	}
	s.state = loaded
	s.log.Info("game loaded", "id", loaded.ID, "round", loaded.Round, "phase", loaded.Phase)
	return nil
}

// ResetGame discards the state entirely, returning to "no game".
func (s *GameStore) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
}

// requireGame returns the state or ErrNoGame. Callers hold the mutex.
func (s *GameStore) requireGame() (*models.GameState, error) {
	if s.state == nil {
		return nil, ErrNoGame
	}
	return s.state, nil
}

// requireActiveGame additionally rejects a finished game. Every
// action operation goes through this; navigation and persistence
// still work on an ended game.
func (s *GameStore) requireActiveGame() (*models.GameState, error) {
	st, err := s.requireGame()
	if err != nil {
		return nil, err
	}
	if st.GameEnded {
		return nil, ErrGameEnded
	}
	return st, nil
}

func (s *GameStore) touch(st *models.GameState) {
	st.UpdatedAt = s.now()
}

// record appends an audit entry, stamping id and timestamp. Callers
// hold the mutex and have already passed validation.
func (s *GameStore) record(st *models.GameState, rec models.ActionRecord) {
	rec.ID = uuid.NewString()
	rec.Timestamp = s.now()
	st.History = append(st.History, rec)
	s.touch(st)
}

// kill flips a player to dead and stamps the death metadata exactly
// once. Callers hold the mutex.
func (s *GameStore) kill(st *models.GameState, p *models.Player, reason models.DeathReason, phase models.Phase) {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.DeathReason = reason
	p.DeathRound = st.Round
	p.DeathPhase = phase
	s.log.Info("player died", "seat", p.Seat, "role", p.Role.Type, "reason", reason, "round", st.Round)
}

// livingByRole returns the first living holder of a role type.
func livingByRole(st *models.GameState, t models.RoleType) *models.Player {
	for _, p := range st.Players {
		if p.Alive && p.Role.Type == t {
			return p
		}
	}
	return nil
}
