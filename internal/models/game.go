package models

import "time"

// Phase is the top-level night/day alternation.
type Phase string

const (
	PhaseNight Phase = "night"
	PhaseDay   Phase = "day"
)

// Step is one stop inside a phase. Night and day draw from disjoint
// constant sets but share the type since GameState tracks a single
// current step.
type Step string

const (
	// Night steps, in canonical order.
	StepGuard        Step = "guard"
	StepWerewolf     Step = "werewolf"
	StepSeer         Step = "seer"
	StepWitch        Step = "witch"
	StepHunterStatus Step = "hunter_status"

	// Day steps.
	StepPoliceCampaign Step = "police_campaign"
	StepPoliceSpeech   Step = "police_speech"
	StepPoliceWithdraw Step = "police_withdraw"
	StepPoliceVote     Step = "police_vote"
	StepDawn           Step = "dawn"
	StepSkill          Step = "skill_activation"
	StepLastWords      Step = "last_words"
	StepDiscussion     Step = "discussion"
	StepVote           Step = "vote"
	StepExecution      Step = "execution"
)

// ActionType labels an audit log entry.
type ActionType string

const (
	ActionGuard          ActionType = "guard"
	ActionKill           ActionType = "kill"
	ActionCheck          ActionType = "check"
	ActionPoison         ActionType = "poison"
	ActionAntidote       ActionType = "antidote"
	ActionShoot          ActionType = "shoot"
	ActionBomb           ActionType = "bomb"
	ActionDuel           ActionType = "duel"
	ActionVote           ActionType = "vote"
	ActionHunterStatus   ActionType = "hunter_status"
	ActionSelfDestruct   ActionType = "self_destruct"
	ActionPoliceElect    ActionType = "police_elect"
	ActionPoliceAbstain  ActionType = "police_abstain"
	ActionPoliceTransfer ActionType = "police_transfer"
	ActionPoliceDestroy  ActionType = "police_destroy"
	ActionPoliceWithdraw ActionType = "police_withdraw"
)

// ActionRecord is one append-only audit log entry. Records are never
// mutated or deleted; they are the sole source of history and replay.
// Actor 0 marks a system or whole-team action.
type ActionRecord struct {
	ID          string     `json:"id"`
	Round       int        `json:"round"`
	Phase       Phase      `json:"phase"`
	Step        Step       `json:"step,omitempty"`
	Actor       int        `json:"actor"`
	Action      ActionType `json:"action"`
	Target      int        `json:"target,omitempty"`
	Result      string     `json:"result,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
	Description string     `json:"description,omitempty"`
}

// VoteRecord is a single ballot. Target 0 denotes abstention.
// PoliceVote is snapshotted when the ballot is cast; the 1.5 weight is
// derived from it at tally time and never recomputed against a later
// chief.
type VoteRecord struct {
	Round      int  `json:"round"`
	Voter      int  `json:"voter"`
	Target     int  `json:"target"`
	PoliceVote bool `json:"policeVote,omitempty"`
}

// NightState is the transient per-night sub-state. It is rebuilt at
// the start of every night; only GuardLastTarget carries over so the
// no-consecutive-guard rule spans nights.
type NightState struct {
	CurrentStep     Step `json:"currentStep"`
	GuardTarget     int  `json:"guardTarget,omitempty"`
	GuardLastTarget int  `json:"guardLastTarget,omitempty"`
	WolfKillTarget  int  `json:"wolfKillTarget,omitempty"`
	SeerCheckTarget int  `json:"seerCheckTarget,omitempty"`
	SeerCheckResult Team `json:"seerCheckResult,omitempty"`
	AntidoteTarget  int  `json:"antidoteTarget,omitempty"`
	PoisonTarget    int  `json:"poisonTarget,omitempty"`
	AntidoteUsed    bool `json:"antidoteUsed"`
	PoisonUsed      bool `json:"poisonUsed"`
	HunterCanShoot  bool `json:"hunterCanShoot"`
	Completed       bool `json:"completed"`
}

// DayState is the transient per-day sub-state. It is rebuilt at dawn;
// only PoliceChief carries over, the badge is game-scoped.
type DayState struct {
	CurrentStep       Step         `json:"currentStep"`
	Deaths            []int        `json:"deaths"`
	Votes             []VoteRecord `json:"votes"`
	PoliceChief       int          `json:"policeChief,omitempty"`
	PoliceCandidates  []int        `json:"policeCandidates"`
	PoliceWithdrawn   []int        `json:"policeWithdrawn"`
	PoliceSpeechOrder []int        `json:"policeSpeechOrder"`
	PoliceSpeechIndex int          `json:"policeSpeechIndex"`
	PoliceVotes       []VoteRecord `json:"policeVotes"`
	PoliceAbstentions []int        `json:"policeAbstentions"`
	PoliceTieBreaker  bool         `json:"policeTieBreaker"`
	AllowSelfDestruct bool         `json:"allowSelfDestruct"`
	Completed         bool         `json:"completed"`
}

// GameMode selects a preset board or a custom role list.
type GameMode string

const (
	ModeNine            GameMode = "9_players"
	ModeTen             GameMode = "10_players"
	ModeWolfKingGuard   GameMode = "12_wolf_king_guard"
	ModeWhiteWolfKnight GameMode = "12_white_wolf_knight"
	ModeCustom          GameMode = "custom"
)

// GameRules is the rules snapshot taken at game creation.
type GameRules struct {
	WitchFirstNightSelfSave bool `json:"witchFirstNightSelfSave"`
	GuardConsecutive        bool `json:"guardConsecutive"`
	GuardSelfProtect        bool `json:"guardSelfProtect"`
	SameGuardSameSave       bool `json:"sameGuardSameSave"`
	FirstNightGuard         bool `json:"firstNightGuard"`
}

// GameConfig is the immutable configuration a game was created with.
type GameConfig struct {
	Mode        GameMode  `json:"mode"`
	PlayerCount int       `json:"playerCount"`
	Roles       []Role    `json:"roles"`
	Rules       GameRules `json:"rules"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateGameParams are the inputs to game creation. PlayerNames may be
// shorter than the seat count; missing names default to "Player N".
type CreateGameParams struct {
	Mode        GameMode
	CustomRoles []RoleType
	PlayerNames []string
}

// GameState is the aggregate root, owned exclusively by the store.
type GameState struct {
	ID                string         `json:"id"`
	Config            GameConfig     `json:"config"`
	Phase             Phase          `json:"phase"`
	Round             int            `json:"round"`
	CurrentStep       Step           `json:"currentStep"`
	Players           []*Player      `json:"players"`
	Night             NightState     `json:"night"`
	Day               DayState       `json:"day"`
	History           []ActionRecord `json:"history"`
	ExplosionCount    int            `json:"explosionCount"`
	SelfDestructCount int            `json:"selfDestructCount"`
	Winner            Team           `json:"winner,omitempty"`
	GameEnded         bool           `json:"gameEnded"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// PlayerBySeat returns the player at the given seat, or nil.
func (g *GameState) PlayerBySeat(seat int) *Player {
	for _, p := range g.Players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// AlivePlayers returns the living subset in seat order.
func (g *GameState) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}
