package models

// DeathReason records how a player left the game.
type DeathReason string

const (
	DeathKnife  DeathReason = "knife"
	DeathPoison DeathReason = "poison"
	DeathVote   DeathReason = "vote"
	DeathShoot  DeathReason = "shoot"
	DeathDuel   DeathReason = "duel"
	DeathBomb   DeathReason = "bomb"
)

// AbilityUse tracks single-use ability consumption for one player.
// Once a flag is set it is never reset within a game. GuardHistory is
// the guard's full list of past targets, newest last.
type AbilityUse struct {
	Poison       bool  `json:"poison"`
	Antidote     bool  `json:"antidote"`
	Duel         bool  `json:"duel"`
	Shoot        bool  `json:"shoot"`
	Bomb         bool  `json:"bomb"`
	GuardHistory []int `json:"guardHistory,omitempty"`
}

// Player is one seat at the table. Seat numbers run 1..N and are
// stable for the game's lifetime; the role is assigned once at game
// creation.
type Player struct {
	Seat        int         `json:"seat"`
	Name        string      `json:"name"`
	Role        Role        `json:"role"`
	Alive       bool        `json:"alive"`
	DeathReason DeathReason `json:"deathReason,omitempty"`
	DeathRound  int         `json:"deathRound,omitempty"`
	DeathPhase  Phase       `json:"deathPhase,omitempty"`
	CanShoot    bool        `json:"canShoot"`
	HasShot     bool        `json:"hasShot"`
	Used        AbilityUse  `json:"used"`
}
