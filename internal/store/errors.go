package store

import "errors"

// Validation errors. Each one leaves the game state untouched and
// writes no action record.
var (
	ErrNoGame             = errors.New("no active game")
	ErrGameEnded          = errors.New("game already ended")
	ErrUnknownSeat        = errors.New("unknown seat")
	ErrDeadActor          = errors.New("actor is dead")
	ErrDeadTarget         = errors.New("target is dead")
	ErrNoLivingActor      = errors.New("no living holder of the acting role")
	ErrGuardRepeat        = errors.New("cannot guard the same person two nights in a row")
	ErrAntidoteUsed       = errors.New("antidote already used")
	ErrPoisonUsed         = errors.New("poison already used")
	ErrFirstNightSelfSave = errors.New("witch cannot save herself on the first night")
	ErrDuelUsed           = errors.New("duel already used")
	ErrShootUnavailable   = errors.New("cannot shoot")
	ErrBombUsed           = errors.New("already self-destructed")
	ErrNotWerewolf        = errors.New("only a werewolf can self-destruct")
	ErrSelfDestructStep   = errors.New("self-destruct not allowed during this step")
	ErrNotCandidate       = errors.New("not registered, cannot withdraw")
	ErrNoPoliceChief      = errors.New("no police chief in office")
)
