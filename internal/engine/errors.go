package engine

import "errors"

// Validation failures surfaced to the caller. A rejected command never
// mutates state.
var (
	ErrInvalidCardID     = errors.New("card id out of range")
	ErrEmptyDeck         = errors.New("no cards left in deck")
	ErrIndexOutOfRange   = errors.New("card index out of range")
	ErrDuplicateIndex    = errors.New("duplicate card index")
	ErrUnrecognizedCard  = errors.New("unrecognized card string")
	ErrWrongDeclaredRank = errors.New("declared rank does not match required rank")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrNoPendingPlay     = errors.New("no pending play to challenge")
	ErrChallengeOwnPlay  = errors.New("cannot challenge your own play")
	ErrNoSelection       = errors.New("no cards selected")
	ErrSelectionLimit    = errors.New("too many cards selected")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrGameOver          = errors.New("game is over")
)
