package engine

import "errors"

// Configuration errors. These are fatal for the engine being built.
var (
	ErrInvalidConfig      = errors.New("engine: invalid config")
	ErrEmptyCandidatePool = errors.New("engine: empty candidate pool")
)

// Swap rejections. The grid is left untouched.
var (
	ErrInvalidPosition = errors.New("engine: position out of bounds")
	ErrNotAdjacent     = errors.New("engine: cells are not orthogonal neighbours")
	ErrGameOver        = errors.New("engine: game is over")
)

// ErrCascadeLimit means the board kept matching past MaxCascadePasses.
// It signals a broken invariant, not a player error.
var ErrCascadeLimit = errors.New("engine: cascade did not settle")

// Reason classifies the outcome of a swap attempt.
type Reason int

const (
	ReasonNone Reason = iota // Swap accepted
	ReasonInvalidPosition
	ReasonGameOver
	ReasonNotAdjacent
	ReasonNoMatch // Swap produced no run and was reverted
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidPosition:
		return "invalid position"
	case ReasonGameOver:
		return "game over"
	case ReasonNotAdjacent:
		return "not adjacent"
	case ReasonNoMatch:
		return "no match"
	default:
		return "unknown"
	}
}
