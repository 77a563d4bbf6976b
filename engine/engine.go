// Package engine defines the boundary to the external rules engine.
package engine

import (
	"errors"

	"hybridchess/types"
)

// ErrMoveRejected is wrapped by engines that refuse to apply a move.
var ErrMoveRejected = errors.New("move rejected")

// Gateway is an immutable board snapshot owned by a rules engine.
type Gateway interface {
	// PieceCodeAt returns the piece code at sq, 0 if empty.
	PieceCodeAt(sq types.Square) types.PieceCode

	// IsWhiteAt reports the colour at sq. Only meaningful for occupied squares.
	IsWhiteAt(sq types.Square) bool

	// MovesFrom returns the destinations reachable from sq, empty when the
	// square is empty or its piece cannot move.
	MovesFrom(sq types.Square) types.SquareSet

	// ApplyMove returns the board after moving from -> to.
	// The receiver is left untouched.
	ApplyMove(from, to types.Square) (Gateway, error)
}

// OutcomeKind classifies a finished or ongoing game.
type OutcomeKind int

const (
	Ongoing OutcomeKind = iota
	Checkmate
	Stalemate
)

// Outcome is the game result as reported by the engine.
type Outcome struct {
	Kind      OutcomeKind
	WhiteWins bool
}

// StatusReporter is optionally implemented by gateways that can report
// check and game end.
type StatusReporter interface {
	InCheck(white bool) bool
	Outcome() Outcome
}

// CheckMoveReporter is optionally implemented by gateways that can tell
// which destinations of a piece are refused only because they would leave
// its own king in check. These are never part of MovesFrom.
type CheckMoveReporter interface {
	CheckMovesFrom(sq types.Square) types.SquareSet
}

// Config holds configuration for starting a new game.
type Config struct {
	StartFEN string // empty for the standard start position
}
