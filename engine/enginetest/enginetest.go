// Package enginetest provides a scripted engine.Gateway for tests.
//
// Boards hold arbitrary piece codes, including hybrids and stray bits, and
// answer MovesFrom from an explicit table instead of any rules.
package enginetest

import (
	"fmt"

	"hybridchess/engine"
	"hybridchess/types"
)

// Piece is the occupant of a square.
type Piece struct {
	Code  types.PieceCode
	White bool
}

// Counter is shared between a board and every board derived from it, so
// tests can count ApplyMove calls across snapshots.
type Counter struct {
	Applied []types.Move
}

// Board is a scripted snapshot.
type Board struct {
	pieces  [64]Piece
	moves   map[types.Square]types.SquareSet
	checks  map[types.Square]types.SquareSet
	reject  error
	status  *Status
	counter *Counter
}

// Status is returned through engine.StatusReporter when set with WithStatus.
type Status struct {
	WhiteInCheck bool
	BlackInCheck bool
	Outcome      engine.Outcome
}

var (
	_ engine.Gateway           = (*Board)(nil)
	_ engine.CheckMoveReporter = (*Board)(nil)
)

// New returns an empty board.
func New() *Board {
	return &Board{
		moves:   make(map[types.Square]types.SquareSet),
		counter: &Counter{},
	}
}

// Place puts a piece on sq and returns the board for chaining.
func (b *Board) Place(sq types.Square, code types.PieceCode, white bool) *Board {
	b.pieces[sq] = Piece{Code: code, White: white}
	return b
}

// Script sets the destinations MovesFrom reports for sq.
func (b *Board) Script(sq types.Square, dests ...types.Square) *Board {
	b.moves[sq] = types.SquareSetOf(dests...)
	return b
}

// CheckScript sets the destinations CheckMovesFrom reports for sq.
func (b *Board) CheckScript(sq types.Square, dests ...types.Square) *Board {
	if b.checks == nil {
		b.checks = make(map[types.Square]types.SquareSet)
	}
	b.checks[sq] = types.SquareSetOf(dests...)
	return b
}

// Reject makes every ApplyMove fail with err wrapped in engine.ErrMoveRejected.
func (b *Board) Reject(err error) *Board {
	b.reject = err
	return b
}

// WithStatus makes the board report check and outcome.
func (b *Board) WithStatus(s Status) *Board {
	b.status = &s
	return b
}

// Applied returns the moves applied to this board or any board derived from it.
func (b *Board) Applied() []types.Move {
	return b.counter.Applied
}

// PieceCodeAt implements engine.Gateway.
func (b *Board) PieceCodeAt(sq types.Square) types.PieceCode {
	if !sq.Valid() {
		return 0
	}
	return b.pieces[sq].Code
}

// IsWhiteAt implements engine.Gateway.
func (b *Board) IsWhiteAt(sq types.Square) bool {
	if !sq.Valid() {
		return false
	}
	return b.pieces[sq].White
}

// MovesFrom implements engine.Gateway.
func (b *Board) MovesFrom(sq types.Square) types.SquareSet {
	if b.PieceCodeAt(sq) == 0 {
		return 0
	}
	return b.moves[sq]
}

// CheckMovesFrom implements engine.CheckMoveReporter.
func (b *Board) CheckMovesFrom(sq types.Square) types.SquareSet {
	if b.PieceCodeAt(sq) == 0 {
		return 0
	}
	return b.checks[sq]
}

// ApplyMove implements engine.Gateway. The piece on from replaces whatever
// stands on to; scripted moves are dropped from the new board.
func (b *Board) ApplyMove(from, to types.Square) (engine.Gateway, error) {
	b.counter.Applied = append(b.counter.Applied, types.Move{From: from, To: to})
	if b.reject != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrMoveRejected, b.reject)
	}
	if !from.Valid() || !to.Valid() || b.pieces[from].Code == 0 {
		return nil, fmt.Errorf("%w: nothing to move from %s", engine.ErrMoveRejected, from)
	}
	next := &Board{
		pieces:  b.pieces,
		moves:   make(map[types.Square]types.SquareSet),
		counter: b.counter,
	}
	next.pieces[to] = next.pieces[from]
	next.pieces[from] = Piece{}
	return next, nil
}

// Reporter wraps b so it also implements engine.StatusReporter.
func (b *Board) Reporter() engine.Gateway {
	return reporting{b}
}

type reporting struct {
	*Board
}

func (r reporting) InCheck(white bool) bool {
	if r.status == nil {
		return false
	}
	if white {
		return r.status.WhiteInCheck
	}
	return r.status.BlackInCheck
}

func (r reporting) Outcome() engine.Outcome {
	if r.status == nil {
		return engine.Outcome{}
	}
	return r.status.Outcome
}
