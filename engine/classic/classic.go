// Package classic provides an engine.Gateway for standard chess backed by
// github.com/notnil/chess. Every piece decodes to a single-bit code, so the
// board never shows hybrids, but it exercises the full interaction loop.
package classic

import (
	"fmt"

	"github.com/notnil/chess"

	"hybridchess/engine"
	"hybridchess/types"
)

// Board is an immutable position. ApplyMove returns a new Board.
type Board struct {
	pos *chess.Position
}

var (
	_ engine.Gateway           = (*Board)(nil)
	_ engine.StatusReporter    = (*Board)(nil)
	_ engine.CheckMoveReporter = (*Board)(nil)
)

// New creates a board from a FEN string, or the standard start when fen is empty.
func New(fen string) (*Board, error) {
	if fen == "" {
		return &Board{pos: chess.NewGame().Position()}, nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return &Board{pos: chess.NewGame(opt).Position()}, nil
}

// NewFromConfig creates a board from an engine configuration.
func NewFromConfig(cfg engine.Config) (*Board, error) {
	return New(cfg.StartFEN)
}

func (b *Board) piece(sq types.Square) chess.Piece {
	if !sq.Valid() {
		return chess.NoPiece
	}
	return b.pos.Board().Piece(toChess(sq))
}

// PieceCodeAt implements engine.Gateway.
func (b *Board) PieceCodeAt(sq types.Square) types.PieceCode {
	p := b.piece(sq)
	if p == chess.NoPiece {
		return 0
	}
	return pieceCode(p.Type())
}

// IsWhiteAt implements engine.Gateway.
func (b *Board) IsWhiteAt(sq types.Square) bool {
	return b.piece(sq).Color() == chess.White
}

// MovesFrom implements engine.Gateway. Only the side to move has moves.
func (b *Board) MovesFrom(sq types.Square) types.SquareSet {
	var dests types.SquareSet
	if !sq.Valid() {
		return dests
	}
	from := toChess(sq)
	for _, m := range b.pos.ValidMoves() {
		if m.S1() == from {
			dests = dests.Add(fromChess(m.S2()))
		}
	}
	return dests
}

// ApplyMove implements engine.Gateway. Promotions default to a queen.
func (b *Board) ApplyMove(from, to types.Square) (engine.Gateway, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %s%s off board", engine.ErrMoveRejected, from, to)
	}
	s1, s2 := toChess(from), toChess(to)
	var found *chess.Move
	for _, m := range b.pos.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			found = m
			break
		}
		if found == nil {
			found = m
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s%s is not legal", engine.ErrMoveRejected, from, to)
	}
	return &Board{pos: b.pos.Update(found)}, nil
}

// InCheck implements engine.StatusReporter. It looks at the position
// itself, so boards loaded from FEN report check too.
func (b *Board) InCheck(white bool) bool {
	king, ok := b.kingSquare(white)
	if !ok {
		return false
	}
	return b.attacked(king, !white)
}

// CheckMovesFrom implements engine.CheckMoveReporter: the destinations the
// piece on sq could reach if it were allowed to leave its own king attacked.
func (b *Board) CheckMovesFrom(sq types.Square) types.SquareSet {
	p := b.piece(sq)
	if p == chess.NoPiece || p.Color() != b.pos.Turn() {
		return 0
	}
	return b.pseudoMoves(sq) &^ b.MovesFrom(sq)
}

// Outcome implements engine.StatusReporter.
func (b *Board) Outcome() engine.Outcome {
	switch b.pos.Status() {
	case chess.Checkmate:
		return engine.Outcome{Kind: engine.Checkmate, WhiteWins: b.pos.Turn() == chess.Black}
	case chess.Stalemate:
		return engine.Outcome{Kind: engine.Stalemate}
	}
	return engine.Outcome{Kind: engine.Ongoing}
}

// WhiteToMove reports whose turn it is.
func (b *Board) WhiteToMove() bool {
	return b.pos.Turn() == chess.White
}

// String returns the position as FEN.
func (b *Board) String() string {
	return b.pos.String()
}
