package classic

import (
	"github.com/notnil/chess"

	"hybridchess/types"
)

var (
	knightSteps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straight    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pseudoMoves returns the destinations of the piece on sq by movement rules
// alone, whether or not its own king is left attacked. Castling and en
// passant are not generated.
func (b *Board) pseudoMoves(sq types.Square) types.SquareSet {
	p := b.piece(sq)
	if p == chess.NoPiece {
		return 0
	}
	white := p.Color() == chess.White
	row, col := sq.Row(), sq.Col()

	var dests types.SquareSet
	walk := func(dirs [][2]int, slide bool) {
		for _, d := range dirs {
			for r, c := row+d[0], col+d[1]; ; r, c = r+d[0], c+d[1] {
				to, err := types.SquareAt(r, c)
				if err != nil {
					break
				}
				q := b.piece(to)
				if q == chess.NoPiece {
					dests = dests.Add(to)
					if slide {
						continue
					}
					break
				}
				if (q.Color() == chess.White) != white {
					dests = dests.Add(to)
				}
				break
			}
		}
	}

	switch p.Type() {
	case chess.Pawn:
		dir, start := -1, 6
		if !white {
			dir, start = 1, 1
		}
		if to, err := types.SquareAt(row+dir, col); err == nil && b.piece(to) == chess.NoPiece {
			dests = dests.Add(to)
			if to2, err := types.SquareAt(row+2*dir, col); err == nil && row == start && b.piece(to2) == chess.NoPiece {
				dests = dests.Add(to2)
			}
		}
		for _, dc := range []int{-1, 1} {
			to, err := types.SquareAt(row+dir, col+dc)
			if err != nil {
				continue
			}
			if q := b.piece(to); q != chess.NoPiece && (q.Color() == chess.White) != white {
				dests = dests.Add(to)
			}
		}
	case chess.Knight:
		walk(knightSteps, false)
	case chess.King:
		walk(kingSteps, false)
	case chess.Bishop:
		walk(diagonal, true)
	case chess.Rook:
		walk(straight, true)
	case chess.Queen:
		walk(straight, true)
		walk(diagonal, true)
	}
	return dests
}

// kingSquare finds the king of a side.
func (b *Board) kingSquare(white bool) (types.Square, bool) {
	for i := 0; i < types.BoardSize*types.BoardSize; i++ {
		sq := types.Square(i)
		p := b.piece(sq)
		if p != chess.NoPiece && p.Type() == chess.King && (p.Color() == chess.White) == white {
			return sq, true
		}
	}
	return types.NoSquare, false
}

// attacked reports whether any piece of the given side reaches target.
func (b *Board) attacked(target types.Square, byWhite bool) bool {
	for i := 0; i < types.BoardSize*types.BoardSize; i++ {
		sq := types.Square(i)
		p := b.piece(sq)
		if p == chess.NoPiece || (p.Color() == chess.White) != byWhite {
			continue
		}
		if b.pseudoMoves(sq).Has(target) {
			return true
		}
	}
	return false
}
