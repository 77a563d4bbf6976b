package classic

import (
	"github.com/notnil/chess"

	"hybridchess/types"
)

// Coordinate systems:
// - chess.Square: a1 = 0, h1 = 7, a8 = 56 (rank-major from the bottom)
// - types.Square: row-major from the top, a8 = 0, h1 = 63
//
// Files agree; ranks are mirrored.

// toChess converts a board index to the library's square.
func toChess(sq types.Square) chess.Square {
	rank := types.BoardSize - 1 - sq.Row()
	return chess.Square(rank*types.BoardSize + sq.Col())
}

// fromChess converts a library square to a board index.
func fromChess(sq chess.Square) types.Square {
	rank := int(sq) / types.BoardSize
	file := int(sq) % types.BoardSize
	return types.MustSquareAt(types.BoardSize-1-rank, file)
}

// pieceCode maps a single classical piece type to its code bit.
func pieceCode(pt chess.PieceType) types.PieceCode {
	switch pt {
	case chess.King:
		return types.KingBit
	case chess.Queen:
		return types.QueenBit
	case chess.Rook:
		return types.RookBit
	case chess.Bishop:
		return types.BishopBit
	case chess.Knight:
		return types.KnightBit
	case chess.Pawn:
		return types.PawnBit
	}
	return 0
}
