// Package types contains shared data structures for hybridchess.
package types

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// ErrMalformedSquare is returned when a coordinate falls outside the board.
var ErrMalformedSquare = errors.New("malformed square")

// PieceType is one of the six classical piece types.
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes lists every piece type in canonical layer order.
var PieceTypes = [...]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

var pieceNames = [...]string{"king", "queen", "rook", "bishop", "knight", "pawn"}

// Name returns the lowercase name used in asset tokens, e.g. "bishop".
func (t PieceType) Name() string {
	if t < King || t > Pawn {
		return fmt.Sprintf("piece(%d)", int(t))
	}
	return pieceNames[t]
}

func (t PieceType) String() string {
	return t.Name()
}

// Bit returns the PieceCode bit for this type.
func (t PieceType) Bit() PieceCode {
	return 1 << PieceCode(t)
}

// PieceCode is a bitmask of piece types occupying a square. 0 is empty;
// more than one known bit set denotes a hybrid piece.
type PieceCode uint32

const (
	KingBit PieceCode = 1 << iota
	QueenBit
	RookBit
	BishopBit
	KnightBit
	PawnBit

	KnownBits = KingBit | QueenBit | RookBit | BishopBit | KnightBit | PawnBit
)

// CodeOf builds a code from piece types.
func CodeOf(pieces ...PieceType) PieceCode {
	var c PieceCode
	for _, t := range pieces {
		c |= t.Bit()
	}
	return c
}

// Empty reports whether no bit at all is set.
func (c PieceCode) Empty() bool {
	return c == 0
}

// Has reports whether the bit for t is set.
func (c PieceCode) Has(t PieceType) bool {
	return c&t.Bit() != 0
}

// Count returns the number of known piece types set.
func (c PieceCode) Count() int {
	return bits.OnesCount32(uint32(c & KnownBits))
}

// Unknown returns the bits outside the six known piece types.
func (c PieceCode) Unknown() PieceCode {
	return c &^ KnownBits
}

func (c PieceCode) String() string {
	if c == 0 {
		return "empty"
	}
	var names []string
	for _, t := range PieceTypes {
		if c.Has(t) {
			names = append(names, t.Name())
		}
	}
	if u := c.Unknown(); u != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(u)))
	}
	return strings.Join(names, "+")
}

// Square is a board index 0..63, row*8+col, row 0 at the top (rank 8).
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// SquareAt converts a (row, col) pair to a Square.
func SquareAt(row, col int) (Square, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare, fmt.Errorf("%w: row %d col %d", ErrMalformedSquare, row, col)
	}
	return Square(row*BoardSize + col), nil
}

// MustSquareAt is SquareAt for coordinates known to be valid.
func MustSquareAt(row, col int) Square {
	sq, err := SquareAt(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < BoardSize*BoardSize
}

// Row returns the row, 0 being the top.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column, 0 being the left (file a).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// String returns algebraic notation, e.g. a8 for square 0.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("square(%d)", int(s))
	}
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col()), BoardSize-s.Row())
}

// ParseSquare reads algebraic notation such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, name)
	}
	col := int(name[0]) - 'a'
	row := BoardSize - (int(name[1]) - '0')
	return SquareAt(row, col)
}

// SquareSet is a set of squares packed into a bitboard.
type SquareSet uint64

// SquareSetOf builds a set from squares. Invalid squares are ignored.
func SquareSetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq)
}

// Has reports whether sq is a member.
func (s SquareSet) Has(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return s&(1<<uint(sq)) != 0
}

// Len returns the number of members.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether the set has no members.
func (s SquareSet) Empty() bool {
	return s == 0
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

func (s SquareSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		parts = append(parts, sq.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Move is an origin/destination pair.
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}
