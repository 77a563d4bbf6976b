package view

import (
	"hybridchess/interact"
	"hybridchess/types"
)

// Grid places the 8x8 squares on a surface, in terminal cells or pixels.
type Grid struct {
	Left, Top    int
	CellW, CellH int
}

// Width returns the width covered by the squares.
func (g Grid) Width() int {
	return g.CellW * types.BoardSize
}

// Height returns the height covered by the squares.
func (g Grid) Height() int {
	return g.CellH * types.BoardSize
}

// SquareAt returns the square under (x, y), false when outside the squares.
func (g Grid) SquareAt(x, y int) (types.Square, bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return types.NoSquare, false
	}
	dx, dy := x-g.Left, y-g.Top
	if dx < 0 || dy < 0 {
		return types.NoSquare, false
	}
	col, row := dx/g.CellW, dy/g.CellH
	sq, err := types.SquareAt(row, col)
	if err != nil {
		return types.NoSquare, false
	}
	return sq, true
}

// Origin returns the top-left corner of sq.
func (g Grid) Origin(sq types.Square) (x, y int) {
	return g.Left + sq.Col()*g.CellW, g.Top + sq.Row()*g.CellH
}

// Hit classifies a pointer position for interact.Machine.Dispatch.
func (g Grid) Hit(x, y int) interact.Hit {
	if sq, ok := g.SquareAt(x, y); ok {
		return interact.SquareHit(sq)
	}
	return interact.OutsideHit()
}
