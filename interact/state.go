package interact

import (
	"fmt"

	"hybridchess/engine"
	"hybridchess/types"
)

// State is the click-interaction state: Idle, or Selected with the moves
// the engine reported at selection time. States are values and compare
// with ==; the zero value is Idle.
type State struct {
	selected bool
	origin   types.Square
	moves    types.SquareSet
}

// Idle returns the state with nothing selected.
func Idle() State {
	return State{}
}

// Selected returns the state with origin chosen and moves available.
func Selected(origin types.Square, moves types.SquareSet) State {
	return State{selected: true, origin: origin, moves: moves}
}

// IsSelected reports whether a square is selected.
func (s State) IsSelected() bool {
	return s.selected
}

// Origin returns the selected square, or NoSquare when idle.
func (s State) Origin() types.Square {
	if !s.selected {
		return types.NoSquare
	}
	return s.origin
}

// Moves returns the available destinations, empty when idle.
func (s State) Moves() types.SquareSet {
	if !s.selected {
		return 0
	}
	return s.moves
}

func (s State) String() string {
	if !s.selected {
		return "Idle"
	}
	return fmt.Sprintf("Selected(%s, %s)", s.origin, s.moves)
}

// Snapshot is everything a render pass reads.
type Snapshot struct {
	Board    engine.Gateway
	State    State
	LastMove *types.Move
}

// Renderer receives a snapshot whenever the visible state changes.
type Renderer interface {
	Render(Snapshot)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot)

func (f RenderFunc) Render(s Snapshot) {
	f(s)
}

// Hit is a classified pointer event. OnBoard is false for clicks anywhere
// outside the squares.
type Hit struct {
	Square  types.Square
	OnBoard bool
}

// SquareHit returns a hit on sq.
func SquareHit(sq types.Square) Hit {
	return Hit{Square: sq, OnBoard: true}
}

// OutsideHit returns a hit outside the board.
func OutsideHit() Hit {
	return Hit{Square: types.NoSquare}
}
