// Package interact turns pointer events into selection, move preview and
// move commits against the rules engine.
//
// A Machine owns the held board and the interaction State. Both are replaced
// as whole values, one event at a time, and the Renderer is called only when
// the visible state actually changes.
package interact

import (
	"fmt"

	"hybridchess/engine"
	"hybridchess/logx"
	"hybridchess/types"
)

type Machine struct {
	board    engine.Gateway
	state    State
	last     *types.Move
	history  []types.Move
	renderer Renderer
	log      logx.Logger
}

// New creates an idle machine holding board. It does not render; call
// Redraw for the first frame.
func New(board engine.Gateway, r Renderer, log logx.Logger) *Machine {
	if log == nil {
		log = logx.Nop()
	}
	if r == nil {
		r = RenderFunc(func(Snapshot) {})
	}
	return &Machine{
		board:    board,
		renderer: r,
		log:      log,
	}
}

// State returns the current interaction state.
func (m *Machine) State() State {
	return m.state
}

// Board returns the held board.
func (m *Machine) Board() engine.Gateway {
	return m.board
}

// History returns the moves committed since the last reset.
func (m *Machine) History() []types.Move {
	out := make([]types.Move, len(m.history))
	copy(out, m.history)
	return out
}

// Snapshot returns what a render pass needs.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{Board: m.board, State: m.state}
	if m.last != nil {
		last := *m.last
		s.LastMove = &last
	}
	return s
}

// Redraw renders the current snapshot unconditionally.
func (m *Machine) Redraw() {
	m.renderer.Render(m.Snapshot())
}

// Reset starts over with a new board.
func (m *Machine) Reset(board engine.Gateway) {
	m.board = board
	m.state = Idle()
	m.last = nil
	m.history = nil
	m.Redraw()
}

// Dispatch routes a classified pointer event. A hit on the board is handled
// as a square click only; everything else is an outside click.
func (m *Machine) Dispatch(h Hit) error {
	if !h.OnBoard {
		m.OutsideClicked()
		return nil
	}
	return m.SquareClicked(h.Square)
}

// SquareClicked handles a click on sq. An off-board square is an integration
// error and is returned without touching the state.
func (m *Machine) SquareClicked(sq types.Square) error {
	if !sq.Valid() {
		return fmt.Errorf("square click: %w: index %d", types.ErrMalformedSquare, int(sq))
	}

	if m.state.IsSelected() {
		switch {
		case m.state.Moves().Has(sq):
			m.commit(types.Move{From: m.state.Origin(), To: sq})
			return nil
		case sq == m.state.Origin():
			m.setState(Idle())
			return nil
		}
	}

	m.setState(m.selectionFor(sq))
	return nil
}

// OutsideClicked drops any selection.
func (m *Machine) OutsideClicked() {
	m.setState(Idle())
}

// selectionFor asks the engine what sq can do.
func (m *Machine) selectionFor(sq types.Square) State {
	if m.board.PieceCodeAt(sq) == 0 {
		return Idle()
	}
	moves := m.board.MovesFrom(sq)
	if moves.Empty() {
		m.log.Debugf("no moves from %s", sq)
		return Idle()
	}
	return Selected(sq, moves)
}

// commit applies mv. On any engine failure the selection is dropped and the
// board kept, so the UI never points at moves from a board that did not change.
func (m *Machine) commit(mv types.Move) {
	next, err := m.board.ApplyMove(mv.From, mv.To)
	if err == nil && next == nil {
		err = fmt.Errorf("%w: engine returned no board", engine.ErrMoveRejected)
	}
	if err != nil {
		m.log.Errorf("engine rejected move %s: %v", mv, err)
		m.setState(Idle())
		return
	}

	m.log.Debugf("applied move %s", mv)
	m.board = next
	m.last = &mv
	m.history = append(m.history, mv)
	m.state = Idle()
	m.Redraw()
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.state = s
	m.Redraw()
}
