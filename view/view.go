// Package view computes what every square of the board must show.
//
// Render is a pure pass over an interact.Snapshot: it never changes the
// snapshot and returns equal output for equal input. Front ends paint the
// resulting Board with whatever technology they use.
package view

import (
	"fmt"

	"hybridchess/codec"
	"hybridchess/engine"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/types"
)

// Shade is the checkerboard colour of a square.
type Shade int

const (
	Light Shade = iota
	Dark
)

func (s Shade) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// ShadeOf returns the checkerboard shade of sq.
func ShadeOf(sq types.Square) Shade {
	if (sq.Row()+sq.Col())%2 == 0 {
		return Light
	}
	return Dark
}

// SquareView is everything needed to paint one square.
type SquareView struct {
	Square    types.Square
	Shade     Shade
	White     bool
	Layers    []codec.Layer
	Hybrid    bool
	Unknown   types.PieceCode // stray bits that produced no layer
	Selected  bool
	Available bool
	CheckMove bool // reachable only by leaving the own king in check
	PrevMove  bool
	Check     bool
}

// Occupied reports whether the square shows any piece layer.
func (s SquareView) Occupied() bool {
	return len(s.Layers) > 0
}

// Classes returns the square's style markers in a stable order.
func (s SquareView) Classes() []string {
	classes := []string{s.Shade.String()}
	if s.PrevMove {
		classes = append(classes, "prev-move")
	}
	if s.Selected {
		classes = append(classes, "selected")
	}
	if s.Available {
		classes = append(classes, "available-move")
	}
	if s.CheckMove {
		classes = append(classes, "check-move")
	}
	if len(s.Layers) > 0 {
		classes = append(classes, "piece-"+s.Layers[0].Color())
		for _, l := range s.Layers {
			classes = append(classes, l.Piece.Name())
		}
	}
	if s.Hybrid {
		classes = append(classes, "hybrid")
	}
	if s.Check {
		classes = append(classes, "check")
	}
	return classes
}

// Board is a rendered frame.
type Board struct {
	Squares [types.BoardSize * types.BoardSize]SquareView
	Message string
}

// At returns the view of sq. An off-board square gets an empty view.
func (b Board) At(sq types.Square) SquareView {
	if !sq.Valid() {
		return SquareView{Square: sq}
	}
	return b.Squares[sq]
}

type View struct {
	log logx.Logger
}

// New creates a View that reports malformed piece codes to log.
func New(log logx.Logger) *View {
	if log == nil {
		log = logx.Nop()
	}
	return &View{log: log}
}

// Render computes the frame for snap.
func (v *View) Render(snap interact.Snapshot) Board {
	var out Board
	g := snap.Board
	status, hasStatus := g.(engine.StatusReporter)
	checked := false

	var prev types.SquareSet
	if snap.LastMove != nil {
		prev = types.SquareSetOf(snap.LastMove.From, snap.LastMove.To)
	}

	var checkMoves types.SquareSet
	if cm, ok := g.(engine.CheckMoveReporter); ok && snap.State.IsSelected() {
		checkMoves = cm.CheckMovesFrom(snap.State.Origin()) &^ snap.State.Moves()
	}

	for i := range out.Squares {
		sq := types.Square(i)
		sv := SquareView{
			Square:    sq,
			Shade:     ShadeOf(sq),
			Selected:  snap.State.IsSelected() && snap.State.Origin() == sq,
			Available: snap.State.Moves().Has(sq),
			CheckMove: checkMoves.Has(sq),
			PrevMove:  prev.Has(sq),
		}

		code := g.PieceCodeAt(sq)
		if code != 0 {
			sv.White = g.IsWhiteAt(sq)
			sv.Layers, sv.Unknown = codec.Decode(code, sv.White)
			sv.Hybrid = codec.IsHybrid(sv.Layers)
			if sv.Unknown != 0 {
				v.log.Warnf("square %s: unknown piece bits %#x in code %#x", sq, uint32(sv.Unknown), uint32(code))
			}
			if hasStatus && code.Has(types.King) && status.InCheck(sv.White) {
				sv.Check = true
				checked = true
			}
		}
		out.Squares[i] = sv
	}

	if hasStatus {
		out.Message = message(status.Outcome(), checked)
	}
	return out
}

func message(o engine.Outcome, checked bool) string {
	switch o.Kind {
	case engine.Checkmate:
		winner := "Black"
		if o.WhiteWins {
			winner = "White"
		}
		return fmt.Sprintf("Checkmate! %s wins", winner)
	case engine.Stalemate:
		return "Stalemate!"
	}
	if checked {
		return "Check!"
	}
	return ""
}
