// Package ui specifies custom controls for tview to play hybrid chess in the terminal.
package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hybridchess/config"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/types"
	"hybridchess/view"
)

const labelWidth = 2

// palette slots, indexed by the role a colour plays on the board
const (
	styleLight = iota
	styleDark
	styleSelected
	styleAvailable
	stylePrevMove
	styleCheck
	styleCheckMove
	styleWhitePiece
	styleBlackPiece
	styleLabel
)

type ChessBoardUI struct {
	Box     *tview.Box
	app     *tview.Application
	cfg     *config.Config
	styles  []tcell.Color
	view    *view.View
	frame   view.Board
	snap    interact.Snapshot
	grid    view.Grid
	machine *interact.Machine
	panel   *StatusPanel
	log     logx.Logger
	err     error
}

// NewChessBoard creates the board control. Call Attach before the first
// event so clicks reach a machine.
func NewChessBoard(app *tview.Application, c *config.Config, log logx.Logger) *ChessBoardUI {
	if log == nil {
		log = logx.Nop()
	}
	board := &ChessBoardUI{
		Box:  tview.NewBox(),
		app:  app,
		view: view.New(log),
		log:  log,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (b *ChessBoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.Light),      // 0
		tcell.PaletteColor(c.Theme.Colors.Dark),       // 1
		tcell.PaletteColor(c.Theme.Colors.Selected),   // 2
		tcell.PaletteColor(c.Theme.Colors.Available),  // 3
		tcell.PaletteColor(c.Theme.Colors.PrevMove),   // 4
		tcell.PaletteColor(c.Theme.Colors.Check),      // 5
		tcell.PaletteColor(c.Theme.Colors.CheckMove),  // 6
		tcell.PaletteColor(c.Theme.Colors.WhitePiece), // 7
		tcell.PaletteColor(c.Theme.Colors.BlackPiece), // 8
		tcell.PaletteColor(c.Theme.Colors.Label),      // 9
	}
	b.cfg = c
}

// Attach connects the board to m and paints its first frame.
func (b *ChessBoardUI) Attach(m *interact.Machine) {
	b.machine = m
	m.Redraw()
}

// Render stores the frame for the next draw. It implements interact.Renderer.
func (b *ChessBoardUI) Render(snap interact.Snapshot) {
	b.snap = snap
	b.frame = b.view.Render(snap)
	if b.panel != nil {
		b.panel.Update(b.frame, snap, b.history())
	}
	if b.app != nil {
		// Spawn goroutine to avoid deadlock when called from the event loop
		go func() {
			b.app.QueueUpdateDraw(func() {})
		}()
	}
}

// Frame returns the last rendered frame.
func (b *ChessBoardUI) Frame() view.Board {
	return b.frame
}

// Grid returns where the squares were last drawn.
func (b *ChessBoardUI) Grid() view.Grid {
	return b.grid
}

// Click routes a left click at screen cell (x, y) to the machine. A malformed
// square stops the application; Err reports it afterwards.
func (b *ChessBoardUI) Click(x, y int) {
	if b.machine == nil {
		return
	}
	err := b.machine.Dispatch(b.grid.Hit(x, y))
	if err == nil {
		return
	}
	b.log.Errorf("click at %d,%d: %v", x, y, err)
	if errors.Is(err, types.ErrMalformedSquare) {
		b.err = err
		if b.app != nil {
			b.app.Stop()
		}
	}
}

// Deselect drops the current selection.
func (b *ChessBoardUI) Deselect() {
	if b.machine != nil {
		b.machine.OutsideClicked()
	}
}

// Err returns the error that stopped the board, if any.
func (b *ChessBoardUI) Err() error {
	return b.err
}

// MouseCapture returns a handler for tview.Application.SetMouseCapture that
// feeds left clicks to the board while it has focus.
func (b *ChessBoardUI) MouseCapture() func(*tcell.EventMouse, tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	return func(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		if action != tview.MouseLeftClick || !b.Box.HasFocus() {
			return event, action
		}
		x, y := event.Position()
		b.Click(x, y)
		return nil, action
	}
}

func (b *ChessBoardUI) history() []types.Move {
	if b.machine == nil {
		return nil
	}
	return b.machine.History()
}

func (b *ChessBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	left := x
	if b.cfg.Theme.ShowLabels {
		left += labelWidth
	}
	b.grid = view.Grid{Left: left, Top: y, CellW: b.cfg.Theme.CellWidth, CellH: 1}

	for _, sv := range b.frame.Squares {
		cx, cy := b.grid.Origin(sv.Square)
		drawSquareCell(screen, b.squareStyle(sv), b.glyphs(sv), cx, cy, b.grid.CellW)
	}
	if b.cfg.Theme.ShowLabels {
		b.drawCoordinates(screen, x)
	}
	return x, y, b.grid.Width() + (left - x), b.grid.Height() + 1
}

func (b *ChessBoardUI) squareStyle(sv view.SquareView) tcell.Style {
	i := styleLight
	if sv.Shade == view.Dark {
		i = styleDark
	}
	switch {
	case sv.Selected:
		i = styleSelected
	case sv.Check:
		i = styleCheck
	case sv.Available:
		i = styleAvailable
	case sv.CheckMove:
		i = styleCheckMove
	case sv.PrevMove:
		i = stylePrevMove
	}
	fg := b.styles[styleBlackPiece]
	if sv.White {
		fg = b.styles[styleWhitePiece]
	}
	return tcell.StyleDefault.Background(b.styles[i]).Foreground(fg)
}

// glyphs returns one rune per layer, cut to fit the cell with the overflow
// mark in the last position.
func (b *ChessBoardUI) glyphs(sv view.SquareView) []rune {
	runes := make([]rune, 0, len(sv.Layers))
	for _, l := range sv.Layers {
		runes = append(runes, symbolFor(b.cfg.Theme.Symbols, l.Piece))
	}
	if w := b.cfg.Theme.CellWidth; len(runes) > w {
		runes = append(runes[:w-1], b.cfg.Theme.Symbols.Overflow)
	}
	return runes
}

func symbolFor(s config.ConfigSymbols, t types.PieceType) rune {
	switch t {
	case types.King:
		return s.King
	case types.Queen:
		return s.Queen
	case types.Rook:
		return s.Rook
	case types.Bishop:
		return s.Bishop
	case types.Knight:
		return s.Knight
	default:
		return s.Pawn
	}
}

// drawSquareCell fills a cell of width w and centres the glyphs in it
func drawSquareCell(s tcell.Screen, c tcell.Style, glyphs []rune, l, t, w int) {
	start := (w - len(glyphs)) / 2
	for i := 0; i < w; i++ {
		r := ' '
		if j := i - start; j >= 0 && j < len(glyphs) {
			r = glyphs[j]
		}
		s.SetContent(l+i, t, r, nil, c)
	}
}

func (b *ChessBoardUI) drawCoordinates(s tcell.Screen, x int) {
	style := tcell.StyleDefault.Foreground(b.styles[styleLabel])
	highlight := tcell.StyleDefault.Background(b.styles[styleSelected])
	origin := b.snap.State.Origin()

	for row := 0; row < types.BoardSize; row++ {
		_style := style
		if origin.Valid() && origin.Row() == row {
			_style = highlight
		}
		s.SetContent(x, b.grid.Top+row, rune('8'-row), nil, _style)
		s.SetContent(x+1, b.grid.Top+row, ' ', nil, _style)
	}

	for col := 0; col < types.BoardSize; col++ {
		_style := style
		if origin.Valid() && origin.Col() == col {
			_style = highlight
		}
		cx := b.grid.Left + col*b.grid.CellW
		for i := 0; i < b.grid.CellW; i++ {
			s.SetContent(cx+i, b.grid.Top+b.grid.Height(), ' ', nil, _style)
		}
		s.SetContent(cx+b.grid.CellW/2, b.grid.Top+b.grid.Height(), rune('a'+col), nil, _style)
	}
}
