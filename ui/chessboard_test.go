package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hybridchess/config"
	"hybridchess/engine/enginetest"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/types"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

// newTestBoard returns a board control over a rook-bishop hybrid on e7 that
// can move to e8 and e6, already drawn once so clicks can be hit-tested.
func newTestBoard(t *testing.T, cfg *config.Config) (*ChessBoardUI, *interact.Machine, *enginetest.Board, tcell.SimulationScreen) {
	t.Helper()
	g := enginetest.New().
		Place(12, types.RookBit|types.BishopBit, true).
		Script(12, 4, 20).
		Place(52, types.PawnBit, false)
	b := NewChessBoard(nil, cfg, logx.Nop())
	m := interact.New(g, b, logx.Nop())
	b.Attach(m)

	screen := newScreen(t)
	b.Box.SetRect(0, 0, 60, 20)
	b.Box.Draw(screen)
	return b, m, g, screen
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return r, bg
}

func TestDrawGlyphs(t *testing.T) {
	cfg := config.DefaultConfig
	b, _, _, screen := newTestBoard(t, &cfg)

	// e7 is row 1 col 4; the cell is 4 wide and starts after the rank labels
	x, y := b.Grid().Origin(12)
	if x != 18 || y != 1 {
		t.Fatalf("Origin(e7) = %d,%d, want 18,1", x, y)
	}
	want := []rune{' ', cfg.Theme.Symbols.Rook, cfg.Theme.Symbols.Bishop, ' '}
	for i, w := range want {
		if r, _ := cellAt(screen, x+i, y); r != w {
			t.Errorf("cell %d = %q, want %q", i, r, w)
		}
	}

	if r, _ := cellAt(screen, 0, 0); r != '8' {
		t.Errorf("rank label = %q, want 8", r)
	}
	if r, _ := cellAt(screen, 2+2, 8); r != 'a' {
		t.Errorf("file label = %q, want a", r)
	}
}

func TestDrawOverflow(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Theme.CellWidth = 2
	g := enginetest.New().Place(0, types.KingBit|types.QueenBit|types.RookBit, false)
	b := NewChessBoard(nil, &cfg, logx.Nop())
	b.Attach(interact.New(g, b, logx.Nop()))

	screen := newScreen(t)
	b.Box.SetRect(0, 0, 60, 20)
	b.Box.Draw(screen)

	x, y := b.Grid().Origin(0)
	if r, _ := cellAt(screen, x, y); r != cfg.Theme.Symbols.King {
		t.Errorf("first glyph = %q, want king", r)
	}
	if r, _ := cellAt(screen, x+1, y); r != cfg.Theme.Symbols.Overflow {
		t.Errorf("second glyph = %q, want overflow mark", r)
	}
}

func TestClickSelectsAndMoves(t *testing.T) {
	cfg := config.DefaultConfig
	b, m, g, screen := newTestBoard(t, &cfg)

	x, y := b.Grid().Origin(12)
	b.Click(x+1, y)
	if m.State() != interact.Selected(12, types.SquareSetOf(4, 20)) {
		t.Fatalf("state = %v, want Selected(e7)", m.State())
	}
	b.Box.Draw(screen)
	if _, bg := cellAt(screen, x, y); bg != tcell.PaletteColor(cfg.Theme.Colors.Selected) {
		t.Errorf("selected background = %v", bg)
	}
	ax, ay := b.Grid().Origin(20)
	if _, bg := cellAt(screen, ax, ay); bg != tcell.PaletteColor(cfg.Theme.Colors.Available) {
		t.Errorf("available background = %v", bg)
	}

	tx, ty := b.Grid().Origin(4)
	b.Click(tx, ty)
	if m.State().IsSelected() {
		t.Error("state should be idle after a move")
	}
	if got := g.Applied(); len(got) != 1 || got[0] != (types.Move{From: 12, To: 4}) {
		t.Errorf("applied = %v, want [e7e8]", got)
	}
	if !b.Frame().At(4).PrevMove || !b.Frame().At(12).PrevMove {
		t.Error("last move not marked")
	}
	if b.Err() != nil {
		t.Errorf("Err = %v", b.Err())
	}
}

func TestClickOutsideDeselects(t *testing.T) {
	cfg := config.DefaultConfig
	b, m, _, _ := newTestBoard(t, &cfg)

	x, y := b.Grid().Origin(12)
	b.Click(x, y)
	if !m.State().IsSelected() {
		t.Fatal("expected a selection")
	}
	b.Click(70, 20)
	if m.State() != interact.Idle() {
		t.Errorf("state = %v, want Idle", m.State())
	}

	b.Click(x, y)
	b.Deselect()
	if m.State() != interact.Idle() {
		t.Errorf("state after Deselect = %v, want Idle", m.State())
	}
}

func TestMouseCapture(t *testing.T) {
	cfg := config.DefaultConfig
	b, m, _, _ := newTestBoard(t, &cfg)
	capture := b.MouseCapture()

	x, y := b.Grid().Origin(12)
	ev := tcell.NewEventMouse(x, y, tcell.Button1, 0)
	if out, _ := capture(ev, tview.MouseLeftClick); out != ev || m.State().IsSelected() {
		t.Error("clicks should pass through while the board is not focused")
	}

	b.Box.Focus(nil)
	if out, _ := capture(ev, tview.MouseMove); out != ev {
		t.Error("non-click events should pass through")
	}
	if m.State().IsSelected() {
		t.Error("mouse move should not select")
	}
	if out, _ := capture(ev, tview.MouseLeftClick); out != nil {
		t.Error("left click should be consumed")
	}
	if !m.State().IsSelected() {
		t.Error("left click should select")
	}
}

func TestStatusPanel(t *testing.T) {
	cfg := config.DefaultConfig
	b, _, _, _ := newTestBoard(t, &cfg)
	CreateGameLayout(b, NewHint())

	x, y := b.Grid().Origin(12)
	b.Click(x, y)
	text := b.panel.Text()
	if !strings.Contains(text, "Selected:[-:-:-] e7") {
		t.Errorf("panel missing selection:\n%s", text)
	}
	if !strings.Contains(text, "e8 e6") {
		t.Errorf("panel missing destinations:\n%s", text)
	}

	tx, ty := b.Grid().Origin(4)
	b.Click(tx, ty)
	text = b.panel.Text()
	if !strings.Contains(text, "e7e8") {
		t.Errorf("panel missing history:\n%s", text)
	}
	if strings.Contains(text, "Selected") {
		t.Errorf("panel still shows a selection:\n%s", text)
	}
}

func TestDrawCheckMove(t *testing.T) {
	cfg := config.DefaultConfig
	b, m, g, screen := newTestBoard(t, &cfg)
	g.CheckScript(12, 28)

	x, y := b.Grid().Origin(12)
	b.Click(x, y)
	b.Box.Draw(screen)
	cx, cy := b.Grid().Origin(28)
	if _, bg := cellAt(screen, cx, cy); bg != tcell.PaletteColor(cfg.Theme.Colors.CheckMove) {
		t.Errorf("check move background = %v", bg)
	}

	b.Click(cx, cy)
	if len(g.Applied()) != 0 || m.State().IsSelected() {
		t.Error("clicking a check move should drop the selection without moving")
	}
}
