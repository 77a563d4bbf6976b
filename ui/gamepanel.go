package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"hybridchess/interact"
	"hybridchess/types"
	"hybridchess/view"
)

const maxVisibleMoves = 12

// turnReporter is implemented by engines that track the side to move.
type turnReporter interface {
	WhiteToMove() bool
}

// StatusPanel displays the game status, selection and move history
// alongside the board.
type StatusPanel struct {
	box *tview.TextView
}

// NewStatusPanel creates a new status panel.
func NewStatusPanel() *StatusPanel {
	panel := &StatusPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *StatusPanel) Box() *tview.TextView {
	return p.box
}

// Text returns the panel contents.
func (p *StatusPanel) Text() string {
	return p.box.GetText(false)
}

// Update refreshes the panel for a new frame.
func (p *StatusPanel) Update(frame view.Board, snap interact.Snapshot, history []types.Move) {
	var text strings.Builder

	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	if t, ok := snap.Board.(turnReporter); ok {
		side := "Black"
		if t.WhiteToMove() {
			side = "White"
		}
		fmt.Fprintf(&text, "[white]Turn:[-:-:-] %s\n", side)
	}
	fmt.Fprintf(&text, "[white]Move:[-:-:-] %d\n", len(history)+1)

	if snap.State.IsSelected() {
		fmt.Fprintf(&text, "[white]Selected:[-:-:-] %s\n", snap.State.Origin())
		fmt.Fprintf(&text, "[dimgray]  → %s[-]\n", strings.Join(squareNames(snap.State.Moves()), " "))
	}

	if frame.Message != "" {
		fmt.Fprintf(&text, "\n[yellow::b]%s[-:-:-]\n", frame.Message)
	}

	if len(history) > 0 {
		text.WriteString("\n[white::b]Moves[-:-:-]\n")
		text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

		start := 0
		if len(history) > maxVisibleMoves {
			start = len(history) - maxVisibleMoves
		}
		for i := start; i < len(history); i++ {
			marker := " "
			if i == len(history)-1 {
				marker = "[white]>[-]"
			}
			fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s\n", marker, i+1, history[i])
		}
		if start > 0 {
			fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text.String())
}

func squareNames(set types.SquareSet) []string {
	squares := set.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ChessBoardUI, hint *tview.TextView) *tview.Flex {
	panel := NewStatusPanel()
	board.panel = panel

	// Create horizontal flex: board | status panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, compact hint bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// NewHint creates the controls line shown under the board.
func NewHint() *tview.TextView {
	hint := tview.NewTextView()
	hint.SetDynamicColors(true)
	hint.SetText("  click a piece to select · click a highlighted square to move\n  esc clear · n new game · c colours · q quit")
	return hint
}
