package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hybridchess/config"
	"hybridchess/types"
)

// ColorConfigUI provides a square colour configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	save      func() error
	onDone    func()

	// Current selection
	selectedLight int
	selectedDark  int
	editingDark   bool // true = editing dark squares, false = editing light squares
}

type namedColor struct {
	code int
	name string
}

// Light square colours to choose from
var lightColors = []namedColor{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{223, "Peach"},
	{188, "Light Beige"},
	{187, "Wheat"},
	{186, "Khaki"},
	{180, "Tan"},
	{152, "Pale Blue"},
	{151, "Pale Green"},
	{252, "Light Gray"},
	{250, "Gray"},
}

// Dark square colours (contrast with the light squares)
var darkColors = []namedColor{
	{137, "Walnut"},
	{136, "Dark Brown"},
	{130, "Dark Orange"},
	{94, "Saddle Brown"},
	{95, "Mauve"},
	{65, "Moss"},
	{66, "Slate"},
	{24, "Dark Cyan"},
	{60, "Blue Gray"},
	{240, "Gray"},
	{236, "Dark Gray"},
}

// NewColorConfig creates a new colour configuration screen. save persists the
// config after each confirmed choice; onDone is called after the light
// colour is confirmed.
func NewColorConfig(cfg *config.Config, save func() error, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		save:          save,
		onDone:        onDone,
		selectedLight: cfg.Theme.Colors.Light,
		selectedDark:  cfg.Theme.Colors.Dark,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		colors := cc.colors()
		if index < 0 || index >= len(colors) {
			return
		}
		if cc.editingDark {
			cc.selectedDark = colors[index].code
		} else {
			cc.selectedLight = colors[index].code
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Apply(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) colors() []namedColor {
	if cc.editingDark {
		return darkColors
	}
	return lightColors
}

// Apply confirms the colour at index of the current list.
func (cc *ColorConfigUI) Apply(index int) {
	colors := cc.colors()
	if index < 0 || index >= len(colors) {
		return
	}
	if cc.editingDark {
		cc.selectedDark = colors[index].code
		cc.cfg.Theme.Colors.Dark = cc.selectedDark
		cc.persist()
		// Switch back to light square selection
		cc.editingDark = false
		cc.populateColorList()
		return
	}
	cc.selectedLight = colors[index].code
	cc.cfg.Theme.Colors.Light = cc.selectedLight
	cc.persist()
	if cc.onDone != nil {
		cc.onDone()
	}
}

func (cc *ColorConfigUI) persist() {
	if cc.save == nil {
		return
	}
	if err := cc.save(); err != nil {
		cc.colorList.SetTitle(fmt.Sprintf(" Save failed: %v ", err))
	}
}

// populateColorList fills the list with the colours for the current mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedLight
	cc.colorList.SetTitle(" Light Squares (Tab: dark) ")
	if cc.editingDark {
		selected = cc.selectedDark
		cc.colorList.SetTitle(" Dark Squares (Tab: light) ")
	}
	for i, c := range cc.colors() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.colors() {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewPieces places a few pieces, one hybrid among them, on the 4x4 preview
var previewPieces = map[[2]int]struct {
	pieces []types.PieceType
	white  bool
}{
	{0, 0}: {[]types.PieceType{types.Rook}, false},
	{1, 0}: {[]types.PieceType{types.Knight, types.Bishop}, false},
	{2, 3}: {[]types.PieceType{types.King, types.Queen}, true},
	{3, 2}: {[]types.PieceType{types.Pawn}, true},
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	light := tcell.PaletteColor(cc.selectedLight)
	dark := tcell.PaletteColor(cc.selectedDark)
	whiteFG := tcell.PaletteColor(cc.cfg.Theme.Colors.WhitePiece)
	blackFG := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackPiece)

	startX := x + 2
	startY := y + 1
	size := 4
	cellW := cc.cfg.Theme.CellWidth

	if width < size*cellW+4 || height < size+4 {
		return x, y, width, height
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := light
			if (row+col)%2 == 1 {
				bg = dark
			}
			var glyphs []rune
			fg := blackFG
			if p, ok := previewPieces[[2]int{col, row}]; ok {
				for _, t := range p.pieces {
					glyphs = append(glyphs, symbolFor(cc.cfg.Theme.Symbols, t))
				}
				if p.white {
					fg = whiteFG
				}
			}
			drawSquareCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), glyphs, startX+col*cellW, startY+row, cellW)
		}
	}

	info := fmt.Sprintf("Light: %d  Dark: %d", cc.selectedLight, cc.selectedDark)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between light and dark square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingDark = !cc.editingDark
	cc.populateColorList()
}
