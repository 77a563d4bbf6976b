// Package window is the desktop front end: an ebiten game that draws the
// rendered board and feeds mouse clicks to the interaction machine.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"hybridchess/assets"
	"hybridchess/codec"
	"hybridchess/engine"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/types"
	"hybridchess/view"
)

type Options struct {
	SquareSize int
	Margin     int
	Palette    assets.Palette
	Images     *assets.Set
	// NewBoard starts a fresh game when N is pressed; nil disables it.
	NewBoard func() (engine.Gateway, error)
}

type Game struct {
	opts    Options
	grid    view.Grid
	view    *view.View
	frame   view.Board
	machine *interact.Machine
	sprites map[string]*ebiten.Image
	log     logx.Logger

	prevMouseDown bool
}

// New creates the game over board and paints the first frame.
func New(board engine.Gateway, opts Options, log logx.Logger) *Game {
	if log == nil {
		log = logx.Nop()
	}
	g := &Game{
		opts:    opts,
		grid:    view.Grid{Left: opts.Margin, Top: opts.Margin, CellW: opts.SquareSize, CellH: opts.SquareSize},
		view:    view.New(log),
		sprites: make(map[string]*ebiten.Image),
		log:     log,
	}
	g.machine = interact.New(board, g, log)
	g.machine.Redraw()
	return g
}

func (g *Game) Run() error {
	w, h := g.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Hybrid Chess")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Render implements interact.Renderer.
func (g *Game) Render(snap interact.Snapshot) {
	g.frame = g.view.Render(snap)
}

// Machine returns the interaction machine driving the board.
func (g *Game) Machine() *interact.Machine {
	return g.machine
}

func (g *Game) Update() error {
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justReleased := !mouseDown && g.prevMouseDown
	g.prevMouseDown = mouseDown

	if justReleased {
		mx, my := ebiten.CursorPosition()
		if err := g.click(mx, my); err != nil {
			return err
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.machine.OutsideClicked()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.newGame()
	}
	return nil
}

// click routes a release at (x, y). Only malformed squares stop the game.
func (g *Game) click(x, y int) error {
	err := g.machine.Dispatch(g.grid.Hit(x, y))
	if err != nil {
		g.log.Errorf("click at %d,%d: %v", x, y, err)
		if errors.Is(err, types.ErrMalformedSquare) {
			return err
		}
	}
	return nil
}

// newGame replaces the board. A failing factory is logged and the current
// game goes on.
func (g *Game) newGame() {
	if g.opts.NewBoard == nil {
		return
	}
	board, err := g.opts.NewBoard()
	if err != nil {
		g.log.Errorf("new game: %v", err)
		return
	}
	g.log.Infof("new game")
	g.machine.Reset(board)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	size := float32(g.opts.SquareSize)
	for _, sv := range g.frame.Squares {
		x, y := g.grid.Origin(sv.Square)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, g.opts.Palette.Square(sv), false)
		g.drawPieces(screen, sv, x, y)
	}

	labels := color.Gray{Y: 0x50}
	for i := 0; i < types.BoardSize; i++ {
		mid := g.opts.Margin + i*g.opts.SquareSize + g.opts.SquareSize/2
		text.Draw(screen, string(rune('a'+i)), basicfont.Face7x13, mid-3, g.grid.Top+g.grid.Height()+g.opts.Margin/2+4, labels)
		text.Draw(screen, string(rune('8'-i)), basicfont.Face7x13, g.opts.Margin/2-3, mid+4, labels)
	}
	if g.frame.Message != "" {
		text.Draw(screen, g.frame.Message, basicfont.Face7x13, g.opts.Margin, g.opts.Margin/2+4, labels)
	}
}

func (g *Game) drawPieces(screen *ebiten.Image, sv view.SquareView, x, y int) {
	if !sv.Occupied() {
		return
	}
	sprites := make([]*ebiten.Image, 0, len(sv.Layers))
	for _, l := range sv.Layers {
		s := g.sprite(l)
		if s == nil {
			letters := assets.Letters(sv.Layers)
			cx := x + (g.opts.SquareSize-7*len(letters))/2
			cy := y + g.opts.SquareSize/2 + 4
			text.Draw(screen, letters, basicfont.Face7x13, cx, cy, g.opts.Palette.Piece(sv.White))
			return
		}
		sprites = append(sprites, s)
	}
	for _, s := range sprites {
		scale := float64(g.opts.SquareSize) / float64(s.Bounds().Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(s, op)
	}
}

// sprite returns the ebiten image for l, converting it on first use.
func (g *Game) sprite(l codec.Layer) *ebiten.Image {
	token := l.Token()
	if s, ok := g.sprites[token]; ok {
		return s
	}
	img, ok := g.opts.Images.Image(l)
	if !ok {
		g.sprites[token] = nil
		return nil
	}
	s := ebiten.NewImageFromImage(img)
	g.sprites[token] = s
	return s
}

func (g *Game) size() (int, int) {
	side := g.grid.Width() + 2*g.opts.Margin
	return side, side
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.size()
}
