package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"

	"hybridchess/assets"
	"hybridchess/config"
	"hybridchess/engine/enginetest"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/types"
	"hybridchess/view"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	p, err := assets.PaletteFrom(config.DefaultTheme.Image)
	if err != nil {
		t.Fatal(err)
	}
	return Options{SquareSize: 20, Margin: 10, Palette: p}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestDrawSquares(t *testing.T) {
	opts := testOptions(t)
	g := enginetest.New().Place(12, types.RookBit, true)
	snap := interact.Snapshot{Board: g, State: interact.Selected(12, types.SquareSetOf(4))}
	frame := view.New(logx.Nop()).Render(snap)

	img := Draw(frame, opts)
	if b := img.Bounds(); b.Dx() != 180 || b.Dy() != 180 {
		t.Fatalf("bounds = %v, want 180x180", b)
	}
	// sample the corner pixel of each square, away from any letters
	checks := []struct {
		sq   types.Square
		want color.Color
	}{
		{0, opts.Palette.Light},
		{1, opts.Palette.Dark},
		{12, opts.Palette.Selected},
		{4, opts.Palette.Available},
	}
	grid := view.Grid{Left: 10, Top: 10, CellW: 20, CellH: 20}
	for _, c := range checks {
		x, y := grid.Origin(c.sq)
		if got := img.At(x+1, y+1); !sameColor(got, c.want) {
			t.Errorf("square %s = %v, want %v", c.sq, got, c.want)
		}
	}
}

func TestDrawUsesImages(t *testing.T) {
	dir := t.TempDir()
	dc := gg.NewContext(10, 10)
	dc.SetRGB(0, 0, 1)
	dc.Clear()
	if err := dc.SavePNG(filepath.Join(dir, "black_queen.png")); err != nil {
		t.Fatal(err)
	}
	set, err := assets.Load(dir, logx.Nop())
	if err != nil {
		t.Fatal(err)
	}
	opts := testOptions(t)
	opts.Images = set

	g := enginetest.New().Place(0, types.QueenBit, false)
	frame := view.New(logx.Nop()).Render(interact.Snapshot{Board: g})
	img := Draw(frame, opts)

	x, y := view.Grid{Left: 10, Top: 10, CellW: 20, CellH: 20}.Origin(0)
	if got := img.At(x+10, y+10); !sameColor(got, color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("centre of a8 = %v, want the scaled queen image", got)
	}
}

func TestWriteAndEncode(t *testing.T) {
	opts := testOptions(t)
	g := enginetest.New().
		Place(4, types.KingBit|types.BishopBit, false).
		WithStatus(enginetest.Status{BlackInCheck: true})
	frame := view.New(logx.Nop()).Render(interact.Snapshot{Board: g.Reporter()})

	path := filepath.Join(t.TempDir(), "board.png")
	if err := Write(path, frame, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	img, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 180 {
		t.Errorf("width = %d, want 180", b.Dx())
	}

	var buf bytes.Buffer
	if err := Encode(&buf, frame, opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	x, y := view.Grid{Left: 10, Top: 10, CellW: 20, CellH: 20}.Origin(4)
	if got := decoded.At(x+1, y+1); !sameColor(got, opts.Palette.Check) {
		t.Errorf("checked king square = %v, want check colour", got)
	}
}
