// Package snapshot draws a rendered board to a PNG image.
package snapshot

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"hybridchess/assets"
	"hybridchess/types"
	"hybridchess/view"
)

type Options struct {
	SquareSize int
	Margin     int
	Palette    assets.Palette
	Images     *assets.Set
}

// Draw paints frame onto a new image: squares, piece layers stacked in
// order, file and rank labels in the margin and the status message below.
func Draw(frame view.Board, opts Options) image.Image {
	size := float64(opts.SquareSize)
	margin := float64(opts.Margin)
	side := int(size*types.BoardSize + 2*margin)

	dc := gg.NewContext(side, side)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	grid := view.Grid{Left: opts.Margin, Top: opts.Margin, CellW: opts.SquareSize, CellH: opts.SquareSize}
	for _, sv := range frame.Squares {
		x, y := grid.Origin(sv.Square)
		fx, fy := float64(x), float64(y)

		dc.SetColor(opts.Palette.Square(sv))
		dc.DrawRectangle(fx, fy, size, size)
		dc.Fill()

		drawPieces(dc, sv, fx, fy, size, opts)
	}

	dc.SetRGB(0.3, 0.3, 0.3)
	for i := 0; i < types.BoardSize; i++ {
		mid := margin + (float64(i)+0.5)*size
		dc.DrawStringAnchored(string(rune('a'+i)), mid, margin+size*types.BoardSize+margin/2, 0.5, 0.5)
		dc.DrawStringAnchored(string(rune('8'-i)), margin/2, mid, 0.5, 0.5)
	}

	if frame.Message != "" {
		dc.DrawStringAnchored(frame.Message, float64(side)/2, margin/2, 0.5, 0.5)
	}
	return dc.Image()
}

// drawPieces stacks the layer images over the square, falling back to the
// layer letters when any image is missing.
func drawPieces(dc *gg.Context, sv view.SquareView, x, y, size float64, opts Options) {
	if !sv.Occupied() {
		return
	}
	for _, l := range sv.Layers {
		if _, ok := opts.Images.Image(l); !ok {
			dc.SetColor(opts.Palette.Piece(sv.White))
			dc.DrawStringAnchored(assets.Letters(sv.Layers), x+size/2, y+size/2, 0.5, 0.5)
			return
		}
	}
	for _, l := range sv.Layers {
		img, _ := opts.Images.Image(l)
		b := img.Bounds()
		scale := size / float64(b.Dx())
		dc.Push()
		dc.Translate(x, y)
		dc.Scale(scale, scale)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}
}

// Encode writes frame as PNG to w.
func Encode(w io.Writer, frame view.Board, opts Options) error {
	dc := gg.NewContextForImage(Draw(frame, opts))
	return dc.EncodePNG(w)
}

// Write saves frame as a PNG file at path.
func Write(path string, frame view.Board, opts Options) error {
	return gg.SavePNG(path, Draw(frame, opts))
}
