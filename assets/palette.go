package assets

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"hybridchess/config"
	"hybridchess/view"
)

// Palette is the parsed form of config.ImageColors.
type Palette struct {
	Light, Dark            color.Color
	Selected, Available    color.Color
	PrevMove, Check        color.Color
	CheckMove              color.Color
	WhitePiece, BlackPiece color.Color
}

// PaletteFrom parses the hex colours in c.
func PaletteFrom(c config.ImageColors) (Palette, error) {
	var p Palette
	fields := []struct {
		hex string
		dst *color.Color
	}{
		{c.Light, &p.Light},
		{c.Dark, &p.Dark},
		{c.Selected, &p.Selected},
		{c.Available, &p.Available},
		{c.PrevMove, &p.PrevMove},
		{c.Check, &p.Check},
		{c.CheckMove, &p.CheckMove},
		{c.WhitePiece, &p.WhitePiece},
		{c.BlackPiece, &p.BlackPiece},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, err
		}
		r, g, b := col.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// Square returns the fill colour of sv. Selection wins over check, check
// over available, available over a check move, and a check move over the
// previous move.
func (p Palette) Square(sv view.SquareView) color.Color {
	switch {
	case sv.Selected:
		return p.Selected
	case sv.Check:
		return p.Check
	case sv.Available:
		return p.Available
	case sv.CheckMove:
		return p.CheckMove
	case sv.PrevMove:
		return p.PrevMove
	case sv.Shade == view.Dark:
		return p.Dark
	}
	return p.Light
}

// Piece returns the letter colour for a side.
func (p Palette) Piece(white bool) color.Color {
	if white {
		return p.WhitePiece
	}
	return p.BlackPiece
}
