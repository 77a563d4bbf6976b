// Package codec turns piece codes into ordered visual layers.
//
// The layer order and the {color}_{piece} token names are shared with the
// offline stylesheet generator, so a square's layers always resolve to the
// selector and image names it emits.
package codec

import (
	"fmt"
	"strings"

	"hybridchess/types"
)

// Layer is one image to stack on a square.
type Layer struct {
	White bool
	Piece types.PieceType
}

// Color returns "white" or "black".
func (l Layer) Color() string {
	return colorName(l.White)
}

// Token returns the asset token, e.g. "white_king".
func (l Layer) Token() string {
	return l.Color() + "_" + l.Piece.Name()
}

func (l Layer) String() string {
	return l.Token()
}

func colorName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

// Decode returns the layers for code in canonical type order. Bits outside
// the six piece types produce no layer and are returned as unknown so the
// caller can record them.
func Decode(code types.PieceCode, white bool) (layers []Layer, unknown types.PieceCode) {
	if code == 0 {
		return nil, 0
	}
	layers = make([]Layer, 0, code.Count())
	for _, t := range types.PieceTypes {
		if code.Has(t) {
			layers = append(layers, Layer{White: white, Piece: t})
		}
	}
	return layers, code.Unknown()
}

// IsHybrid reports whether a square with these layers is a hybrid piece.
func IsHybrid(layers []Layer) bool {
	return len(layers) >= 2
}

// ClassNames returns the markup classes the generator keys a square by:
// piece-{color} followed by the piece names, plus "hybrid" for two or more.
func ClassNames(code types.PieceCode, white bool) []string {
	layers, _ := Decode(code, white)
	if len(layers) == 0 {
		return nil
	}
	classes := []string{"piece-" + colorName(white)}
	for _, l := range layers {
		classes = append(classes, l.Piece.Name())
	}
	if IsHybrid(layers) {
		classes = append(classes, "hybrid")
	}
	return classes
}

// Combinations lists every non-empty subset of the piece types in generator
// order: by subset size, then lexicographically by canonical index.
func Combinations() []types.PieceCode {
	n := len(types.PieceTypes)
	out := make([]types.PieceCode, 0, 1<<n-1)
	for size := 1; size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			var code types.PieceCode
			for _, i := range idx {
				code |= types.PieceTypes[i].Bit()
			}
			out = append(out, code)

			// advance to the next combination
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
	return out
}

// StyleRule renders the stylesheet rule the generator emits for one subset
// and colour.
func StyleRule(code types.PieceCode, white bool) string {
	layers, _ := Decode(code, white)
	var sel strings.Builder
	urls := make([]string, 0, len(layers))
	sel.WriteString("td.piece-" + colorName(white))
	for _, l := range layers {
		sel.WriteString("." + l.Piece.Name())
		urls = append(urls, fmt.Sprintf("url(\"images/%s.svg\")", l.Token()))
	}
	return fmt.Sprintf("%s{background-image:%s;}", sel.String(), strings.Join(urls, ","))
}
