// Package assets loads piece images and colours for the image front ends.
package assets

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"hybridchess/codec"
	"hybridchess/logx"
	"hybridchess/types"
)

// Set holds one image per coloured piece, keyed by layer token.
type Set struct {
	images map[string]image.Image
}

// Load reads {color}_{piece}.png for every piece from dir. Missing files are
// skipped so callers fall back to letters; unreadable files are errors.
func Load(dir string, log logx.Logger) (*Set, error) {
	if log == nil {
		log = logx.Nop()
	}
	set := &Set{images: make(map[string]image.Image)}
	if dir == "" {
		return set, nil
	}
	for _, white := range []bool{true, false} {
		for _, t := range types.PieceTypes {
			token := codec.Layer{White: white, Piece: t}.Token()
			path := filepath.Join(dir, token+".png")
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				log.Debugf("no image for %s at %s", token, path)
				continue
			}
			img, err := gg.LoadImage(path)
			if err != nil {
				return nil, err
			}
			set.images[token] = img
		}
	}
	log.Infof("loaded %d piece images from %s", len(set.images), dir)
	return set, nil
}

// Image returns the image for l, false when none was loaded.
func (s *Set) Image(l codec.Layer) (image.Image, bool) {
	if s == nil {
		return nil, false
	}
	img, ok := s.images[l.Token()]
	return img, ok
}

// Len returns the number of loaded images.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}

var letters = map[types.PieceType]string{
	types.King:   "K",
	types.Queen:  "Q",
	types.Rook:   "R",
	types.Bishop: "B",
	types.Knight: "N",
	types.Pawn:   "P",
}

// Letter returns the fallback letter for l, upper case for white.
func Letter(l codec.Layer) string {
	if !l.White {
		return strings.ToLower(letters[l.Piece])
	}
	return letters[l.Piece]
}

// Letters joins the fallback letters of layers in order.
func Letters(layers []codec.Layer) string {
	var b strings.Builder
	for _, l := range layers {
		b.WriteString(Letter(l))
	}
	return b.String()
}
