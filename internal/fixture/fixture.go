// Package fixture writes synthetic ace templates for tests and smoke runs.
package fixture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/deck"
)

// CardWidth and CardHeight match the original 162x252 card assets.
const (
	CardWidth  = 162
	CardHeight = 252
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Ace draws a white card with a grey border and a centred pip in the suit
// colour, loosely mimicking a real ace.
func Ace(s deck.Suit, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	border := color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
	pip := s.Color()
	cx, cy, r := w/2, h/2, min(w, h)/6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := white
			switch {
			case x < 2 || x >= w-2 || y < 2 || y >= h-2:
				c = border
			case (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r:
				c = pip
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// WriteBases writes card_ace_<suit>.png for every suit into dir.
func WriteBases(dir string, w, h int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, s := range deck.Suits() {
		if err := WritePNG(filepath.Join(dir, deck.BaseFileName(s)), Ace(s, w, h)); err != nil {
			return fmt.Errorf("write %s base: %w", s, err)
		}
	}
	return nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
