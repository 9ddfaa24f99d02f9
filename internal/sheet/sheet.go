// Package sheet lays a generated deck out on a single contact sheet.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/disintegration/imaging"
)

// Options controls the sheet layout.
type Options struct {
	CardWidth  int         // width of each thumbnail; 0 keeps the source width
	Gap        int         // pixels between and around cards
	Background color.Color // nil means card-table green
}

var defaultBackground = color.NRGBA{R: 0x2e, G: 0x6b, B: 0x3a, A: 0xff}

// Compose builds a 13x4 grid: one row per suit, ace first.
func Compose(dir string, opts Options) (*image.NRGBA, error) {
	if opts.Background == nil {
		opts.Background = defaultBackground
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}

	suits, ranks := deck.Suits(), deck.Ranks()
	var cellW, cellH int
	thumbs := make([][]image.Image, len(suits))

	for row, s := range suits {
		thumbs[row] = make([]image.Image, len(ranks))
		for col, r := range ranks {
			c := deck.Card{Suit: s, Rank: r}
			img, err := imaging.Open(filepath.Join(dir, c.FileName()))
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", c.FileName(), err)
			}
			if opts.CardWidth > 0 && img.Bounds().Dx() != opts.CardWidth {
				img = imaging.Resize(img, opts.CardWidth, 0, imaging.Lanczos)
			}
			cellW = max(cellW, img.Bounds().Dx())
			cellH = max(cellH, img.Bounds().Dy())
			thumbs[row][col] = img
		}
	}

	g := opts.Gap
	w := len(ranks)*(cellW+g) + g
	h := len(suits)*(cellH+g) + g
	canvas := imaging.New(w, h, opts.Background)

	for row := range thumbs {
		for col, img := range thumbs[row] {
			pt := image.Pt(g+col*(cellW+g), g+row*(cellH+g))
			canvas = imaging.Paste(canvas, img, pt)
		}
	}
	return canvas, nil
}

// Write encodes the sheet by the extension of path (png or jpeg).
func Write(img image.Image, path string, reg *encoder.Registry, quality int) error {
	enc, err := reg.ForPath(path)
	if err != nil {
		return err
	}
	data, err := enc.Encode(img, quality)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}
