package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/AnyUserName/cardgen/internal/hasher"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/AnyUserName/cardgen/internal/render"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// template is a decoded ace together with its original bytes.
type template struct {
	Base
	img  image.Image
	data []byte
}

// loadTemplate reads and decodes one ace.
func loadTemplate(b Base) (*template, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(b.Path), err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(b.Path), err)
	}
	return &template{Base: b, img: img, data: data}, nil
}

// renderCard draws the rank label onto a copy of the suit's ace and writes
// card_<rank>_<suit>.png into the output directory.
func renderCard(c deck.Card, t *template, face font.Face, cfg Config, enc encoder.Encoder) (manifest.Card, error) {
	ink := cfg.Profile.Ink(c.Suit)
	img := render.Label(t.img, c.Label(), ink, face, cfg.Profile.Origin)

	data, err := enc.Encode(img, 0)
	if err != nil {
		return manifest.Card{}, fmt.Errorf("encode %s: %w", c.Key(), err)
	}
	if err := writeFileAtomic(filepath.Join(cfg.OutputDir, c.FileName()), data); err != nil {
		return manifest.Card{}, fmt.Errorf("write %s: %w", c.FileName(), err)
	}

	size := img.Bounds().Size()
	return manifest.Card{
		Suit:   string(c.Suit),
		Rank:   string(c.Rank),
		Label:  c.Label(),
		Color:  c.Suit.ColorName(),
		Path:   c.FileName(),
		Width:  size.X,
		Height: size.Y,
		Size:   int64(len(data)),
		Hash:   hasher.ContentHash(data, hasher.Len),
	}, nil
}

// baseEntry records an ace template, copying it into the output directory
// when copyTo is set.
func baseEntry(t *template, copyTo string) (manifest.Card, error) {
	c := deck.Card{Suit: t.Suit, Rank: deck.Ace}
	if copyTo != "" {
		if err := writeFileAtomic(filepath.Join(copyTo, c.FileName()), t.data); err != nil {
			return manifest.Card{}, fmt.Errorf("copy %s: %w", c.FileName(), err)
		}
	}
	size := t.img.Bounds().Size()
	return manifest.Card{
		Suit:   string(c.Suit),
		Rank:   string(c.Rank),
		Color:  c.Suit.ColorName(),
		Base:   true,
		Path:   c.FileName(),
		Width:  size.X,
		Height: size.Y,
		Size:   int64(len(t.data)),
		Hash:   hasher.ContentHash(t.data, hasher.Len),
	}, nil
}

// writeFileAtomic writes data to a temp file beside path, then renames it
// over path. Readers see either the old file or the complete new one.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".cardgen-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
