// Package verify checks a generated deck directory: every card is present,
// matches its ace in size, and carries a label in the right suit colour.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/AnyUserName/cardgen/internal/hasher"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/disintegration/imaging"
)

// Options selects optional checks.
type Options struct {
	// DPI, when positive, is the density every rendered card must declare.
	DPI int
	// SkipManifest ignores cardgen.manifest.json even if present.
	SkipManifest bool
}

// Report lists everything found wrong with a deck directory.
type Report struct {
	Checked  int
	Manifest bool // a manifest was found and cross-checked
	Problems []string
}

// OK reports whether no problems were found.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) addf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

type loaded struct {
	img  *image.NRGBA
	data []byte
}

// Check inspects dir. The returned error is reserved for failures to read
// the directory itself; deck defects go into the report.
func Check(dir string, opts Options) (*Report, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("deck dir: %w", err)
	}

	r := &Report{}
	files := make(map[string]*loaded)

	for _, c := range deck.Full() {
		l, err := load(filepath.Join(dir, c.FileName()))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			r.addf("%s: missing", c.FileName())
			continue
		case err != nil:
			r.addf("%s: %v", c.FileName(), err)
			continue
		}
		files[c.Key()] = l
		r.Checked++
	}

	for _, c := range deck.Rendered() {
		l := files[c.Key()]
		base := files[deck.Card{Suit: c.Suit, Rank: deck.Ace}.Key()]
		if l == nil || base == nil {
			continue
		}
		checkCard(r, c, l, base, opts)
	}

	if !opts.SkipManifest {
		checkManifest(r, dir, files)
	}
	return r, nil
}

func load(path string) (*loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &loaded{img: imaging.Clone(img), data: data}, nil
}

func checkCard(r *Report, c deck.Card, l, base *loaded, opts Options) {
	name := c.FileName()
	got, want := l.img.Bounds().Size(), base.img.Bounds().Size()
	if got != want {
		r.addf("%s: size %dx%d, base is %dx%d", name, got.X, got.Y, want.X, want.Y)
		return
	}

	if opts.DPI > 0 {
		x, y, ok := encoder.ReadDPI(l.data)
		switch {
		case !ok:
			r.addf("%s: no DPI metadata", name)
		case x != opts.DPI || y != opts.DPI:
			r.addf("%s: DPI %dx%d, want %d", name, x, y, opts.DPI)
		}
	}

	ink := c.Suit.Color()
	wrong := deck.Red
	if c.Suit.Red() {
		wrong = deck.Black
	}
	changed, inked, miscoloured := inkStats(l.img, base.img, ink, wrong)
	switch {
	case changed == 0:
		r.addf("%s: identical to its base, no label drawn", name)
	case inked == 0:
		r.addf("%s: label has no %s ink", name, c.Suit.ColorName())
	case miscoloured > 0:
		r.addf("%s: %d label pixels in the wrong suit colour", name, miscoloured)
	}
}

// inkStats compares a card against its base. It counts pixels that differ,
// those exactly equal to ink, and those exactly equal to wrong.
func inkStats(card, base *image.NRGBA, ink, wrong color.NRGBA) (changed, inked, miscoloured int) {
	b := card.Bounds()
	bb := base.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := card.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if px == base.NRGBAAt(bb.Min.X+x, bb.Min.Y+y) {
				continue
			}
			changed++
			switch px {
			case ink:
				inked++
			case wrong:
				miscoloured++
			}
		}
	}
	return changed, inked, miscoloured
}

func checkManifest(r *Report, dir string, files map[string]*loaded) {
	m, err := manifest.ReadJSON(filepath.Join(dir, manifest.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		r.addf("%s: %v", manifest.FileName, err)
		return
	}
	r.Manifest = true

	if m.Version != manifest.SupportedManifestVersion {
		r.addf("%s: unsupported version %d", manifest.FileName, m.Version)
	}
	for _, c := range deck.Full() {
		entry, ok := m.Cards[c.Key()]
		if !ok {
			r.addf("%s: not listed in manifest", c.FileName())
			continue
		}
		l := files[c.Key()]
		if l == nil {
			continue
		}
		if entry.Size != int64(len(l.data)) {
			r.addf("%s: size mismatch: manifest=%d, disk=%d", c.FileName(), entry.Size, len(l.data))
		}
		if h := hasher.ContentHash(l.data, hasher.Len); entry.Hash != h {
			r.addf("%s: hash mismatch: manifest=%s, disk=%s", c.FileName(), entry.Hash, h)
		}
	}
	if len(m.Cards) != len(deck.Full()) {
		r.addf("%s: %d cards listed, want %d", manifest.FileName, len(m.Cards), len(deck.Full()))
	}
}
