// Package glyph loads the label font.
package glyph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// EmbeddedName identifies the built-in fallback font in manifests and logs.
const EmbeddedName = "embedded:gomono"

// Font is a parsed TrueType/OpenType font.
type Font struct {
	Name string
	ot   *opentype.Font
}

// Load parses the font at path. An empty path selects the embedded Go Mono.
// Collections (.ttc, .otc) use their first face.
func Load(path string) (*Font, error) {
	if path == "" {
		ot, err := opentype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		return &Font{Name: EmbeddedName, ot: ot}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	ot, err := parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Font{Name: path, ot: ot}, nil
}

func parse(data []byte, ext string) (*opentype.Font, error) {
	if ext != ".ttc" && ext != ".otc" {
		return opentype.Parse(data)
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("empty font collection")
	}
	return coll.Font(0)
}

// Face returns a hinted face at the given point size and DPI.
// Callers must Close it.
func (f *Font) Face(size float64, dpi int) (font.Face, error) {
	face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
