package profile

import (
	"image"
	"image/color"
	"sort"

	"github.com/AnyUserName/cardgen/internal/deck"
)

// DefaultName is the profile used when none is requested.
const DefaultName = "classic"

// Profile defines how rank labels are drawn onto the ace templates.
type Profile struct {
	Name     string
	FontSize float64     // points
	Origin   image.Point // top-left corner of the label's line box
	DPI      int         // used for glyph scaling and written into the PNG pHYs chunk
}

// Built-in profiles.
var profiles = map[string]Profile{
	// Matches the original asset generator: 50pt mono label in the top-left corner.
	"classic": {
		Name:     "classic",
		FontSize: 50,
		Origin:   image.Pt(0, 0),
		DPI:      72,
	},
	"inset": {
		Name:     "inset",
		FontSize: 44,
		Origin:   image.Pt(10, 8),
		DPI:      72,
	},
	"large": {
		Name:     "large",
		FontSize: 64,
		Origin:   image.Pt(6, 4),
		DPI:      72,
	},
}

// Get returns a profile by name. Falls back to classic if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	if name != "" {
		p.Name = name // preserve requested name
	}
	return p
}

// Names lists the built-in profiles in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Ink returns the label colour for a suit.
func (p Profile) Ink(s deck.Suit) color.NRGBA {
	return s.Color()
}
