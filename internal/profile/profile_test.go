package profile

import (
	"image"
	"testing"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestClassicMatchesGenerator(t *testing.T) {
	p := Get("classic")
	assert.Equal(t, 50.0, p.FontSize)
	assert.Equal(t, image.Pt(0, 0), p.Origin)
	assert.Equal(t, 72, p.DPI)
}

func TestUnknownFallsBack(t *testing.T) {
	p := Get("poster")
	assert.Equal(t, "poster", p.Name)
	assert.Equal(t, 50.0, p.FontSize)
	assert.False(t, Known("poster"))

	assert.Equal(t, DefaultName, Get("").Name)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "inset", "large"}, Names())
}

func TestInk(t *testing.T) {
	p := Get(DefaultName)
	assert.Equal(t, deck.Red, p.Ink(deck.Hearts))
	assert.Equal(t, deck.Black, p.Ink(deck.Clubs))
}
