package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func whiteCard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func testFace(t *testing.T) font.Face {
	t.Helper()
	f, err := glyph.Load("")
	require.NoError(t, err)
	face, err := f.Face(50, 72)
	require.NoError(t, err)
	t.Cleanup(func() { face.Close() })
	return face
}

func countInk(img *image.NRGBA, ink color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == ink {
				n++
			}
		}
	}
	return n
}

func TestLabelKeepsSizeAndBase(t *testing.T) {
	face := testFace(t)
	base := whiteCard(162, 252)

	out := Label(base, "queen", deck.Red, face, image.Pt(0, 0))

	assert.Equal(t, base.Bounds().Size(), out.Bounds().Size())
	assert.Zero(t, countInk(base, deck.Red), "base must not be modified")
	assert.Positive(t, countInk(out, deck.Red))
	assert.Zero(t, countInk(out, deck.Black))
}

func TestLabelStaysInLineBox(t *testing.T) {
	face := testFace(t)
	base := whiteCard(162, 252)
	out := Label(base, "10", deck.Black, face, image.Pt(0, 0))

	r := LabelBounds("10", face, image.Pt(0, 0), base.Bounds().Size())
	require.False(t, r.Empty())
	r = r.Inset(-1) // antialiasing may bleed one pixel

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image.Pt(x, y).In(r) {
				continue
			}
			if out.NRGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) changed outside label bounds %v", x, y, r)
			}
		}
	}
	assert.Positive(t, countInk(out, deck.Black))
}

func TestLabelOrigin(t *testing.T) {
	face := testFace(t)
	at := LabelBounds("2", face, image.Pt(20, 30), image.Pt(162, 252))
	base := LabelBounds("2", face, image.Pt(0, 0), image.Pt(162, 252))
	assert.Equal(t, base.Min.Add(image.Pt(20, 30)), at.Min)
}

func TestLabelOffsetBounds(t *testing.T) {
	face := testFace(t)
	base := image.NewNRGBA(image.Rect(10, 10, 60, 80))
	out := Label(base, "k", deck.Black, face, image.Pt(0, 0))
	assert.Equal(t, image.Pt(50, 70), out.Bounds().Size())
}
