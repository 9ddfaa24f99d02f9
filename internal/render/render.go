// Package render draws rank labels onto card templates.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Label returns a copy of base with text drawn in ink. origin is the
// top-left corner of the text's line box: the baseline sits one ascent
// below it. base is left untouched and the result has the same size.
func Label(base image.Image, text string, ink color.Color, face font.Face, origin image.Point) *image.NRGBA {
	dst := imaging.Clone(base)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X),
			Y: fixed.I(origin.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
	return dst
}

// LabelBounds returns the pixel rectangle Label would touch for text,
// clipped to size.
func LabelBounds(text string, face font.Face, origin image.Point, size image.Point) image.Rectangle {
	dot := fixed.Point26_6{
		X: fixed.I(origin.X),
		Y: fixed.I(origin.Y) + face.Metrics().Ascent,
	}
	b, _ := font.BoundString(face, text)
	r := image.Rect(
		(dot.X + b.Min.X).Floor(), (dot.Y + b.Min.Y).Floor(),
		(dot.X + b.Max.X).Ceil(), (dot.Y + b.Max.Y).Ceil(),
	)
	return r.Intersect(image.Rectangle{Max: size})
}
