package composite

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionPadding = 4

// Caption stamps text in the top-left corner of img over a translucent
// backing strip. Text that does not fit is clipped by the image bounds.
func Caption(img draw.Image, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	height := (m.Ascent + m.Descent).Ceil()

	b := img.Bounds()
	strip := image.Rect(b.Min.X, b.Min.Y, b.Min.X+width+2*captionPadding, b.Min.Y+height+2*captionPadding).Intersect(b)
	draw.Draw(img, strip, image.NewUniform(color.NRGBA{A: 160}), image.Point{}, draw.Over)

	d.Dot = fixed.Point26_6{
		X: fixed.I(b.Min.X + captionPadding),
		Y: fixed.I(b.Min.Y+captionPadding) + m.Ascent,
	}
	d.DrawString(text)
}
