package composite

import (
	"image"
	"image/color"
	"testing"
)

func TestCaptionDrawsInCorner(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 50))
	fill(img, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	Caption(img, "frame 42")

	bright := 0
	for y := 0; y < 25; y++ {
		for x := 0; x < 80; x++ {
			if c := img.NRGBAAt(x, y); c.R > 200 && c.G > 200 && c.B > 200 {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Errorf("no text pixels in the caption area")
	}
	if got := img.NRGBAAt(199, 49); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("far corner changed to %v", got)
	}
}

func TestCaptionEmptyIsNoop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Caption(img, "")
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("byte %d = %d after empty caption", i, v)
		}
	}
}

func TestCaptionClipsOnTinyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	Caption(img, "a long caption that cannot fit")
}
