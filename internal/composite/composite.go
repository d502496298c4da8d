// Package composite is the CPU form of the final merge shader. It is used to
// build screenshots from read-back branch targets and keeps the blend rule
// testable without a GL context.
package composite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Gradient end points painted behind non-opaque pixels
var (
	GradientBottom = mgl32.Vec4{0.3, 0, 0.3, 1}
	GradientTop    = mgl32.Vec4{0, 0, 0.3, 1}
)

// gradientSpan scales v so the top colour is never fully reached
const gradientSpan = 0.8

// Background returns the fallback gradient at vertical coordinate v (0 = bottom)
func Background(v float32) mgl32.Vec4 {
	return mix(GradientBottom, GradientTop, v*gradientSpan)
}

// Blend merges a terrain texel and a sun texel at vertical coordinate v.
// The sun wins where the terrain is not opaque and the sun has coverage;
// any result that is still not opaque gets the gradient added under it.
func Blend(terrain, sun mgl32.Vec4, v float32) mgl32.Vec4 {
	res := terrain
	if terrain[3] < 1 && sun[3] > 0 {
		res = sun
	}
	if res[3] != 1 {
		return Background(v).Add(res)
	}
	return res
}

func mix(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Image blends two equally sized branch images into an opaque-or-not RGBA
// image. Both inputs use the GL convention of row 0 at the bottom; the result
// is flipped so row 0 is the top, ready for encoding.
func Image(terrain, sun *image.NRGBA) (*image.NRGBA, error) {
	b := terrain.Bounds()
	if b.Size() != sun.Bounds().Size() {
		return nil, fmt.Errorf("size mismatch: terrain %v, sun %v", b.Size(), sun.Bounds().Size())
	}
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if h == 0 || w == 0 {
		return out, nil
	}

	for y := 0; y < h; y++ {
		// texel centre, as the shader samples it
		v := (float32(y) + 0.5) / float32(h)
		for x := 0; x < w; x++ {
			t := toVec(terrain.NRGBAAt(b.Min.X+x, b.Min.Y+y))
			s := toVec(sun.NRGBAAt(sun.Bounds().Min.X+x, sun.Bounds().Min.Y+y))
			out.SetNRGBA(x, h-1-y, fromVec(Blend(t, s, v)))
		}
	}
	return out, nil
}

func toVec(c color.NRGBA) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func fromVec(v mgl32.Vec4) color.NRGBA {
	return color.NRGBA{R: unit8(v[0]), G: unit8(v[1]), B: unit8(v[2]), A: unit8(v[3])}
}

// unit8 clamps like a UNORM framebuffer write
func unit8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
