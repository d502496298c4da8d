package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	css "github.com/mazznoer/csscolorparser"
)

// Window defaults
const (
	WinWidth  = 900
	WinHeight = 600
	WinTitle  = "synthwave"
)

// Camera pair. Both cameras share a position; only far plane and layer differ.
const (
	CameraFOV  = 75.0
	CameraNear = 0.01
	CameraY    = 0.06
	TerrainFar = 2.0
	SunFar     = 20.0
)

// Sun disc
const (
	SunRadius   = 2.0
	SunSegments = 128
	SunY        = 0.5
	SunZ        = -4.0
)

// Terrain planes
const (
	PlaneWidth    = 1.0
	PlaneLength   = 2.0 // one tile along z
	PlaneSegments = 24
	PlaneCount    = 2
	Cells         = 24
	MountainRange = 7
)

// Scroll speeds
const (
	PlaneStep     = 0.005 // per frame, incremental strategy
	PlaneVelocity = 0.15  // per second, absolute strategy
)

// Render layers
const (
	LayerTerrain = 0
	LayerSun     = 1
)

// ScrollMode selects how plane positions advance
type ScrollMode int

const (
	ScrollIncremental ScrollMode = iota // fixed step per frame, wrapped
	ScrollAbsolute                      // derived from elapsed time modulo tile length
)

func (m ScrollMode) String() string {
	switch m {
	case ScrollIncremental:
		return "incremental-wrap"
	case ScrollAbsolute:
		return "absolute-modulo"
	default:
		return fmt.Sprintf("ScrollMode(%d)", int(m))
	}
}

// Variant enumerates the differences between the two pipeline flavours.
type Variant struct {
	Name        string
	CameraZ     float32
	Scroll      ScrollMode
	PlaneOffset bool // planes carry an "offset" uniform so tiles get distinct noise
}

var (
	VariantIncremental = Variant{Name: "incremental", CameraZ: 1.0, Scroll: ScrollIncremental, PlaneOffset: true}
	VariantAbsolute    = Variant{Name: "absolute", CameraZ: 1.1, Scroll: ScrollAbsolute, PlaneOffset: false}
)

// Variants lists the presets in flag order
var Variants = []Variant{VariantIncremental, VariantAbsolute}

// VariantByName looks a preset up by name (case-insensitive)
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}

// BloomSettings are the per-branch bloom parameters
type BloomSettings struct {
	Strength  float32
	Radius    float32
	Threshold float32
}

var (
	TerrainBloom = BloomSettings{Strength: 3, Radius: 1, Threshold: 0}
	SunBloom     = BloomSettings{Strength: 1, Radius: 2, Threshold: 0}
)

// Palette holds the scene colours as CSS colour strings
type Palette struct {
	SunTop    string
	SunBottom string
	Road      string
	Mountain  string
}

var DefaultPalette = Palette{
	SunTop:    "#f6b933",
	SunBottom: "#e9425e",
	Road:      "#711c92",
	Mountain:  "#ea00d9",
}

// Colors is a Palette resolved to normalized RGBA
type Colors struct {
	SunTop    mgl32.Vec4
	SunBottom mgl32.Vec4
	Road      mgl32.Vec4
	Mountain  mgl32.Vec4
}

// Resolve parses every colour of the palette
func (p Palette) Resolve() (Colors, error) {
	var c Colors
	fields := []struct {
		name string
		src  string
		dst  *mgl32.Vec4
	}{
		{"sun top", p.SunTop, &c.SunTop},
		{"sun bottom", p.SunBottom, &c.SunBottom},
		{"road", p.Road, &c.Road},
		{"mountain", p.Mountain, &c.Mountain},
	}
	for _, f := range fields {
		v, err := ParseColor(f.src)
		if err != nil {
			return Colors{}, fmt.Errorf("%s colour: %w", f.name, err)
		}
		*f.dst = v
	}
	return c, nil
}

// ParseColor converts any CSS colour string into a normalized RGBA vector
func ParseColor(str string) (mgl32.Vec4, error) {
	c, err := css.Parse(str)
	if err != nil {
		return mgl32.Vec4{}, err
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}, nil
}

// TileRange returns the half-open interval every plane z-position lives in
func TileRange() (lo, hi float64) {
	return -PlaneLength, PlaneLength
}

// CameraPosition returns the shared camera position for a variant
func (v Variant) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3{0, CameraY, v.CameraZ}
}

// HalfPi is used for the plane rotation
const HalfPi = math.Pi * 0.5
