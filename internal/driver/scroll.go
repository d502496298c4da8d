package driver

import (
	"math"
	"time"

	"synthwave/internal/config"
)

// ScrollStrategy produces the scroll distance of the lead plane for a frame.
// Each plane's z-position is derived from it with WrapZ.
type ScrollStrategy interface {
	Advance(elapsed time.Duration) float64
	Name() string
}

// IncrementalWrap moves the planes a fixed step every frame regardless of
// elapsed time, so scroll speed follows the frame rate.
type IncrementalWrap struct {
	Step   float64
	Period float64 // distance after which the pattern repeats
	dist   float64
}

func (s *IncrementalWrap) Advance(time.Duration) float64 {
	s.dist += s.Step
	if s.dist >= s.Period {
		s.dist -= s.Period
	}
	return s.dist
}

func (s *IncrementalWrap) Name() string { return config.ScrollIncremental.String() }

// AbsoluteModulo derives the scroll distance from elapsed time, so the speed
// is independent of the frame rate.
type AbsoluteModulo struct {
	Velocity float64 // units per second
	Tile     float64
}

func (s *AbsoluteModulo) Advance(elapsed time.Duration) float64 {
	d := math.Mod(elapsed.Seconds()*s.Velocity, s.Tile)
	if d < 0 {
		d += s.Tile
	}
	return d
}

func (s *AbsoluteModulo) Name() string { return config.ScrollAbsolute.String() }

// NewScrollStrategy returns the strategy for a scroll mode
func NewScrollStrategy(mode config.ScrollMode) ScrollStrategy {
	switch mode {
	case config.ScrollAbsolute:
		return &AbsoluteModulo{Velocity: config.PlaneVelocity, Tile: config.PlaneLength}
	default:
		return &IncrementalWrap{Step: config.PlaneStep, Period: config.PlaneCount * config.PlaneLength}
	}
}

// WrapZ folds z into [-tile, tile). Two planes one tile apart then always
// cover the strip in front of the camera without a gap.
func WrapZ(z, tile float64) float64 {
	period := 2 * tile
	w := z - period*math.Floor((z+tile)/period)
	// guard against rounding pushing w onto the open end
	if w >= tile {
		w -= period
	} else if w < -tile {
		w += period
	}
	return w
}

// PlaneZ returns the z-position of plane i for a scroll distance
func PlaneZ(dist float64, i int, tile float64) float64 {
	return WrapZ(dist-float64(i)*tile, tile)
}
