package effects

import (
	"math"
	"math/rand"
)

// Glitch constants
const (
	GlitchColumnSpread = 0.05 // col_s: height of a displaced band
	GlitchMapSize      = 64   // displacement texture edge
	glitchMinCycle     = 120
	glitchMaxCycle     = 240
)

// GlitchState is the uniform block of one glitch frame
type GlitchState struct {
	Bypass      bool
	Amount      float32 // RGB split distance
	Angle       float32 // RGB split direction
	Seed        float32
	SeedX       float32
	SeedY       float32
	DistortionX float32
	DistortionY float32
}

// Glitcher schedules glitch bursts. Every cycle (randomly 120-240 frames) it
// emits one strong frame, then mild frames for the first fifth of the cycle
// (measured in fractional frames, so a 181-frame cycle glitches through frame
// 36), then bypasses until the next cycle.
type Glitcher struct {
	GoWild bool // glitch every frame

	rng   *rand.Rand
	frame int
	cycle int
	state GlitchState
}

// NewGlitcher creates a scheduler with a deterministic random source
func NewGlitcher(seed int64) *Glitcher {
	g := &Glitcher{rng: rand.New(rand.NewSource(seed))}
	g.newCycle()
	return g
}

func (g *Glitcher) newCycle() {
	g.cycle = glitchMinCycle + g.rng.Intn(glitchMaxCycle-glitchMinCycle+1)
}

func (g *Glitcher) between(lo, hi float64) float32 {
	return float32(lo + g.rng.Float64()*(hi-lo))
}

// Next advances one frame and returns its uniforms
func (g *Glitcher) Next() GlitchState {
	s := &g.state
	s.Seed = float32(g.rng.Float64())
	s.Bypass = false

	switch {
	case g.frame%g.cycle == 0 || g.GoWild:
		s.Amount = float32(g.rng.Float64() / 30)
		s.Angle = g.between(-math.Pi, math.Pi)
		s.SeedX = g.between(-1, 1)
		s.SeedY = g.between(-1, 1)
		s.DistortionX = g.between(0, 1)
		s.DistortionY = g.between(0, 1)
		g.frame = 0
		g.newCycle()
	case float64(g.frame%g.cycle) < float64(g.cycle)/5:
		s.Amount = float32(g.rng.Float64() / 90)
		s.Angle = g.between(-math.Pi, math.Pi)
		s.DistortionX = g.between(0, 1)
		s.DistortionY = g.between(0, 1)
		s.SeedX = g.between(-0.3, 0.3)
		s.SeedY = g.between(-0.3, 0.3)
	default:
		s.Bypass = true
	}
	g.frame++
	return *s
}

// Cycle returns the length of the current burst cycle in frames
func (g *Glitcher) Cycle() int { return g.cycle }

// DisplacementMap returns size×size random values in [0,1) for the
// single-channel displacement texture.
func (g *Glitcher) DisplacementMap(size int) []float32 {
	out := make([]float32, size*size)
	for i := range out {
		out[i] = g.rng.Float32()
	}
	return out
}
