package driver

import (
	"time"

	"synthwave/internal/config"
	"synthwave/internal/profiling"
	"synthwave/internal/stage"
)

// Composer renders one branch of the frame
type Composer interface {
	Render()
}

// Resizer is implemented by composers that own size-dependent targets
type Resizer interface {
	SetSize(width, height int)
}

// Composers are the three render chains in the order they run each frame
type Composers struct {
	Sun     Composer
	Terrain Composer
	Final   Composer
}

// Driver advances the animation one frame per Tick. It has a single running
// state; the host stops calling Tick to end it.
type Driver struct {
	stage     *stage.Stage
	clock     Clock
	scroll    ScrollStrategy
	composers Composers

	frames  uint64
	elapsed time.Duration
	dist    float64
}

// New creates a driver for a built stage
func New(st *stage.Stage, clock Clock, composers Composers) *Driver {
	return &Driver{
		stage:     st,
		clock:     clock,
		scroll:    NewScrollStrategy(st.Variant.Scroll),
		composers: composers,
	}
}

// Tick updates uniforms and transforms, then renders sun, terrain and final
// composers in that order.
func (d *Driver) Tick() {
	d.Update()

	func() { defer profiling.Track("composer.Sun")(); d.composers.Sun.Render() }()
	func() { defer profiling.Track("composer.Terrain")(); d.composers.Terrain.Render() }()
	func() { defer profiling.Track("composer.Final")(); d.composers.Final.Render() }()
}

// Update applies one frame of state changes without rendering
func (d *Driver) Update() {
	defer profiling.Track("driver.Update")()

	d.elapsed = d.clock.Elapsed()
	d.stage.Sun.Material.Uniforms.SetFloat(stage.UniformTime, float32(d.elapsed.Seconds()))

	d.dist = d.scroll.Advance(d.elapsed)
	for i, p := range d.stage.Planes {
		z := float32(PlaneZ(d.dist, i, config.PlaneLength))
		if z >= config.PlaneLength {
			// float32 rounding landed on the open end
			z -= 2 * config.PlaneLength
		}
		p.Position[2] = z
		p.Material.Uniforms.SetFloat(stage.UniformPos, z)
	}
	d.frames++
}

// Resize forwards a new surface size to cameras and composers
func (d *Driver) Resize(width, height int) {
	if !d.stage.Cameras.Resize(width, height) {
		return
	}
	for _, c := range []Composer{d.composers.Sun, d.composers.Terrain, d.composers.Final} {
		if r, ok := c.(Resizer); ok {
			r.SetSize(width, height)
		}
	}
}

// Frames returns the number of completed updates
func (d *Driver) Frames() uint64 { return d.frames }

// Elapsed returns the clock reading sampled by the last update
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

// Strategy returns the scroll strategy in use
func (d *Driver) Strategy() ScrollStrategy { return d.scroll }
