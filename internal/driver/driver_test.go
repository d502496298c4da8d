package driver

import (
	"math"
	"reflect"
	"testing"
	"time"

	"synthwave/internal/config"
	"synthwave/internal/stage"
)

type manualClock struct {
	now time.Duration
}

func (c *manualClock) Elapsed() time.Duration { return c.now }

type recorder struct {
	name  string
	log   *[]string
	sizes [][2]int
}

func (r *recorder) Render() { *r.log = append(*r.log, r.name) }

func (r *recorder) SetSize(w, h int) { r.sizes = append(r.sizes, [2]int{w, h}) }

func newTestDriver(t *testing.T, v config.Variant) (*Driver, *manualClock, *[]string, []*recorder) {
	t.Helper()
	st, err := stage.Build(v, config.DefaultPalette, 900, 600)
	if err != nil {
		t.Fatalf("stage.Build: %v", err)
	}
	var log []string
	recs := []*recorder{
		{name: "sun", log: &log},
		{name: "terrain", log: &log},
		{name: "final", log: &log},
	}
	clk := &manualClock{}
	d := New(st, clk, Composers{Sun: recs[0], Terrain: recs[1], Final: recs[2]})
	return d, clk, &log, recs
}

func TestTickRenderOrder(t *testing.T) {
	d, _, log, _ := newTestDriver(t, config.VariantIncremental)
	d.Tick()
	d.Tick()

	want := []string{"sun", "terrain", "final", "sun", "terrain", "final"}
	if !reflect.DeepEqual(*log, want) {
		t.Errorf("render order = %v, want %v", *log, want)
	}
	if d.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", d.Frames())
	}
}

func TestSunTimeFollowsClock(t *testing.T) {
	d, clk, _, _ := newTestDriver(t, config.VariantIncremental)

	prev := float32(-1)
	for i := 0; i < 200; i++ {
		clk.now += 16 * time.Millisecond
		d.Tick()
		got := d.stage.Sun.Material.Uniforms.Float(stage.UniformTime)
		if got != float32(clk.now.Seconds()) {
			t.Fatalf("frame %d: time uniform %f, want %f", i, got, clk.now.Seconds())
		}
		if got < prev {
			t.Fatalf("frame %d: time uniform went backwards %f -> %f", i, prev, got)
		}
		prev = got
	}
}

func checkPlanes(t *testing.T, d *Driver, frame int) {
	t.Helper()
	lo, hi := config.TileRange()
	p0 := float64(d.stage.Planes[0].Position.Z())
	p1 := float64(d.stage.Planes[1].Position.Z())
	for i, z := range []float64{p0, p1} {
		if z < lo || z >= hi {
			t.Fatalf("frame %d: plane %d z = %f outside [%f,%f)", frame, i, z, lo, hi)
		}
		if got := float64(d.stage.Planes[i].Material.Uniforms.Float(stage.UniformPos)); got != z {
			t.Fatalf("frame %d: plane %d pos uniform %f != z %f", frame, i, got, z)
		}
	}
	// one tile apart modulo the two-tile period
	gap := math.Mod(p0-p1+4*config.PlaneLength, 2*config.PlaneLength)
	if math.Abs(gap-config.PlaneLength) > 1e-5 {
		t.Fatalf("frame %d: planes %f and %f are not one tile apart (gap %f)", frame, p0, p1, gap)
	}
}

func TestIncrementalPlanesStayInRange(t *testing.T) {
	d, clk, _, _ := newTestDriver(t, config.VariantIncremental)
	for i := 0; i < 5000; i++ {
		clk.now += 7 * time.Millisecond
		d.Tick()
		checkPlanes(t, d, i)
	}
}

func TestAbsolutePlanesStayInRange(t *testing.T) {
	d, clk, _, _ := newTestDriver(t, config.VariantAbsolute)
	for i := 0; i < 5000; i++ {
		clk.now += 33 * time.Millisecond
		d.Tick()
		checkPlanes(t, d, i)

		want := math.Mod(clk.now.Seconds()*0.15, 2)
		if got := float64(d.stage.Planes[0].Position.Z()); math.Abs(got-want) > 1e-5 {
			t.Fatalf("frame %d: plane 0 z = %f, want %f", i, got, want)
		}
	}
}

func TestIncrementalMatchesPerFrameWrap(t *testing.T) {
	d, _, _, _ := newTestDriver(t, config.VariantIncremental)

	// reference: each plane accumulates its own z and wraps independently
	ref := []float64{0, -2}
	for i := 0; i < 2000; i++ {
		for j := range ref {
			ref[j] += config.PlaneStep
			if ref[j] >= 2 {
				ref[j] -= 2 * config.PlaneLength
			}
		}
		d.Tick()
		for j := range ref {
			got := float64(d.stage.Planes[j].Position.Z())
			// compare on the two-tile circle; -2 and 2 are the same seam
			diff := math.Mod(math.Abs(got-ref[j]), 2*config.PlaneLength)
			diff = math.Min(diff, 2*config.PlaneLength-diff)
			if diff > 1e-4 {
				t.Fatalf("frame %d plane %d: z = %f, reference %f", i, j, got, ref[j])
			}
		}
	}
}

func TestFrozenClockIsDeterministic(t *testing.T) {
	d, clk, _, _ := newTestDriver(t, config.VariantAbsolute)
	clk.now = 12345 * time.Millisecond

	d.Tick()
	first := d.stage.Planes[0].Material.Uniforms.Clone()
	sun := d.stage.Sun.Material.Uniforms.Clone()
	d.Tick()

	if !reflect.DeepEqual(first, d.stage.Planes[0].Material.Uniforms) {
		t.Errorf("plane uniforms changed with a frozen clock")
	}
	if !reflect.DeepEqual(sun, d.stage.Sun.Material.Uniforms) {
		t.Errorf("sun uniforms changed with a frozen clock")
	}
}

func TestResizeForwards(t *testing.T) {
	d, _, _, recs := newTestDriver(t, config.VariantIncremental)
	pos := d.stage.Cameras.Sun.Position

	d.Resize(1600, 900)
	for _, r := range recs {
		if len(r.sizes) != 1 || r.sizes[0] != [2]int{1600, 900} {
			t.Errorf("%s sizes = %v, want [[1600 900]]", r.name, r.sizes)
		}
	}
	for _, c := range d.stage.Cameras.All() {
		if math.Abs(float64(c.AspectRatio)-16.0/9.0) > 1e-6 {
			t.Errorf("aspect = %f, want %f", c.AspectRatio, 16.0/9.0)
		}
		if c.Position != pos {
			t.Errorf("camera moved to %v", c.Position)
		}
	}

	d.Resize(0, 0)
	for _, r := range recs {
		if len(r.sizes) != 1 {
			t.Errorf("%s resized on 0x0", r.name)
		}
	}
}

func TestWrapZ(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{1.5, 1.5},
		{2, -2},
		{-2, -2},
		{-2.5, 1.5},
		{6.25, -1.75},
	}
	for _, c := range cases {
		if got := WrapZ(c.in, 2); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("WrapZ(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestNewScrollStrategy(t *testing.T) {
	if _, ok := NewScrollStrategy(config.ScrollIncremental).(*IncrementalWrap); !ok {
		t.Errorf("incremental mode did not produce IncrementalWrap")
	}
	s := NewScrollStrategy(config.ScrollAbsolute)
	if _, ok := s.(*AbsoluteModulo); !ok {
		t.Errorf("absolute mode did not produce AbsoluteModulo")
	}
	if s.Name() != "absolute-modulo" {
		t.Errorf("Name = %q", s.Name())
	}
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(20 * time.Millisecond)
	for i := 0; i < 4; i++ {
		if got, want := c.Elapsed(), time.Duration(i)*20*time.Millisecond; got != want {
			t.Fatalf("reading %d = %v, want %v", i, got, want)
		}
	}
}
