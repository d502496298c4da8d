package terrain

import (
	"math"
	"math/rand"
	"testing"
)

var grid = Grid{Cells: 24, MountainRange: 7}

func TestCNoiseZeroOnLattice(t *testing.T) {
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				if n := CNoise(float64(x), float64(y), float64(z)); math.Abs(n) > 1e-9 {
					t.Fatalf("CNoise(%d,%d,%d) = %f, want 0", x, y, z, n)
				}
			}
		}
	}
}

func TestCNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	nonZero := 0
	for i := 0; i < 5000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100
		n := CNoise(x, y, z)
		if math.Abs(n) > 1.5 {
			t.Errorf("CNoise(%f, %f, %f) = %f, expected |n| <= 1.5", x, y, z, n)
		}
		if math.Abs(n) > 1e-3 {
			nonZero++
		}
	}
	if nonZero < 4000 {
		t.Errorf("only %d of 5000 samples were non-zero", nonZero)
	}
}

func TestCNoiseContinuity(t *testing.T) {
	v1 := CNoise(1.3, 2.7, 23)
	v2 := CNoise(1.31, 2.7, 23)
	if diff := math.Abs(v1 - v2); diff >= 0.1 {
		t.Errorf("CNoise not continuous: %f vs %f, diff %f", v1, v2, diff)
	}
}

func TestIsRoad(t *testing.T) {
	cases := []struct {
		u    float64
		want bool
	}{
		{0, false},
		{7.0 / 24, false},
		{0.3, true},
		{0.5, true},
		{0.7, true},
		{17.0 / 24, false},
		{1, false},
	}
	for _, c := range cases {
		if got := grid.IsRoad(c.u); got != c.want {
			t.Errorf("IsRoad(%f) = %v, want %v", c.u, got, c.want)
		}
	}
}

func TestHeightRoadIsFlat(t *testing.T) {
	for v := 0.0; v <= 1; v += 1.0 / 24 {
		if h := grid.Height(0.5, v, 0, 1.5); h != 0 {
			t.Errorf("road height at v=%f is %f", v, h)
		}
	}
}

func TestHeightMountainsRiseWithPos(t *testing.T) {
	u, v := 2.5/24, 0.3
	near := grid.Height(u, v, 0, 1.9)
	far := grid.Height(u, v, 0, -1.0)
	if near < 0 {
		t.Errorf("height near the camera %f < 0", near)
	}
	if far > near {
		t.Errorf("far height %f above near height %f", far, near)
	}
}

func TestHeightOffsetContinuesNoise(t *testing.T) {
	// the top row of tile 0 meets the bottom row of tile 1
	u := 1.5 / 24
	a := grid.Height(u, 1, 0, 0)
	b := grid.Height(u, 0, 1, 0)
	na := a / Falloff(1, 0)
	nb := b / Falloff(0, 0)
	if math.Abs(na-nb) > 1e-9 {
		t.Errorf("noise at the seam differs: %f vs %f", na, nb)
	}
}
