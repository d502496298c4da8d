package stage

import (
	"math"
	"testing"

	"synthwave/internal/config"
	"synthwave/internal/scene"
)

func TestBuildIncremental(t *testing.T) {
	s, err := Build(config.VariantIncremental, config.DefaultPalette, 900, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Planes) != config.PlaneCount {
		t.Fatalf("len(Planes) = %d, want %d", len(s.Planes), config.PlaneCount)
	}
	if got := len(s.Scene.Meshes()); got != 1+config.PlaneCount {
		t.Errorf("scene has %d meshes, want %d", got, 1+config.PlaneCount)
	}

	if s.Sun.Position.Z() != -4 || s.Sun.Position.Y() != 0.5 {
		t.Errorf("sun at %v, want (0,0.5,-4)", s.Sun.Position)
	}
	if !s.Sun.Layers.Test(scene.LayerMask(config.LayerSun)) {
		t.Errorf("sun not on sun layer")
	}

	for i, p := range s.Planes {
		if !p.Layers.Test(scene.LayerMask(config.LayerTerrain)) {
			t.Errorf("plane %d not on terrain layer", i)
		}
		if want := -float32(i) * config.PlaneLength; p.Position.Z() != want {
			t.Errorf("plane %d z = %f, want %f", i, p.Position.Z(), want)
		}
		if got := p.Material.Uniforms.Float(UniformOffset); got != float32(i) {
			t.Errorf("plane %d offset = %f, want %d", i, got, i)
		}
		if p.Material.Uniforms.Float(UniformCells) != 24 {
			t.Errorf("plane %d cells = %f, want 24", i, p.Material.Uniforms.Float(UniformCells))
		}
		if p.Material.Uniforms.Float(UniformMountainRange) != 7 {
			t.Errorf("plane %d mountainRange = %f, want 7", i, p.Material.Uniforms.Float(UniformMountainRange))
		}
	}
	if s.Planes[0].Material == s.Planes[1].Material {
		t.Errorf("planes share a material")
	}
}

func TestBuildAbsoluteHasNoOffset(t *testing.T) {
	s, err := Build(config.VariantAbsolute, config.DefaultPalette, 900, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, p := range s.Planes {
		if p.Material.Uniforms.Has(UniformOffset) {
			t.Errorf("plane %d carries an offset uniform", i)
		}
	}
	if s.Cameras.Terrain.Position.Z() != 1.1 {
		t.Errorf("camera z = %f, want 1.1", s.Cameras.Terrain.Position.Z())
	}
}

func TestBuildBadPalette(t *testing.T) {
	p := config.DefaultPalette
	p.SunTop = "#zzzzzz"
	if _, err := Build(config.VariantIncremental, p, 900, 600); err == nil {
		t.Errorf("expected error for malformed palette")
	}
}

func TestCameraPair(t *testing.T) {
	pair := NewCameraPair(config.VariantIncremental, 900, 600)

	if pair.Terrain.FarPlane != 2 || pair.Sun.FarPlane != 20 {
		t.Errorf("far planes = %f/%f, want 2/20", pair.Terrain.FarPlane, pair.Sun.FarPlane)
	}
	if pair.Terrain.Position != pair.Sun.Position {
		t.Errorf("cameras do not share a position")
	}
	if pair.Terrain.Layers.Test(pair.Sun.Layers) {
		t.Errorf("camera layer masks overlap")
	}
}

func TestCameraPairResize(t *testing.T) {
	pair := NewCameraPair(config.VariantAbsolute, 900, 600)
	pos := pair.Terrain.Position

	if !pair.Resize(1280, 720) {
		t.Fatalf("Resize rejected a valid size")
	}
	for _, c := range pair.All() {
		if math.Abs(float64(c.AspectRatio)-1280.0/720.0) > 1e-6 {
			t.Errorf("aspect = %f, want %f", c.AspectRatio, 1280.0/720.0)
		}
		if c.Position != pos {
			t.Errorf("position moved to %v", c.Position)
		}
	}
	if pair.Terrain.FarPlane != 2 || pair.Sun.FarPlane != 20 {
		t.Errorf("far planes changed on resize")
	}

	if pair.Resize(0, 0) {
		t.Errorf("Resize accepted 0x0")
	}
}

func TestPlaneHeightsRoadFlat(t *testing.T) {
	st, err := Build(config.VariantIncremental, config.DefaultPalette, 900, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, p := range st.Planes {
		hs := PlaneHeights(p, 1)
		if len(hs) != p.Geometry.VertexCount() {
			t.Fatalf("%s: %d heights for %d vertices", p.Name, len(hs), p.Geometry.VertexCount())
		}
		for i, h := range hs {
			u := p.Geometry.UVs[i*2]
			if TerrainGrid.IsRoad(float64(u)) && h != 0 {
				t.Errorf("%s vertex %d on the road has height %f", p.Name, i, h)
			}
		}
	}
}

func TestPeakHeightBelowTerrainFar(t *testing.T) {
	for _, v := range config.Variants {
		st, err := Build(v, config.DefaultPalette, 900, 600)
		if err != nil {
			t.Fatalf("Build(%s): %v", v.Name, err)
		}
		for _, p := range st.Planes {
			peak := PeakHeight(p)
			if peak <= 0 {
				t.Errorf("%s/%s: no mountains (peak %f)", v.Name, p.Name, peak)
			}
			if peak >= config.TerrainFar {
				t.Errorf("%s/%s: peak %f reaches the terrain far plane", v.Name, p.Name, peak)
			}
		}
	}
}
