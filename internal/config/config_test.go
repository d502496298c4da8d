package config

import (
	"math"
	"testing"
)

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("SetFPSLimit(-5) -> %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("SetFPSLimit(5000) -> %d, want 1000", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Errorf("SetFPSLimit(144) -> %d, want 144", got)
	}
}

func TestToggleStats(t *testing.T) {
	before := StatsEnabled()
	if got := ToggleStats(); got == before {
		t.Fatalf("ToggleStats returned %v, want %v", got, !before)
	}
	if got := ToggleStats(); got != before {
		t.Errorf("second ToggleStats returned %v, want %v", got, before)
	}
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("Absolute")
	if err != nil {
		t.Fatalf("VariantByName: %v", err)
	}
	if v.CameraZ != 1.1 || v.Scroll != ScrollAbsolute || v.PlaneOffset {
		t.Errorf("absolute preset mismatch: %+v", v)
	}

	v, err = VariantByName("incremental")
	if err != nil {
		t.Fatalf("VariantByName: %v", err)
	}
	if v.CameraZ != 1.0 || v.Scroll != ScrollIncremental || !v.PlaneOffset {
		t.Errorf("incremental preset mismatch: %+v", v)
	}

	if _, err := VariantByName("sideways"); err == nil {
		t.Errorf("expected error for unknown variant")
	}
}

func TestDefaultPaletteResolves(t *testing.T) {
	c, err := DefaultPalette.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := [3]float32{246.0 / 255, 185.0 / 255, 51.0 / 255}
	for i := range want {
		if math.Abs(float64(c.SunTop[i]-want[i])) > 1e-6 {
			t.Errorf("SunTop[%d] = %f, want %f", i, c.SunTop[i], want[i])
		}
	}
	if c.Mountain[3] != 1 {
		t.Errorf("Mountain alpha = %f, want 1", c.Mountain[3])
	}
}

func TestPaletteResolveError(t *testing.T) {
	p := DefaultPalette
	p.Road = "not-a-colour"
	if _, err := p.Resolve(); err == nil {
		t.Errorf("expected error for malformed road colour")
	}
}

func TestScrollModeString(t *testing.T) {
	if ScrollIncremental.String() != "incremental-wrap" {
		t.Errorf("got %q", ScrollIncremental.String())
	}
	if ScrollAbsolute.String() != "absolute-modulo" {
		t.Errorf("got %q", ScrollAbsolute.String())
	}
}
