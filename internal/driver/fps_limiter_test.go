package driver

import (
	"testing"
	"time"

	"synthwave/internal/config"
)

func withFPSLimit(t *testing.T, limit int) {
	t.Helper()
	prev := config.GetFPSLimit()
	config.SetFPSLimit(limit)
	t.Cleanup(func() { config.SetFPSLimit(prev) })
}

func TestFPSLimiterUnlimited(t *testing.T) {
	withFPSLimit(t, 0)
	f := NewFPSLimiter()

	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed > 20*time.Millisecond {
		t.Fatalf("unlimited Wait blocked for %v", elapsed)
	}
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	withFPSLimit(t, 100)
	f := NewFPSLimiter()

	start := time.Now()
	for i := 0; i < 10; i++ {
		f.Wait()
	}
	elapsed := time.Since(start)
	if elapsed < 95*time.Millisecond {
		t.Fatalf("10 frames at 100 fps took %v, want >= 100ms", elapsed)
	}
	if elapsed > time.Second {
		t.Fatalf("10 frames at 100 fps took %v", elapsed)
	}
}

func TestFPSLimiterFollowsLimitChanges(t *testing.T) {
	withFPSLimit(t, 50)
	f := NewFPSLimiter()
	f.Wait()

	config.SetFPSLimit(0)
	start := time.Now()
	f.Wait()
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Fatalf("Wait after lifting the cap blocked for %v", elapsed)
	}
	if !f.next.IsZero() {
		t.Fatal("lifting the cap should reset the frame schedule")
	}
}
