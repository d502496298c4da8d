package config

import "sync"

// RenderSettings holds the few knobs that can change while running
type RenderSettings struct {
	mu        sync.RWMutex
	fpsLimit  int // 0 = uncapped
	showStats bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 0, // vsync paces the loop by default
}

// GetFPSLimit returns the current frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// StatsEnabled reports whether the once-a-second stats line is logged
func StatsEnabled() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showStats
}

// ToggleStats flips stats logging and returns the new state
func ToggleStats() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showStats = !globalRenderSettings.showStats
	return globalRenderSettings.showStats
}
