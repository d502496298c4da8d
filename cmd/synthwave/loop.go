package main

import (
	"time"

	"synthwave/internal/config"
	"synthwave/internal/driver"
	"synthwave/internal/input"
	"synthwave/internal/logger"
	"synthwave/internal/pipeline"
	"synthwave/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Loop drives the window: one pipeline tick per swap
type Loop struct {
	window     *glfw.Window
	pipeline   *pipeline.Pipeline
	input      *input.Manager
	fpsLimiter *driver.FPSLimiter
	shotDir    string

	frames           int
	lastFPSCheckTime time.Time
}

// NewLoop creates the main loop
func NewLoop(window *glfw.Window, p *pipeline.Pipeline, im *input.Manager, shotDir string) *Loop {
	return &Loop{
		window:           window,
		pipeline:         p,
		input:            im,
		fpsLimiter:       driver.NewFPSLimiter(),
		shotDir:          shotDir,
		lastFPSCheckTime: time.Now(),
	}
}

// Run blocks until the window closes or quit is pressed
func (l *Loop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *Loop) tick() {
	profiling.ResetFrame()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	l.handleActions()

	l.pipeline.Tick()

	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
	l.input.PostUpdate()

	l.frames++
	if time.Since(l.lastFPSCheckTime) >= time.Second {
		l.reportStats()
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}

	l.fpsLimiter.Wait()
}

func (l *Loop) handleActions() {
	if l.input.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}
	if l.input.JustPressed(input.ActionToggleStats) {
		logger.Log.Info("stats", zap.Bool("enabled", config.ToggleStats()))
	}
	if l.input.JustPressed(input.ActionToggleGlitch) {
		l.pipeline.SetGlitchWild(!l.pipeline.GlitchWild())
	}
	if l.input.JustPressed(input.ActionScreenshot) {
		path, err := l.pipeline.SaveSnapshot(l.shotDir)
		if err != nil {
			logger.Log.Error("screenshot failed", zap.Error(err))
			return
		}
		logger.Log.Info("screenshot saved", zap.String("path", path))
	}
}

func (l *Loop) reportStats() {
	totals := profiling.Drain()
	if !config.StatsEnabled() {
		return
	}
	w, h := l.pipeline.Size()
	logger.Log.Info("FPS",
		zap.Int("fps", l.frames),
		zap.Uint64("frame", l.pipeline.Driver.Frames()),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.String("top", profiling.TopN(totals, 4)))
}
