// Command synthwave-still renders a fixed number of frames offscreen with a
// fixed time step and writes the last one as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"synthwave/internal/capture"
	"synthwave/internal/config"
	"synthwave/internal/driver"
	"synthwave/internal/logger"
	"synthwave/internal/pipeline"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	variant := flag.String("variant", config.VariantIncremental.Name, "scene variant: incremental or absolute")
	frames := flag.Int("frames", 120, "frames to simulate before capturing")
	step := flag.Duration("step", time.Second/60, "clock step per frame")
	width := flag.Int("width", config.WinWidth, "image width")
	height := flag.Int("height", config.WinHeight, "image height")
	seed := flag.Int64("seed", 1, "glitch scheduler seed")
	out := flag.String("out", ".", "output directory")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	// flush buffered log entries when interrupted
	closer.Bind(func() {
		logger.Log.Info("interrupted")
		logger.Sync()
	})

	path, err := render(*variant, *frames, *step, *width, *height, *seed, *out)
	if err != nil {
		logger.Log.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Log.Info("still written", zap.String("path", path))
}

func render(name string, frames int, step time.Duration, width, height int, seed int64, out string) (string, error) {
	variant, err := config.VariantByName(name)
	if err != nil {
		return "", err
	}
	if frames < 1 || width < 1 || height < 1 {
		return "", fmt.Errorf("frames and size must be positive")
	}

	if err := glfw.Init(); err != nil {
		return "", fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, config.WinTitle, nil, nil)
	if err != nil {
		return "", fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("gl init: %w", err)
	}

	p, err := pipeline.New(pipeline.Options{
		Variant: variant,
		Palette: config.DefaultPalette,
		Width:   width,
		Height:  height,
		Seed:    seed,
		Clock:   driver.NewStepClock(step),
	})
	if err != nil {
		return "", err
	}
	defer p.Dispose()

	start := time.Now()
	for i := 0; i < frames; i++ {
		p.Tick()
	}
	gl.Finish()
	logger.Log.Info("rendered",
		zap.Int("frames", frames),
		zap.Duration("took", time.Since(start)),
		zap.String("scroll", p.Driver.Strategy().Name()))

	img, err := p.Snapshot(fmt.Sprintf("%s  frame %d", variant.Name, frames))
	if err != nil {
		return "", err
	}
	return capture.Save(out, img, time.Now())
}
