package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"synthwave/internal/config"
	"synthwave/internal/input"
	"synthwave/internal/logger"
	"synthwave/internal/pipeline"

	"github.com/go-gl/glfw/v3.3/glfw"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	variant    string
	fps        int
	vsync      bool
	seed       int64
	debug      bool
	shotDir    string
	wildGlitch bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.variant, "variant", config.VariantIncremental.Name, "scene variant: incremental or absolute")
	flag.IntVar(&o.fps, "fps", 0, "frame rate cap when vsync is off (0 = uncapped)")
	flag.BoolVar(&o.vsync, "vsync", true, "wait for vertical sync on swap")
	flag.Int64Var(&o.seed, "seed", 1, "glitch scheduler seed")
	flag.BoolVar(&o.debug, "debug", false, "development logging")
	flag.StringVar(&o.shotDir, "shots", ".", "directory for F12 screenshots")
	flag.BoolVar(&o.wildGlitch, "wild", false, "glitch the sun every frame")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()

	if err := logger.Init(o.debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	// flush buffered log entries when interrupted
	closer.Bind(func() {
		logger.Log.Info("interrupted")
		logger.Sync()
	})

	if err := run(o); err != nil {
		logger.Log.Error("synthwave stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(o options) error {
	variant, err := config.VariantByName(o.variant)
	if err != nil {
		return err
	}
	config.SetFPSLimit(o.fps)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(o.vsync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	// Size the pipeline from the real framebuffer, which differs from the
	// window size on HiDPI displays.
	fbw, fbh := window.GetFramebufferSize()
	p, err := pipeline.New(pipeline.Options{
		Variant: variant,
		Palette: config.DefaultPalette,
		Width:   fbw,
		Height:  fbh,
		Seed:    o.seed,
	})
	if err != nil {
		return err
	}
	defer p.Dispose()
	p.SetGlitchWild(o.wildGlitch)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		p.Resize(width, height)
	})

	im := input.NewManager()
	im.Attach(window)

	NewLoop(window, p, im, o.shotDir).Run()
	return nil
}
