// Package pipeline owns every piece of a running background: the stage, the
// three composers, the shader cache and the animation driver.
package pipeline

import (
	"fmt"
	"image"
	"time"

	"synthwave/assets"
	"synthwave/internal/capture"
	"synthwave/internal/composite"
	"synthwave/internal/config"
	"synthwave/internal/driver"
	"synthwave/internal/effects"
	"synthwave/internal/graphics"
	"synthwave/internal/graphics/passes/bloom"
	"synthwave/internal/graphics/passes/glitch"
	"synthwave/internal/graphics/passes/merge"
	"synthwave/internal/graphics/passes/render"
	renderer "synthwave/internal/graphics/renderer"
	"synthwave/internal/logger"
	"synthwave/internal/stage"

	"go.uber.org/zap"
)

// Material shader files by program name
var MaterialSources = map[string]graphics.ProgramSource{
	stage.ProgramSun: {
		Vertex:   "shaders/sun/sun.vert",
		Fragment: "shaders/sun/sun.frag",
	},
	stage.ProgramTerrain: {
		Vertex:   "shaders/terrain/terrain.vert",
		Fragment: "shaders/terrain/terrain.frag",
	},
}

// Options configure a pipeline
type Options struct {
	Variant config.Variant
	Palette config.Palette
	Width   int
	Height  int
	Seed    int64 // glitch scheduler seed
	Clock   driver.Clock
}

// Pipeline is the owning context of one animated background. It requires a
// current GL context on the calling thread.
type Pipeline struct {
	Stage  *stage.Stage
	Driver *driver.Driver

	programs *graphics.Programs
	quad     *graphics.Quad
	glitcher *effects.Glitcher
	sun      *renderer.Composer
	terrain  *renderer.Composer
	final    *renderer.Composer

	width  int
	height int
}

// New builds the stage, compiles shaders and wires the composers
func New(opts Options) (*Pipeline, error) {
	st, err := stage.Build(opts.Variant, opts.Palette, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = driver.NewClock()
	}

	p := &Pipeline{
		Stage:    st,
		programs: graphics.NewPrograms(assets.Shaders),
		quad:     graphics.NewQuad(),
		glitcher: effects.NewGlitcher(opts.Seed),
		width:    opts.Width,
		height:   opts.Height,
	}

	cams := st.Cameras
	if p.sun, err = p.newComposer("sun",
		render.New("sun", st.Scene, cams.Sun, p.programs, MaterialSources),
		bloom.New("sun", config.SunBloom, p.programs),
		glitch.New(p.programs, p.glitcher),
	); err != nil {
		p.Dispose()
		return nil, err
	}

	if p.terrain, err = p.newComposer("terrain",
		render.New("terrain", st.Scene, cams.Terrain, p.programs, MaterialSources),
		bloom.New("terrain", config.TerrainBloom, p.programs),
	); err != nil {
		p.Dispose()
		return nil, err
	}

	if p.final, err = p.newComposer("final", merge.New(p.programs, p.terrain, p.sun)); err != nil {
		p.Dispose()
		return nil, err
	}
	p.final.SetRenderToScreen(true)

	p.Driver = driver.New(st, clock, driver.Composers{Sun: p.sun, Terrain: p.terrain, Final: p.final})

	for _, plane := range st.Planes {
		logger.Log.Debug("terrain relief", zap.String("plane", plane.Name), zap.Float64("peak", stage.PeakHeight(plane)))
	}

	logger.Log.Info("pipeline ready",
		zap.String("variant", opts.Variant.Name),
		zap.String("scroll", p.Driver.Strategy().Name()),
		zap.Float32("cameraZ", opts.Variant.CameraZ),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height))
	return p, nil
}

func (p *Pipeline) newComposer(name string, passes ...renderer.Pass) (*renderer.Composer, error) {
	c, err := renderer.NewComposer(name, p.width, p.height, p.quad)
	if err != nil {
		return nil, fmt.Errorf("%s composer: %w", name, err)
	}
	for _, pass := range passes {
		if err := c.AddPass(pass); err != nil {
			c.Dispose()
			return nil, fmt.Errorf("%s composer: %w", name, err)
		}
	}
	return c, nil
}

// Tick advances and renders one frame
func (p *Pipeline) Tick() {
	p.Driver.Tick()
}

// Resize applies a new framebuffer size; a zero dimension is ignored
func (p *Pipeline) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width, p.height = width, height
	p.Driver.Resize(width, height)
	logger.Log.Debug("resize", zap.Int("width", width), zap.Int("height", height))
}

// SetGlitchWild makes the sun glitch every frame
func (p *Pipeline) SetGlitchWild(on bool) {
	p.glitcher.GoWild = on
}

// GlitchWild reports whether continuous glitching is on
func (p *Pipeline) GlitchWild() bool {
	return p.glitcher.GoWild
}

// Snapshot composites the latest branch outputs on the CPU and stamps caption
// in the corner.
func (p *Pipeline) Snapshot(caption string) (*image.NRGBA, error) {
	img, err := composite.Image(p.terrain.Output().ReadNRGBA(), p.sun.Output().ReadNRGBA())
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	composite.Caption(img, caption)
	return img, nil
}

// SaveSnapshot writes a captioned snapshot into dir
func (p *Pipeline) SaveSnapshot(dir string) (string, error) {
	caption := fmt.Sprintf("%s  frame %d  t=%.2fs", p.Stage.Variant.Name, p.Driver.Frames(), p.Driver.Elapsed().Seconds())
	img, err := p.Snapshot(caption)
	if err != nil {
		return "", err
	}
	return capture.Save(dir, img, time.Now())
}

// Size returns the current framebuffer size
func (p *Pipeline) Size() (int, int) {
	return p.width, p.height
}

// Dispose releases every GL object the pipeline created
func (p *Pipeline) Dispose() {
	for _, c := range []*renderer.Composer{p.final, p.terrain, p.sun} {
		if c != nil {
			c.Dispose()
		}
	}
	p.quad.Dispose()
	p.programs.Dispose()
}
