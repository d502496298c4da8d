// Package bloom implements the mip-chain bloom: a luminosity high pass, a
// separable Gaussian blur per mip and a weighted composite added back onto
// the input.
package bloom

import (
	"fmt"
	"strconv"

	"synthwave/internal/config"
	"synthwave/internal/effects"
	"synthwave/internal/graphics"
	renderer "synthwave/internal/graphics/renderer"
	"synthwave/internal/logger"
	"synthwave/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	quadVert      = "shaders/common/fullscreen.vert"
	highPassFrag  = "shaders/bloom/highpass.frag"
	blurFrag      = "shaders/bloom/blur.frag"
	compositeFrag = "shaders/bloom/composite.frag"
	copyFrag      = "shaders/copy/copy.frag"
)

// Bloom is a non-swapping pass: it adds the glow onto the read target in place
type Bloom struct {
	name     string
	settings config.BloomSettings
	programs *graphics.Programs

	highPass  *graphics.Shader
	blur      [effects.BloomMips]*graphics.Shader
	composite *graphics.Shader
	copy      *graphics.Shader

	mips *effects.MipChain[*graphics.RenderTarget]

	coefficients [effects.BloomMips][]float32
	weights      [effects.BloomMips]float32
	tints        []mgl32.Vec3
}

// New creates a bloom pass with fixed strength, radius and threshold
func New(name string, settings config.BloomSettings, programs *graphics.Programs) *Bloom {
	b := &Bloom{
		name:     name,
		settings: settings,
		programs: programs,
		weights:  effects.CompositeWeights(settings.Strength, settings.Radius),
	}
	for i, r := range effects.BloomKernelRadii {
		b.coefficients[i] = effects.GaussianCoefficients(r)
	}
	b.tints = make([]mgl32.Vec3, effects.BloomMips)
	for i := range b.tints {
		b.tints[i] = mgl32.Vec3{1, 1, 1}
	}
	return b
}

// Init compiles the shaders and allocates the mip chain at 1×1; the composer
// sizes it right after.
func (b *Bloom) Init() error {
	var err error
	if b.highPass, err = b.programs.Get("bloom.highpass", graphics.ProgramSource{Vertex: quadVert, Fragment: highPassFrag}); err != nil {
		return err
	}
	for i, r := range effects.BloomKernelRadii {
		key := "bloom.blur." + strconv.Itoa(r)
		src := graphics.ProgramSource{
			Vertex:   quadVert,
			Fragment: blurFrag,
			Defines:  map[string]string{"KERNEL_RADIUS": strconv.Itoa(r)},
		}
		if b.blur[i], err = b.programs.Get(key, src); err != nil {
			return err
		}
	}
	if b.composite, err = b.programs.Get("bloom.composite", graphics.ProgramSource{Vertex: quadVert, Fragment: compositeFrag}); err != nil {
		return err
	}
	if b.copy, err = b.programs.Get("copy", graphics.ProgramSource{Vertex: quadVert, Fragment: copyFrag}); err != nil {
		return err
	}

	b.mips, err = effects.NewMipChain(func() (*graphics.RenderTarget, error) {
		return graphics.NewRenderTarget(1, 1, false)
	})
	if err != nil {
		return fmt.Errorf("bloom %s: %w", b.name, err)
	}
	return nil
}

// SetViewport resizes the mip chain for a full-resolution surface
func (b *Bloom) SetViewport(width, height int) {
	if err := b.mips.Resize(width, height); err != nil {
		logger.Log.Error("resize bloom mips", zap.String("bloom", b.name), zap.Error(err))
	}
}

// Render runs high pass, blur chain and composite, then adds the result onto
// the read target, or onto the screen when presenting.
func (b *Bloom) Render(ctx renderer.RenderContext) {
	defer profiling.Track("pass.Bloom." + b.name)()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	// 1. extract bright regions
	b.mips.Bright.Bind()
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	b.highPass.Use()
	b.highPass.SetSampler("tDiffuse", 0, ctx.Read.Texture)
	b.highPass.SetVector3("defaultColor", 0, 0, 0)
	b.highPass.SetFloat("defaultOpacity", 0)
	b.highPass.SetFloat("luminosityThreshold", b.settings.Threshold)
	b.highPass.SetFloat("smoothWidth", effects.HighPassSmoothWidth)
	ctx.Quad.Draw()

	// 2. blur each mip, feeding the previous level's result forward
	input := b.mips.Bright
	for i := 0; i < effects.BloomMips; i++ {
		s := b.blur[i]
		s.Use()
		s.SetFloats("gaussianCoefficients", b.coefficients[i])

		h := b.mips.Horizontal[i]
		h.Bind()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		s.SetSampler("colorTexture", 0, input.Texture)
		s.SetVector2("invSize", 1/float32(h.Width), 1/float32(h.Height))
		s.SetVector2("direction", 1, 0)
		ctx.Quad.Draw()

		v := b.mips.Vertical[i]
		v.Bind()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		s.SetSampler("colorTexture", 0, h.Texture)
		s.SetVector2("direction", 0, 1)
		ctx.Quad.Draw()

		input = v
	}

	// 3. weighted sum of all mips into the first horizontal target
	out := b.mips.Horizontal[0]
	out.Bind()
	gl.Clear(gl.COLOR_BUFFER_BIT)
	b.composite.Use()
	for i := 0; i < effects.BloomMips; i++ {
		b.composite.SetSampler("blurTexture"+strconv.Itoa(i+1), uint32(i), b.mips.Vertical[i].Texture)
	}
	b.composite.SetFloats("bloomWeights", b.weights[:])
	b.composite.SetVector3s("bloomTintColors", b.tints)
	ctx.Quad.Draw()

	// 4. add onto the input
	b.copy.Use()
	b.copy.SetFloat("opacity", 1)
	if ctx.ToScreen {
		graphics.BindScreen(ctx.Width, ctx.Height)
		b.copy.SetSampler("tDiffuse", 0, ctx.Read.Texture)
		ctx.Quad.Draw()
	} else {
		ctx.Read.Bind()
	}
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	b.copy.SetSampler("tDiffuse", 0, out.Texture)
	ctx.Quad.Draw()
	gl.Disable(gl.BLEND)
}

// NeedsSwap is false: bloom writes back into the read target
func (b *Bloom) NeedsSwap() bool { return false }

// Dispose releases the mip chain. Programs belong to the shared cache.
func (b *Bloom) Dispose() {
	if b.mips != nil {
		b.mips.Dispose()
		b.mips = nil
	}
}
