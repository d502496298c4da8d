// Package glitch implements the digital glitch pass on the sun branch
package glitch

import (
	"synthwave/internal/effects"
	"synthwave/internal/graphics"
	renderer "synthwave/internal/graphics/renderer"
	"synthwave/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	quadVert   = "shaders/common/fullscreen.vert"
	glitchFrag = "shaders/glitch/glitch.frag"
)

// Glitch displaces bands of the image and splits its colour channels in
// bursts scheduled by an effects.Glitcher.
type Glitch struct {
	programs *graphics.Programs
	glitcher *effects.Glitcher
	shader   *graphics.Shader
	dispMap  uint32
}

// New creates the pass around a scheduler
func New(programs *graphics.Programs, glitcher *effects.Glitcher) *Glitch {
	return &Glitch{programs: programs, glitcher: glitcher}
}

// Init compiles the shader and uploads the displacement texture
func (g *Glitch) Init() error {
	var err error
	g.shader, err = g.programs.Get("glitch", graphics.ProgramSource{Vertex: quadVert, Fragment: glitchFrag})
	if err != nil {
		return err
	}
	g.dispMap = graphics.NewDataTexture(g.glitcher.DisplacementMap(effects.GlitchMapSize), effects.GlitchMapSize)
	return nil
}

// Render advances the scheduler one frame and writes the glitched image
func (g *Glitch) Render(ctx renderer.RenderContext) {
	defer profiling.Track("pass.Glitch")()

	st := g.glitcher.Next()

	ctx.Bind()
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s := g.shader
	s.Use()
	s.SetSampler("tDiffuse", 0, ctx.Read.Texture)
	s.SetSampler("tDisp", 1, g.dispMap)
	s.SetBool("byp", st.Bypass)
	s.SetFloat("amount", st.Amount)
	s.SetFloat("angle", st.Angle)
	s.SetFloat("seed", st.Seed)
	s.SetFloat("seed_x", st.SeedX)
	s.SetFloat("seed_y", st.SeedY)
	s.SetFloat("distortion_x", st.DistortionX)
	s.SetFloat("distortion_y", st.DistortionY)
	s.SetFloat("col_s", effects.GlitchColumnSpread)
	ctx.Quad.Draw()
}

// SetViewport is a no-op; the pass samples in normalised coordinates
func (g *Glitch) SetViewport(width, height int) {}

// NeedsSwap is true: the result lands in the write target
func (g *Glitch) NeedsSwap() bool { return true }

// Dispose releases the displacement texture
func (g *Glitch) Dispose() {
	graphics.DeleteTexture(&g.dispMap)
}
