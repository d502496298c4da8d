// Package merge holds the final compositor pass. It combines the terrain and
// sun branch outputs with the background gradient.
package merge

import (
	"synthwave/internal/graphics"
	renderer "synthwave/internal/graphics/renderer"
	"synthwave/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	quadVert  = "shaders/common/fullscreen.vert"
	mergeFrag = "shaders/merge/merge.frag"
)

// Source exposes the latest image of a branch
type Source interface {
	Output() *graphics.RenderTarget
}

// Merge samples both branches each frame. The sources are read through
// Output so ping-pong swaps inside the branches are followed.
type Merge struct {
	programs *graphics.Programs
	terrain  Source
	sun      Source
	shader   *graphics.Shader
}

// New creates the merge pass
func New(programs *graphics.Programs, terrain, sun Source) *Merge {
	return &Merge{programs: programs, terrain: terrain, sun: sun}
}

func (m *Merge) Init() error {
	var err error
	m.shader, err = m.programs.Get("merge", graphics.ProgramSource{Vertex: quadVert, Fragment: mergeFrag})
	return err
}

func (m *Merge) Render(ctx renderer.RenderContext) {
	defer profiling.Track("pass.Merge")()

	ctx.Bind()
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	m.shader.Use()
	m.shader.SetSampler("bloomTexture", 0, m.terrain.Output().Texture)
	m.shader.SetSampler("glitchTexture", 1, m.sun.Output().Texture)
	ctx.Quad.Draw()
}

func (m *Merge) SetViewport(width, height int) {}

func (m *Merge) NeedsSwap() bool { return true }

func (m *Merge) Dispose() {}
