// Package render draws the meshes a camera can see into the composer's
// read target.
package render

import (
	"fmt"

	"synthwave/internal/graphics"
	renderer "synthwave/internal/graphics/renderer"
	"synthwave/internal/profiling"
	"synthwave/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ScenePass renders one layer-filtered view of a scene
type ScenePass struct {
	name     string
	scene    *scene.Scene
	camera   *scene.Camera
	programs *graphics.Programs
	sources  map[string]graphics.ProgramSource

	meshes  map[*scene.Geometry]*graphics.GPUMesh
	shaders map[string]*graphics.Shader
}

// New creates a pass for camera over s. sources maps material program names
// to shader files.
func New(name string, s *scene.Scene, camera *scene.Camera, programs *graphics.Programs, sources map[string]graphics.ProgramSource) *ScenePass {
	return &ScenePass{
		name:     name,
		scene:    s,
		camera:   camera,
		programs: programs,
		sources:  sources,
		meshes:   make(map[*scene.Geometry]*graphics.GPUMesh),
		shaders:  make(map[string]*graphics.Shader),
	}
}

// Init compiles the programs and uploads the geometry of every visible mesh.
// Clones share geometry, so each is uploaded once.
func (p *ScenePass) Init() error {
	for _, m := range p.scene.Visible(p.camera.Layers) {
		prog := m.Material.Program
		if _, ok := p.shaders[prog]; !ok {
			src, ok := p.sources[prog]
			if !ok {
				return fmt.Errorf("mesh %s: unknown program %q", m.Name, prog)
			}
			s, err := p.programs.Get(prog, src)
			if err != nil {
				return fmt.Errorf("mesh %s: %w", m.Name, err)
			}
			p.shaders[prog] = s
		}
		if _, ok := p.meshes[m.Geometry]; !ok {
			p.meshes[m.Geometry] = graphics.UploadGeometry(m.Geometry)
		}
	}
	return nil
}

// Render clears to transparent black and draws the visible meshes
func (p *ScenePass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("pass.Scene." + p.name)()

	if ctx.ToScreen {
		graphics.BindScreen(ctx.Width, ctx.Height)
	} else {
		ctx.Output().Bind()
	}

	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)

	view := p.camera.GetViewMatrix()
	projection := p.camera.GetProjectionMatrix()

	for _, m := range p.scene.Visible(p.camera.Layers) {
		s, ok := p.shaders[m.Material.Program]
		gm := p.meshes[m.Geometry]
		if !ok || gm == nil {
			continue
		}
		modelView := view.Mul4(m.ModelMatrix())

		s.Use()
		s.SetMatrix4("projectionMatrix", &projection[0])
		s.SetMatrix4("modelViewMatrix", &modelView[0])
		s.ApplyUniforms(m.Material.Uniforms)
		gm.Draw()
	}

	gl.Disable(gl.DEPTH_TEST)
}

// SetViewport is a no-op; the camera pair owns the aspect ratio
func (p *ScenePass) SetViewport(width, height int) {}

// NeedsSwap is false: the scene is drawn into the read target
func (p *ScenePass) NeedsSwap() bool { return false }

// Dispose releases uploaded geometry. Programs belong to the shared cache.
func (p *ScenePass) Dispose() {
	for g, m := range p.meshes {
		m.Dispose()
		delete(p.meshes, g)
	}
}
