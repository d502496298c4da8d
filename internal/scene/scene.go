package scene

import "github.com/go-gl/mathgl/mgl32"

// Layers is a bit mask of render layers. An object is drawn by a camera when
// their masks share a bit.
type Layers uint32

// LayerMask returns a mask with only layer n enabled
func LayerMask(n int) Layers {
	return Layers(1) << uint(n)
}

// Test reports whether two masks share a layer
func (l Layers) Test(other Layers) bool {
	return l&other != 0
}

// Material names the shader program a mesh is drawn with and carries its uniforms
type Material struct {
	Program  string
	Uniforms *Uniforms
}

// Clone copies the material with an independent uniform set
func (m *Material) Clone() *Material {
	return &Material{Program: m.Program, Uniforms: m.Uniforms.Clone()}
}

// Mesh is a drawable object: geometry, material, transform and layer
type Mesh struct {
	Name     string
	Geometry *Geometry
	Material *Material
	Layers   Layers
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
}

// ModelMatrix returns translation * rotation
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(m.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(m.Rotation[2]))
	return mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2]).Mul4(rot)
}

// Clone shares the geometry and copies everything else
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Material = m.Material.Clone()
	return &c
}

// Scene is the set of meshes shared by every camera
type Scene struct {
	meshes []*Mesh
}

func New() *Scene {
	return &Scene{}
}

// Add appends meshes in draw order
func (s *Scene) Add(ms ...*Mesh) {
	s.meshes = append(s.meshes, ms...)
}

// Meshes returns all meshes in draw order
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Visible returns the meshes a camera with the given mask sees
func (s *Scene) Visible(mask Layers) []*Mesh {
	out := make([]*Mesh, 0, len(s.meshes))
	for _, m := range s.meshes {
		if m.Layers.Test(mask) {
			out = append(out, m)
		}
	}
	return out
}
