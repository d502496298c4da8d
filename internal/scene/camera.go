package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
	Position    mgl32.Vec3
	Layers      Layers

	projection mgl32.Mat4
}

func NewCamera(fov float32, width, height int, near, far float32) *Camera {
	c := &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         fov,
		NearPlane:   near,
		FarPlane:    far,
		Layers:      LayerMask(0),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the cached projection after a parameter change
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// GetViewMatrix returns the inverse of the camera's world transform. The
// cameras never rotate so this is a plain translation.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
}

// SetViewport updates the aspect ratio for a new surface size. A zero
// dimension (minimised window) is ignored.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.AspectRatio = float32(width) / float32(height)
	c.UpdateProjectionMatrix()
	return true
}
