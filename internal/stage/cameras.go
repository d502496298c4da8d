package stage

import (
	"synthwave/internal/config"
	"synthwave/internal/scene"
)

// CameraPair holds the terrain and sun cameras. They share a position and
// differ only in far plane and layer mask, so each branch gets its own bloom.
type CameraPair struct {
	Terrain *scene.Camera
	Sun     *scene.Camera
}

func NewCameraPair(v config.Variant, width, height int) *CameraPair {
	pos := v.CameraPosition()

	terrain := scene.NewCamera(config.CameraFOV, width, height, config.CameraNear, config.TerrainFar)
	terrain.Position = pos
	terrain.Layers = scene.LayerMask(config.LayerTerrain)

	sun := scene.NewCamera(config.CameraFOV, width, height, config.CameraNear, config.SunFar)
	sun.Position = pos
	sun.Layers = scene.LayerMask(config.LayerSun)

	return &CameraPair{Terrain: terrain, Sun: sun}
}

// Resize recomputes both aspect ratios and projections
func (p *CameraPair) Resize(width, height int) bool {
	ok := p.Terrain.SetViewport(width, height)
	return p.Sun.SetViewport(width, height) && ok
}

// All returns the cameras in render order (sun first)
func (p *CameraPair) All() []*scene.Camera {
	return []*scene.Camera{p.Sun, p.Terrain}
}
