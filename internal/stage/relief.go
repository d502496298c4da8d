package stage

import (
	"synthwave/internal/config"
	"synthwave/internal/scene"
	"synthwave/internal/terrain"
)

// TerrainGrid is the height rule the terrain program applies
var TerrainGrid = terrain.Grid{Cells: config.Cells, MountainRange: config.MountainRange}

// PlaneHeights evaluates the terrain vertex displacement of every vertex of
// plane at scroll position pos, in vertex order.
func PlaneHeights(plane *scene.Mesh, pos float64) []float64 {
	u := plane.Material.Uniforms
	offset := float64(u.Float(UniformOffset))
	uvs := plane.Geometry.UVs
	out := make([]float64, len(uvs)/2)
	for i := range out {
		out[i] = TerrainGrid.Height(float64(uvs[i*2]), float64(uvs[i*2+1]), offset, pos)
	}
	return out
}

// PeakHeight is the tallest mountain a plane reaches over its scroll range
func PeakHeight(plane *scene.Mesh) float64 {
	_, hi := config.TileRange()
	peak := 0.0
	for _, h := range PlaneHeights(plane, hi) {
		peak = max(peak, h)
	}
	return peak
}
