package terrain

import "math"

// Grid describes the tile layout the height rule reads
type Grid struct {
	Cells         float64 // grid cells across a tile
	MountainRange float64 // cells of mountains on each side of the road
}

// IsRoad reports whether horizontal uv coordinate u lies on the flat road
func (g Grid) IsRoad(u float64) bool {
	return u > g.MountainRange/g.Cells && u < (g.Cells-g.MountainRange)/g.Cells
}

// Height returns the displacement of the vertex at (u, v) for a tile with
// the given noise offset, scrolled to z position pos. Road vertices stay at
// zero; mountain heights grow as the tile approaches the camera.
func (g Grid) Height(u, v, offset, pos float64) float64 {
	if g.IsRoad(u) {
		return 0
	}
	k := g.Cells - 1
	n := CNoise(u*k, (v+offset)*k, k)
	noised := math.Pow(math.Abs(n*0.7), 2)
	return noised * Falloff(v, pos)
}

// Falloff scales heights by how far along the scroll the tile is
func Falloff(v, pos float64) float64 {
	return (pos+2)/2 - v/2
}
