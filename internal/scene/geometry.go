package scene

import "math"

// Vertex layout of Geometry.Interleaved: position.xyz, normal.xyz, uv.xy
const (
	FloatsPerVertex = 8
	VertexStride    = FloatsPerVertex * 4
)

// Geometry is an indexed triangle list kept on the CPU until uploaded.
type Geometry struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	UVs       []float32 // uv per vertex
	Indices   []uint32
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// Interleaved packs the attributes in upload order
func (g *Geometry) Interleaved() []float32 {
	n := g.VertexCount()
	out := make([]float32, 0, n*FloatsPerVertex)
	for i := 0; i < n; i++ {
		out = append(out,
			g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2],
			g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2],
			g.UVs[i*2], g.UVs[i*2+1],
		)
	}
	return out
}

func (g *Geometry) push(x, y, z, u, v float32) {
	g.Positions = append(g.Positions, x, y, z)
	g.Normals = append(g.Normals, 0, 0, 1)
	g.UVs = append(g.UVs, u, v)
}

// NewCircle builds a flat disc in the XY plane facing +Z, as a triangle fan
// around a centre vertex. UVs map the disc's bounding square to [0,1]².
func NewCircle(radius float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{}
	g.push(0, 0, 0, 0.5, 0.5)

	for s := 0; s <= segments; s++ {
		theta := float64(s) / float64(segments) * 2 * math.Pi
		x := radius * float32(math.Cos(theta))
		y := radius * float32(math.Sin(theta))
		g.push(x, y, 0, (x/radius+1)/2, (y/radius+1)/2)
	}

	for i := 1; i <= segments; i++ {
		g.Indices = append(g.Indices, uint32(i), uint32(i+1), 0)
	}
	return g
}

// NewPlane builds a width×height plane in the XY plane facing +Z, subdivided
// into widthSegments×heightSegments quads. Row 0 is the top edge (uv.y = 1).
func NewPlane(width, height float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	g := &Geometry{}

	widthHalf := width / 2
	heightHalf := height / 2
	gridX1 := widthSegments + 1
	gridY1 := heightSegments + 1
	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)

	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - heightHalf
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - widthHalf
			u := float32(ix) / float32(widthSegments)
			v := 1 - float32(iy)/float32(heightSegments)
			g.push(x, -y, 0, u, v)
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32((ix + 1) + gridX1*(iy+1))
			d := uint32((ix + 1) + gridX1*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
