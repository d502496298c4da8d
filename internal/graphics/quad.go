package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// quadVertices is a fullscreen triangle strip: position xy, uv
var quadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, 1, 1, 1,
}

// Quad draws a fullscreen rectangle for post-processing passes
type Quad struct {
	vao uint32
	vbo uint32
}

// NewQuad uploads the fullscreen quad
func NewQuad() *Quad {
	q := &Quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)
	return q
}

// Draw renders the quad with the currently bound program
func (q *Quad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Dispose releases GL objects
func (q *Quad) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
}
