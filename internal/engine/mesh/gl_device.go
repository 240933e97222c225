package mesh

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice stores geometry in a VAO/VBO pair per mesh.
type GLDevice struct{}

// Upload implements Device.
func (GLDevice) Upload(g Geometry) (Handle, error) {
	if len(g.Vertices) == 0 {
		return Handle{}, errors.New("empty geometry")
	}

	var h Handle
	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, Stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, Stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, Stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	h.Count = int32(g.VertexCount())
	return h, nil
}

// Draw implements Device.
func (GLDevice) Draw(h Handle) {
	gl.BindVertexArray(h.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, h.Count)
	gl.BindVertexArray(0)
}

// Release implements Device.
func (GLDevice) Release(h Handle) {
	gl.DeleteBuffers(1, &h.VBO)
	gl.DeleteVertexArrays(1, &h.VAO)
}
