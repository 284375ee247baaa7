package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
)

// Mesh is an indexed triangle list uploaded once into GPU buffers.
type Mesh struct {
	vao, vbo  uint32
	ebo       uint32
	elemCount int32
}

// NewMesh validates m and uploads it with STATIC_DRAW. The attribute layout
// follows m.Layout().
func NewMesh[V learngl.VertexType](m learngl.Mesh[V]) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	layout := m.Layout()
	stride := layout.Stride()
	out := &Mesh{elemCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &out.vao)
	gl.BindVertexArray(out.vao)

	gl.GenBuffers(1, &out.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, out.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride),
		gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &out.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2,
		gl.Ptr(m.Indices), gl.STATIC_DRAW)

	for _, attr := range layout.Attributes() {
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, stride, attr.Offset)
		gl.EnableVertexAttribArray(attr.Location)
	}

	// The EBO binding is VAO state and must stay bound.
	gl.BindVertexArray(0)

	return out, nil
}

// Draw issues a single indexed draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.elemCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}
