package learngl

import (
	"errors"
	"fmt"
	"unsafe"
)

// Vertex is a colored vertex.
// Memory layout matches the OpenGL vertex attribute setup in backend/opengl.
type Vertex struct {
	Pos   [3]float32 // Position (x, y, z)
	Color [3]float32 // RGB color
}

// TexturedVertex is a colored vertex with texture coordinates.
type TexturedVertex struct {
	Pos   [3]float32
	Color [3]float32
	UV    [2]float32
}

// VertexType constrains meshes to the vertex formats the renderer knows.
type VertexType interface {
	Vertex | TexturedVertex
}

// VertexLayout names a vertex format.
type VertexLayout string

const (
	LayoutColor    VertexLayout = "color"
	LayoutTextured VertexLayout = "textured"
)

// Attribute describes one vertex attribute as glVertexAttribPointer wants it.
type Attribute struct {
	Location uint32
	Size     int32 // Number of float components
	Offset   uintptr
}

// Valid reports whether l is a known layout.
func (l VertexLayout) Valid() bool {
	return l == LayoutColor || l == LayoutTextured
}

// Stride returns the size in bytes of one vertex.
func (l VertexLayout) Stride() int32 {
	if l == LayoutTextured {
		return int32(unsafe.Sizeof(TexturedVertex{}))
	}
	return int32(unsafe.Sizeof(Vertex{}))
}

// Attributes returns the attribute list for l.
// Location 0 is position, 1 is color and 2 is UV.
func (l VertexLayout) Attributes() []Attribute {
	attrs := []Attribute{
		{Location: 0, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Pos)},
		{Location: 1, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
	}
	if l == LayoutTextured {
		attrs = append(attrs, Attribute{Location: 2, Size: 2, Offset: unsafe.Offsetof(TexturedVertex{}.UV)})
	}
	return attrs
}

// LayoutOf returns the layout matching vertex type V.
func LayoutOf[V VertexType]() VertexLayout {
	var v V
	switch any(v).(type) {
	case TexturedVertex:
		return LayoutTextured
	default:
		return LayoutColor
	}
}

// Mesh is an indexed triangle list. It is uploaded once and not changed after.
type Mesh[V VertexType] struct {
	Vertices []V
	Indices  []uint16
}

// ErrEmptyMesh is returned by Validate for a mesh with nothing to draw.
var ErrEmptyMesh = errors.New("mesh has no indices")

// Validate checks that the mesh forms whole triangles over existing vertices.
func (m Mesh[V]) Validate() error {
	if len(m.Indices) == 0 {
		return ErrEmptyMesh
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Layout returns the vertex layout of the mesh.
func (m Mesh[V]) Layout() VertexLayout {
	return LayoutOf[V]()
}
