package learngl_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/go-theft-auto/learngl"
)

func TestCubeMeshes(t *testing.T) {
	colored := learngl.ColoredCube()
	if err := colored.Validate(); err != nil {
		t.Fatalf("colored cube: %v", err)
	}
	if len(colored.Vertices) != 24 || len(colored.Indices) != 36 {
		t.Errorf("colored cube has %d vertices, %d indices", len(colored.Vertices), len(colored.Indices))
	}

	textured := learngl.TexturedCube()
	if err := textured.Validate(); err != nil {
		t.Fatalf("textured cube: %v", err)
	}
	for i, v := range textured.Vertices {
		if v.Pos != colored.Vertices[i].Pos || v.Color != colored.Vertices[i].Color {
			t.Fatalf("vertex %d differs between cubes", i)
		}
		for _, c := range v.UV {
			if c < 0 || c > 1 {
				t.Errorf("vertex %d uv %v out of [0, 1]", i, v.UV)
			}
		}
	}
}

func TestCubeIsCentered(t *testing.T) {
	var sum [3]float32
	for _, v := range learngl.ColoredCube().Vertices {
		for i := range sum {
			sum[i] += v.Pos[i]
		}
	}
	if sum != [3]float32{} {
		t.Errorf("vertex sum = %v, want origin", sum)
	}
}

func TestMeshValidate(t *testing.T) {
	tri := []learngl.Vertex{{}, {}, {}}

	tests := []struct {
		name    string
		mesh    learngl.Mesh[learngl.Vertex]
		wantErr bool
	}{
		{"ok", learngl.Mesh[learngl.Vertex]{Vertices: tri, Indices: []uint16{0, 1, 2}}, false},
		{"empty", learngl.Mesh[learngl.Vertex]{Vertices: tri}, true},
		{"partial triangle", learngl.Mesh[learngl.Vertex]{Vertices: tri, Indices: []uint16{0, 1}}, true},
		{"out of range", learngl.Mesh[learngl.Vertex]{Vertices: tri, Indices: []uint16{0, 1, 3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := (learngl.Mesh[learngl.Vertex]{}).Validate(); !errors.Is(err, learngl.ErrEmptyMesh) {
		t.Errorf("empty mesh error = %v, want ErrEmptyMesh", err)
	}
}

func TestVertexLayouts(t *testing.T) {
	if got := learngl.ColoredCube().Layout(); got != learngl.LayoutColor {
		t.Errorf("colored cube layout = %q", got)
	}
	if got := learngl.TexturedCube().Layout(); got != learngl.LayoutTextured {
		t.Errorf("textured cube layout = %q", got)
	}

	if got := learngl.LayoutColor.Stride(); got != int32(unsafe.Sizeof(learngl.Vertex{})) || got != 24 {
		t.Errorf("color stride = %d, want 24", got)
	}
	if got := learngl.LayoutTextured.Stride(); got != 32 {
		t.Errorf("textured stride = %d, want 32", got)
	}

	attrs := learngl.LayoutTextured.Attributes()
	if len(attrs) != 3 {
		t.Fatalf("textured layout has %d attributes, want 3", len(attrs))
	}
	wantOffsets := []uintptr{0, 12, 24}
	wantSizes := []int32{3, 3, 2}
	for i, a := range attrs {
		if a.Location != uint32(i) || a.Offset != wantOffsets[i] || a.Size != wantSizes[i] {
			t.Errorf("attribute %d = %+v", i, a)
		}
	}
	if n := len(learngl.LayoutColor.Attributes()); n != 2 {
		t.Errorf("color layout has %d attributes, want 2", n)
	}

	if learngl.VertexLayout("normals").Valid() {
		t.Error("unknown layout reported valid")
	}
}
