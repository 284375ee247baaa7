package learngl

// Face colors, one per cube side.
var faceColors = [6][3]float32{
	{1.0, 0.2, 0.2}, // front
	{0.2, 1.0, 0.2}, // back
	{0.2, 0.2, 1.0}, // top
	{1.0, 1.0, 0.2}, // bottom
	{1.0, 0.2, 1.0}, // right
	{0.2, 1.0, 1.0}, // left
}

// cubeFaces lists the four corners of each face, counter-clockwise seen from
// outside, in the same order as faceColors.
var cubeFaces = [6][4][3]float32{
	{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
	{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
	{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
}

var quadUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// cubeIndices returns two triangles per face over 4 vertices per face.
func cubeIndices() []uint16 {
	indices := make([]uint16, 0, 36)
	for f := uint16(0); f < 6; f++ {
		base := f * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return indices
}

// ColoredCube returns a unit cube centered on the origin with one color per face.
func ColoredCube() Mesh[Vertex] {
	m := Mesh[Vertex]{
		Vertices: make([]Vertex, 0, 24),
		Indices:  cubeIndices(),
	}
	for f, face := range cubeFaces {
		for _, p := range face {
			m.Vertices = append(m.Vertices, Vertex{Pos: p, Color: faceColors[f]})
		}
	}
	return m
}

// TexturedCube returns the colored cube with each face mapped to the full texture.
func TexturedCube() Mesh[TexturedVertex] {
	m := Mesh[TexturedVertex]{
		Vertices: make([]TexturedVertex, 0, 24),
		Indices:  cubeIndices(),
	}
	for f, face := range cubeFaces {
		for i, p := range face {
			m.Vertices = append(m.Vertices, TexturedVertex{Pos: p, Color: faceColors[f], UV: quadUVs[i]})
		}
	}
	return m
}
