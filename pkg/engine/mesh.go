package engine

// Mesh holds CPU-side interleaved geometry (position xyz, normal xyz).
// GPU identifiers are assigned by the renderer on first draw; nothing
// outside the renderer touches them.
type Mesh struct {
	Name     string
	Vertices []float32
	Color    [3]float32

	Position Vector3
	Rotation float64 // around Y, radians
	Scale    float64

	vao      uint32
	vbo      uint32
	uploaded bool
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 6
}

// NewBoxMesh builds an axis-aligned box centered at the origin with the
// given dimensions, as 12 triangles with face normals.
func NewBoxMesh(name string, w, h, d float64, color [3]float32) *Mesh {
	x := float32(w / 2)
	y := float32(h / 2)
	z := float32(d / 2)

	faces := []struct {
		n [3]float32    // face normal
		v [4][3]float32 // corners, counter-clockwise from outside
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
	}

	verts := make([]float32, 0, 36*6)
	push := func(p, n [3]float32) {
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		push(f.v[0], f.n)
		push(f.v[1], f.n)
		push(f.v[2], f.n)
		push(f.v[0], f.n)
		push(f.v[2], f.n)
		push(f.v[3], f.n)
	}

	return &Mesh{
		Name:     name,
		Vertices: verts,
		Color:    color,
		Scale:    1,
	}
}
