package engine

import (
	"math"
	"testing"
)

func TestNewBoxMeshGeometry(t *testing.T) {
	m := NewBoxMesh("box", 2, 4, 6, [3]float32{1, 0, 0})

	if m.VertexCount() != 36 {
		t.Fatalf("vertex count = %d, want 36", m.VertexCount())
	}
	if m.Scale != 1 {
		t.Errorf("default scale = %v, want 1", m.Scale)
	}

	// Every position sits on the box surface and every normal is unit
	// length along one axis.
	for i := 0; i < len(m.Vertices); i += 6 {
		px, py, pz := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		if abs32(px) > 1 || abs32(py) > 2 || abs32(pz) > 3 {
			t.Fatalf("vertex %d outside the half extents: (%v, %v, %v)", i/6, px, py, pz)
		}

		nx, ny, nz := m.Vertices[i+3], m.Vertices[i+4], m.Vertices[i+5]
		lenSq := nx*nx + ny*ny + nz*nz
		if math.Abs(float64(lenSq)-1) > 1e-6 {
			t.Fatalf("vertex %d normal not unit: (%v, %v, %v)", i/6, nx, ny, nz)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
