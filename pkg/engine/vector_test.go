package engine

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: -1, Z: 2}

	if got := a.Add(b); got != (Vector3{X: 5, Y: 1, Z: 5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vector3{X: -3, Y: 3, Z: 1}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); got != (Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Dot(b); got != 8 {
		t.Errorf("Dot = %v, want 8", got)
	}
}

func TestVector3CrossIsOrthogonal(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: -2, Y: 1, Z: 4}
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product %+v not orthogonal to inputs", c)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v", n.Length())
	}

	// The zero vector has no direction; it comes back unchanged.
	if (Vector3{}).Normalize() != (Vector3{}) {
		t.Error("zero vector normalization changed the vector")
	}
}

func TestVector3Lerp(t *testing.T) {
	a := Vector3{X: 0, Y: 0, Z: 0}
	b := Vector3{X: 10, Y: -4, Z: 2}

	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints wrong")
	}
	mid := a.Lerp(b, 0.5)
	if mid != (Vector3{X: 5, Y: -2, Z: 1}) {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
}

func TestMat4LookAtTransformsCenterToForward(t *testing.T) {
	eye := Vector3{X: 0, Y: 0, Z: 10}
	center := Vector3{}
	m := Mat4LookAt(eye, center, Vector3{Y: 1})

	// The view transform puts the look-at point on the negative Z axis
	// at eye distance.
	x := float64(m[0])*center.X + float64(m[4])*center.Y + float64(m[8])*center.Z + float64(m[12])
	y := float64(m[1])*center.X + float64(m[5])*center.Y + float64(m[9])*center.Z + float64(m[13])
	z := float64(m[2])*center.X + float64(m[6])*center.Y + float64(m[10])*center.Z + float64(m[14])

	if math.Abs(x) > 1e-6 || math.Abs(y) > 1e-6 || math.Abs(z-(-10)) > 1e-6 {
		t.Errorf("view-transformed center = (%v, %v, %v), want (0, 0, -10)", x, y, z)
	}
}

func TestMat4PerspectiveShape(t *testing.T) {
	m := Mat4Perspective(60, 16.0/9.0, 0.1, 100)

	if m[11] != -1 {
		t.Error("perspective matrix missing the -1 projective term")
	}
	if m[0] <= 0 || m[5] <= 0 {
		t.Error("focal terms not positive")
	}
	// Wider aspect squeezes X relative to Y.
	if m[0] >= m[5] {
		t.Errorf("m[0]=%v not less than m[5]=%v for a wide aspect", m[0], m[5])
	}
}

func TestMat4TranslateScale(t *testing.T) {
	pos := Vector3{X: 2, Y: 3, Z: -4}
	m := Mat4TranslateScale(pos, 0, 2)

	if m[12] != 2 || m[13] != 3 || m[14] != -4 {
		t.Errorf("translation column = (%v, %v, %v)", m[12], m[13], m[14])
	}
	if m[0] != 2 || m[5] != 2 || m[10] != 2 {
		t.Error("uniform scale not on the diagonal at zero rotation")
	}

	// A quarter turn moves the scale into the off-diagonal terms.
	r := Mat4TranslateScale(pos, math.Pi/2, 1)
	if math.Abs(float64(r[0])) > 1e-6 || math.Abs(float64(r[8])-1) > 1e-6 {
		t.Errorf("rotation terms wrong: m[0]=%v m[8]=%v", r[0], r[8])
	}
}
