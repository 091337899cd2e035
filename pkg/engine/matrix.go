package engine

import "math"

// Mat4 is a 4x4 matrix in column-major order, ready for OpenGL uniforms.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Perspective builds a right-handed perspective projection matrix.
// fovDeg is the vertical field of view in degrees.
func Mat4Perspective(fovDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovDeg*math.Pi/360.0)
	nf := 1.0 / (near - far)

	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) * nf)
	m[11] = -1
	m[14] = float32(2 * far * near * nf)
	return m
}

// Mat4LookAt builds a view matrix for a camera at eye looking at center.
func Mat4LookAt(eye, center, up Vector3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	var m Mat4
	m[0] = float32(s.X)
	m[1] = float32(u.X)
	m[2] = float32(-f.X)
	m[4] = float32(s.Y)
	m[5] = float32(u.Y)
	m[6] = float32(-f.Y)
	m[8] = float32(s.Z)
	m[9] = float32(u.Z)
	m[10] = float32(-f.Z)
	m[12] = float32(-s.Dot(eye))
	m[13] = float32(-u.Dot(eye))
	m[14] = float32(f.Dot(eye))
	m[15] = 1
	return m
}

// Mat4TranslateScale builds a model matrix from a translation, a rotation
// around the Y axis, and a uniform scale.
func Mat4TranslateScale(pos Vector3, yRotation, scale float64) Mat4 {
	c := float32(math.Cos(yRotation) * scale)
	s := float32(math.Sin(yRotation) * scale)

	var m Mat4
	m[0] = c
	m[2] = -s
	m[5] = float32(scale)
	m[8] = s
	m[10] = c
	m[12] = float32(pos.X)
	m[13] = float32(pos.Y)
	m[14] = float32(pos.Z)
	m[15] = 1
	return m
}
