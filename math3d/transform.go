package math3d

import "math"

// Scale creates a scaling matrix.
func Scale(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

// Translate creates a translation matrix.
func Translate(t Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float32) Mat4 {
	s, c := sincos32(angle)
	m := Mat4Identity()
	m[1][1] = c
	m[1][2] = -s
	m[2][1] = s
	m[2][2] = c
	return m
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float32) Mat4 {
	s, c := sincos32(angle)
	m := Mat4Identity()
	m[0][0] = c
	m[0][2] = s
	m[2][0] = -s
	m[2][2] = c
	return m
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float32) Mat4 {
	s, c := sincos32(angle)
	m := Mat4Identity()
	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c
	return m
}

// RotateAbout creates a rotation of angle radians about axis.
//
// When axis is exactly one of the unit basis vectors the result is identical
// to RotateX, RotateY or RotateZ. Otherwise axis is normalized and the
// axis-angle (Rodrigues) rotation is built.
func RotateAbout(angle float32, axis Vec3) Mat4 {
	switch axis {
	case Vec3{X: 1}:
		return RotateX(angle)
	case Vec3{Y: 1}:
		return RotateY(angle)
	case Vec3{Z: 1}:
		return RotateZ(angle)
	}

	a := axis.Normalize()
	s, c := sincos32(angle)
	t := 1 - c
	xy, yz, zx := a.X*a.Y, a.Y*a.Z, a.Z*a.X
	xs, ys, zs := a.X*s, a.Y*s, a.Z*s

	m := Mat4Identity()
	m[0][0] = a.X*a.X*t + c
	m[0][1] = xy*t - zs
	m[0][2] = zx*t + ys

	m[1][0] = xy*t + zs
	m[1][1] = a.Y*a.Y*t + c
	m[1][2] = yz*t - xs

	m[2][0] = zx*t - ys
	m[2][1] = yz*t + xs
	m[2][2] = a.Z*a.Z*t + c
	return m
}

// LookAt builds a right-handed view matrix for a camera at from looking at to.
//
// The camera basis is z = normalize(from - to), x = normalize(up × z),
// y = z × x. The rows of the upper-left block are x, y, z and the translation
// column holds -dot(axis, from), so from maps to the origin and to lies on -Z.
func LookAt(from, to, up Vec3) Mat4 {
	z := from.Sub(to).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	m := Mat4Identity()
	m[0][0], m[0][1], m[0][2] = x.X, x.Y, x.Z
	m[1][0], m[1][1], m[1][2] = y.X, y.Y, y.Z
	m[2][0], m[2][1], m[2][2] = z.X, z.Y, z.Z

	m[0][3] = -x.Dot(from)
	m[1][3] = -y.Dot(from)
	m[2][3] = -z.Dot(from)
	return m
}

// Perspective builds a perspective projection.
//
// fovY is the vertical field of view in radians, aspect is width/height.
// View-space z = -near maps to clip depth -1 and z = -far to +1 after the
// divide by w, which carries -z.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	var m Mat4
	d := far - near
	m[1][1] = 1 / float32(math.Tan(float64(fovY/2)))
	m[0][0] = m[1][1] / aspect
	m[2][2] = (-far - near) / d
	m[2][3] = -2 * far * near / d
	m[3][2] = -1
	return m
}

// Orthographic builds a symmetric orthographic projection for the box
// [-right, right] x [-top, top] x [-far, -near].
func Orthographic(right, top, near, far float32) Mat4 {
	d := far - near
	m := Mat4Identity()
	m[0][0] = 1 / right
	m[1][1] = 1 / top
	m[2][2] = -2 / d
	m[2][3] = (-near - far) / d
	return m
}
