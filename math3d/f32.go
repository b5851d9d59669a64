package math3d

import "golang.org/x/image/math/f32"

// F32 converts v to an x/image/math/f32 vector.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// F32 converts v to an x/image/math/f32 vector.
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// F32 converts v to an x/image/math/f32 vector.
func (v Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vec2FromF32 converts an x/image/math/f32 vector.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{X: v[0], Y: v[1]} }

// Vec3FromF32 converts an x/image/math/f32 vector.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Vec4FromF32 converts an x/image/math/f32 vector.
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// F32 converts m to the flat row-major f32.Mat3 layout, m[3*r+c].
func (m Mat3) F32() f32.Mat3 {
	var r f32.Mat3
	for i := range 3 {
		for j := range 3 {
			r[3*i+j] = m[i][j]
		}
	}
	return r
}

// Mat3FromF32 is the inverse of Mat3.F32.
func Mat3FromF32(a f32.Mat3) Mat3 {
	var m Mat3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = a[3*i+j]
		}
	}
	return m
}

// F32 converts m to the flat row-major f32.Mat4 layout, m[4*r+c].
func (m Mat4) F32() f32.Mat4 {
	var r f32.Mat4
	for i := range 4 {
		for j := range 4 {
			r[4*i+j] = m[i][j]
		}
	}
	return r
}

// Mat4FromF32 is the inverse of Mat4.F32.
func Mat4FromF32(a f32.Mat4) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = a[4*i+j]
		}
	}
	return m
}
