package math3d

// Vec2 is a 2-component vector, used for texture coordinates and screen-space
// positions.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2FromArray creates a Vec2 from an array.
func Vec2FromArray(a [2]float32) Vec2 {
	return Vec2{X: a[0], Y: a[1]}
}

// Add returns the componentwise sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the componentwise product of two vectors.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the componentwise quotient of two vectors.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{X: v.X + s, Y: v.Y + s}
}

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{X: v.X - s, Y: v.Y - s}
}

// MulScalar returns the vector scaled by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// DivScalar returns the vector divided by s.
func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Magnitude returns the length of the vector.
func (v Vec2) Magnitude() float32 {
	return sqrt32(v.Dot(v))
}

// MagnitudeSquared returns the squared length of the vector.
// This is cheaper than Magnitude when only comparing lengths.
func (v Vec2) MagnitudeSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself, and a vector whose squared length is
// within SmallAbsolute of 1 is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	sq := v.MagnitudeSquared()
	switch {
	case sq == 0:
		return Vec2{}
	case abs32(sq-1) < SmallAbsolute:
		return v
	}
	return v.MulScalar(1 / sqrt32(sq))
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(v.X, w.X, t), Y: Lerp(v.Y, w.Y, t)}
}

// Vec3 widens the vector with the given z.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Approx returns true if two vectors are equal within epsilon per component.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon
}

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3FromArray creates a Vec3 from an array.
func Vec3FromArray(a [3]float32) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Add returns the componentwise sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the componentwise product of two vectors.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Div returns the componentwise quotient of two vectors.
func (v Vec3) Div(w Vec3) Vec3 {
	return Vec3{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MulScalar returns the vector scaled by s.
func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar returns the vector divided by s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the length of the vector.
func (v Vec3) Magnitude() float32 {
	return sqrt32(v.Dot(v))
}

// MagnitudeSquared returns the squared length of the vector.
func (v Vec3) MagnitudeSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction. See Vec2.Normalize.
func (v Vec3) Normalize() Vec3 {
	sq := v.MagnitudeSquared()
	switch {
	case sq == 0:
		return Vec3{}
	case abs32(sq-1) < SmallAbsolute:
		return v
	}
	return v.MulScalar(1 / sqrt32(sq))
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{X: Lerp(v.X, w.X, t), Y: Lerp(v.Y, w.Y, t), Z: Lerp(v.Z, w.Z, t)}
}

// Vec2 drops z.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec4 widens the vector with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Approx returns true if two vectors are equal within epsilon per component.
func (v Vec3) Approx(w Vec3, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon && abs32(v.Z-w.Z) < epsilon
}

// Vec4 is a 4-component vector: homogeneous positions and RGBA colors.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromArray creates a Vec4 from an array.
func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Add returns the componentwise sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the componentwise product of two vectors.
func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// Div returns the componentwise quotient of two vectors.
func (v Vec4) Div(w Vec4) Vec4 {
	return Vec4{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// AddScalar adds s to every component.
func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// SubScalar subtracts s from every component.
func (v Vec4) SubScalar(s float32) Vec4 {
	return Vec4{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// MulScalar returns the vector scaled by s.
func (v Vec4) MulScalar(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns the vector divided by s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Magnitude returns the length of the vector.
func (v Vec4) Magnitude() float32 {
	return sqrt32(v.Dot(v))
}

// MagnitudeSquared returns the squared length of the vector.
func (v Vec4) MagnitudeSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction. See Vec2.Normalize.
func (v Vec4) Normalize() Vec4 {
	sq := v.MagnitudeSquared()
	switch {
	case sq == 0:
		return Vec4{}
	case abs32(sq-1) < SmallAbsolute:
		return v
	}
	return v.MulScalar(1 / sqrt32(sq))
}

// Lerp performs linear interpolation between two vectors.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return Vec4{
		X: Lerp(v.X, w.X, t),
		Y: Lerp(v.Y, w.Y, t),
		Z: Lerp(v.Z, w.Z, t),
		W: Lerp(v.W, w.W, t),
	}
}

// Vec2 drops z and w.
func (v Vec4) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec3 drops w. It does not divide by w; see PerspectiveDivide.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// PerspectiveDivide returns (x/w, y/w, z/w).
func (v Vec4) PerspectiveDivide() Vec3 {
	inv := 1 / v.W
	return Vec3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

// Approx returns true if two vectors are equal within epsilon per component.
func (v Vec4) Approx(w Vec4, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon &&
		abs32(v.Z-w.Z) < epsilon && abs32(v.W-w.W) < epsilon
}
