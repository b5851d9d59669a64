// Package math3d provides the float32 vector and matrix types used by the
// softras pipeline.
//
// Vectors (Vec2, Vec3, Vec4) are plain values; every operation returns a new
// value and never aliases its inputs. Matrices (Mat3, Mat4) are row-major
// arrays indexed [row][col]. Multiplying a matrix by a vector treats the vector
// as a column, so transforms compose right to left:
//
//	clip := proj.Mul(view).Mul(model).MulVec(pos)
//
// Conversions between arities are always explicit (Vec3.Vec4, Vec4.Vec3, ...).
package math3d
