package math3d

import (
	"fmt"
	"strings"
)

// Mat3 is a 3x3 matrix in row-major order, indexed [row][col].
// The zero value is the zero matrix.
type Mat3 [3][3]float32

// Mat4 is a 4x4 homogeneous transform in row-major order, indexed [row][col].
// The zero value is the zero matrix.
//
//	| m00 m01 m02 m03 |   rotation/scale in the upper-left 3x3,
//	| m10 m11 m12 m13 |   translation in column 3,
//	| m20 m21 m22 m23 |   projective terms in row 3.
//	| m30 m31 m32 m33 |
type Mat4 [4][4]float32

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat3FromColumns builds a matrix whose columns are the given basis vectors.
func Mat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// Mat4FromColumns builds a matrix whose columns are the given basis vectors.
func Mat4FromColumns(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{
		{c0.X, c1.X, c2.X, c3.X},
		{c0.Y, c1.Y, c2.Y, c3.Y},
		{c0.Z, c1.Z, c2.Z, c3.Z},
		{c0.W, c1.W, c2.W, c3.W},
	}
}

// MulScalar multiplies every element by s.
func (m Mat3) MulScalar(s float32) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// MulVec transforms v, treated as a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Approx returns true if every element differs by less than epsilon.
func (m Mat3) Approx(n Mat3, epsilon float32) bool {
	for i := range 3 {
		for j := range 3 {
			if abs32(m[i][j]-n[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

func (m Mat3) String() string {
	return formatRows(m[0][:], m[1][:], m[2][:])
}

// MulScalar multiplies every element by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// MulVec transforms v, treated as a column vector. Each output component is
// the dot product of a row of m with v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Mul returns the matrix product m * n, which applies n first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			for k := range 4 {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Mat3 returns the upper-left 3x3 block (the linear part of an affine
// transform).
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Approx returns true if every element differs by less than epsilon.
func (m Mat4) Approx(n Mat4, epsilon float32) bool {
	for i := range 4 {
		for j := range 4 {
			if abs32(m[i][j]-n[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

func (m Mat4) String() string {
	return formatRows(m[0][:], m[1][:], m[2][:], m[3][:])
}

// formatRows renders rows as "[[a, b],\n [c, d]]".
func formatRows(rows ...[]float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
