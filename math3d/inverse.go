package math3d

import "errors"

// ErrSingularMatrix is returned by Mat4.Inverse when the determinant is
// exactly zero.
var ErrSingularMatrix = errors.New("math3d: matrix is singular")

// minor returns the determinant of the 3x3 matrix left after deleting row
// and col from m.
func (m Mat4) minor(row, col int) float32 {
	var sub Mat3
	si := 0
	for i := range 4 {
		if i == row {
			continue
		}
		sj := 0
		for j := range 4 {
			if j == col {
				continue
			}
			sub[si][sj] = m[i][j]
			sj++
		}
		si++
	}
	return sub.Determinant()
}

// cofactor returns the signed minor of element (row, col).
func (m Mat4) cofactor(row, col int) float32 {
	c := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -c
	}
	return c
}

// Determinant returns the determinant of m, expanded along the first row.
func (m Mat4) Determinant() float32 {
	var det float32
	for j := range 4 {
		det += m[0][j] * m.cofactor(0, j)
	}
	return det
}

// Inverse returns the inverse of m computed from its adjugate.
//
// If the determinant is exactly zero the zero matrix is returned together with
// ErrSingularMatrix. Nearly singular matrices still invert and may carry large
// rounding error; callers that care should inspect Determinant first.
func (m Mat4) Inverse() (Mat4, error) {
	var adj Mat4
	for i := range 4 {
		for j := range 4 {
			adj[j][i] = m.cofactor(i, j)
		}
	}

	// Row 0 of m against its cofactors, which sit in column 0 of adj.
	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0] + m[0][3]*adj[3][0]
	if det == 0 {
		return Mat4{}, ErrSingularMatrix
	}
	return adj.MulScalar(1 / det), nil
}
