package math3d

import (
	"errors"
	"strings"
	"testing"
)

var (
	matA = Mat4{
		{1, 2, 3, 1},
		{4, 5, 6, 0},
		{7, 8, 9, 1},
		{1, 0, 1, 0},
	}
	matB = Mat4{
		{9, 8, 7, 0},
		{6, 5, 4, 1},
		{3, 2, 1, 0},
		{0, 1, 0, 1},
	}
)

func TestMat3Mul(t *testing.T) {
	a := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	b := Mat3{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
	want := Mat3{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}}
	if got := a.Mul(b); got != want {
		t.Errorf("Mul =\n%v\nwant\n%v", got, want)
	}
}

func TestMat3MulVec(t *testing.T) {
	m := Mat3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}
	if got := m.MulVec(V3(1, 0, 1)); got != V3(2, 4, 6) {
		t.Errorf("MulVec = %+v, want (2,4,6)", got)
	}
}

func TestMat4Mul(t *testing.T) {
	want := Mat4{
		{30, 25, 18, 3},
		{84, 69, 54, 5},
		{138, 115, 90, 9},
		{12, 10, 8, 0},
	}
	if got := matA.Mul(matB); got != want {
		t.Errorf("Mul =\n%v\nwant\n%v", got, want)
	}
}

func TestMat4MulVec(t *testing.T) {
	m := Mat4{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}, {4, 4, 4, 4}}
	if got := m.MulVec(V4(1, 0, 1, 0)); got != V4(2, 4, 6, 8) {
		t.Errorf("MulVec = %+v, want (2,4,6,8)", got)
	}
}

func TestMulScalar(t *testing.T) {
	if got := Mat3Identity().MulScalar(3); got != (Mat3{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}) {
		t.Errorf("Mat3.MulScalar = %v", got)
	}
	if got := matB.MulScalar(0); got != (Mat4{}) {
		t.Errorf("Mat4.MulScalar(0) = %v", got)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m4 := []Mat4{matA, matB, RotateAbout(0.7, V3(1, 2, 3)), Perspective(1, 1.5, 0.1, 50)}
	for i, m := range m4 {
		if got := Mat4Identity().Mul(m); !got.Approx(m, 1e-6) {
			t.Errorf("case %d: I*M != M", i)
		}
		if got := m.Mul(Mat4Identity()); !got.Approx(m, 1e-6) {
			t.Errorf("case %d: M*I != M", i)
		}
	}

	m3 := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if got := Mat3Identity().Mul(m3); got != m3 {
		t.Error("Mat3: I*M != M")
	}
	if got := m3.Mul(Mat3Identity()); got != m3 {
		t.Error("Mat3: M*I != M")
	}
}

func TestTranspose(t *testing.T) {
	want := Mat4{
		{9, 6, 3, 0},
		{8, 5, 2, 1},
		{7, 4, 1, 0},
		{0, 1, 0, 1},
	}
	if got := matB.Transpose(); got != want {
		t.Errorf("Transpose =\n%v\nwant\n%v", got, want)
	}
	if got := matB.Transpose().Transpose(); got != matB {
		t.Error("Transpose is not an involution for Mat4")
	}

	m3 := Mat3{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
	if got := m3.Transpose(); got != (Mat3{{9, 6, 3}, {8, 5, 2}, {7, 4, 1}}) {
		t.Errorf("Mat3 Transpose = %v", got)
	}
	if got := m3.Transpose().Transpose(); got != m3 {
		t.Error("Transpose is not an involution for Mat3")
	}
}

func TestFromColumns(t *testing.T) {
	m := Mat3FromColumns(V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9))
	if m != (Mat3{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}) {
		t.Errorf("Mat3FromColumns = %v", m)
	}
	m4 := Mat4FromColumns(V4(1, 0, 0, 0), V4(0, 1, 0, 0), V4(0, 0, 1, 0), V4(5, 6, 7, 1))
	if m4 != Translate(V3(5, 6, 7)) {
		t.Errorf("Mat4FromColumns = %v", m4)
	}
}

func TestMat4Mat3(t *testing.T) {
	if got := matA.Mat3(); got != (Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}) {
		t.Errorf("Mat3() = %v", got)
	}
}

func TestInverse(t *testing.T) {
	m := Mat4{
		{2, 1, 1, 1},
		{2, 3, 1, 1},
		{2, 2, 5, 1},
		{2, 2, 2, 7},
	}
	want := Mat4{
		{27. / 32, -5. / 32, -5. / 48, -1. / 12},
		{-1. / 2, 1. / 2, 0, 0},
		{-1. / 8, -1. / 8, 1. / 4, 0},
		{-1. / 16, -1. / 16, -1. / 24, 1. / 6},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if !inv.Approx(want, 1e-5) {
		t.Errorf("Inverse =\n%v\nwant\n%v", inv, want)
	}
	if got := m.Mul(inv); !got.Approx(Mat4Identity(), 1e-5) {
		t.Errorf("M * M^-1 =\n%v", got)
	}
}

func TestInverseOfTransforms(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"translate", Translate(V3(1, -2, 3))},
		{"scale", Scale(V3(2, 4, 0.5))},
		{"rotate", RotateAbout(1.2, V3(1, 1, 0))},
		{"look at", LookAt(V3(3, 4, 5), V3(0, 0, 0), V3(0, 1, 0))},
		{"perspective", Perspective(Pi/3, 16.0/9.0, 0.1, 100)},
		{"composite", Translate(V3(1, 2, 3)).Mul(RotateY(0.4)).Mul(Scale(V3(2, 2, 2)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if got := inv.Mul(tt.m); !got.Approx(Mat4Identity(), 1e-4) {
				t.Errorf("M^-1 * M =\n%v", got)
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	singular := []Mat4{
		{},
		{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}, {4, 4, 4, 4}},
		Scale(V3(1, 0, 1)),
	}
	for i, m := range singular {
		inv, err := m.Inverse()
		if !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("case %d: err = %v, want ErrSingularMatrix", i, err)
		}
		if inv != (Mat4{}) {
			t.Errorf("case %d: singular inverse = %v, want zero matrix", i, inv)
		}
	}
}

func TestDeterminant(t *testing.T) {
	if got := Mat4Identity().Determinant(); got != 1 {
		t.Errorf("det(I) = %v", got)
	}
	if got := Scale(V3(2, 3, 4)).Determinant(); got != 24 {
		t.Errorf("det(scale) = %v, want 24", got)
	}
	if got := (Mat3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}).Determinant(); got != 24 {
		t.Errorf("Mat3 det = %v, want 24", got)
	}
}

func TestString(t *testing.T) {
	got := Mat3Identity().String()
	want := "[[1, 0, 0],\n [0, 1, 0],\n [0, 0, 1]]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s := Mat4Identity().String(); strings.Count(s, "\n") != 3 {
		t.Errorf("Mat4 String() = %q", s)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m := RotateAbout(0.3, V3(1, 2, 3))
	n := Perspective(1, 1, 0.1, 100)
	b.ReportAllocs()
	for b.Loop() {
		m = m.Mul(n)
	}
	_ = m
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := LookAt(V3(3, 4, 5), V3(0, 0, 0), V3(0, 1, 0))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = m.Inverse()
	}
}
