package math3d

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestF32Vectors(t *testing.T) {
	if got := V2(1, 2).F32(); got != (f32.Vec2{1, 2}) {
		t.Errorf("Vec2.F32 = %v", got)
	}
	if got := Vec3FromF32(V3(1, 2, 3).F32()); got != V3(1, 2, 3) {
		t.Errorf("Vec3 round trip = %+v", got)
	}
	if got := Vec4FromF32(f32.Vec4{1, 2, 3, 4}); got != V4(1, 2, 3, 4) {
		t.Errorf("Vec4FromF32 = %+v", got)
	}
	if got := Vec2FromF32(f32.Vec2{5, 6}); got != V2(5, 6) {
		t.Errorf("Vec2FromF32 = %+v", got)
	}
}

func TestF32MatricesAreRowMajor(t *testing.T) {
	m := Translate(V3(5, 6, 7)).F32()
	// Translation lives in column 3: m[4*r + 3].
	if m[3] != 5 || m[7] != 6 || m[11] != 7 || m[15] != 1 {
		t.Errorf("Translate F32 = %v", m)
	}
	if got := Mat4FromF32(matA.F32()); got != matA {
		t.Errorf("Mat4 round trip =\n%v", got)
	}

	m3 := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if got := m3.F32(); got != (f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("Mat3.F32 = %v", got)
	}
	if got := Mat3FromF32(m3.F32()); got != m3 {
		t.Errorf("Mat3 round trip = %v", got)
	}
}
