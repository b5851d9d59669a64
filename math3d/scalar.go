package math3d

import "math"

// Pi is float32 π.
const Pi float32 = math.Pi

// SmallAbsolute is the tolerance below which a squared magnitude is treated as
// already being 1 by Normalize.
const SmallAbsolute float32 = 1e-8

// Clamp restricts n to [lo, hi]. NaN clamps to lo.
func Clamp(n, lo, hi float32) float32 {
	if n != n {
		return lo
	}
	return min(max(n, lo), hi)
}

// Clamp01 restricts n to [0, 1]; NaN becomes 0.
func Clamp01(n float32) float32 {
	return Clamp(n, 0, 1)
}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * Pi / 180
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func sincos32(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
