// Package colorspace provides the scalar color conversions used by softras:
// byte ↔ unit-interval quantization and the gamma 2.2 approximation of the
// sRGB transfer curve.
//
// All functions operate on a single channel and never allocate. Alpha is
// always linear; callers convert R, G and B only.
package colorspace

import "math"

// Gamma is the exponent used by ToSRGB and ToLinear.
const Gamma = 2.2

// ByteToUnit maps a byte channel [0,255] to [0,1].
func ByteToUnit(b uint8) float32 {
	return float32(b) / 255
}

// UnitToByte maps v in [0,1] to a byte by truncation: floor(v*255).
// It does not round and does not clamp; values outside [0,1] must be clamped
// by the caller first. Consequently UnitToByte(ByteToUnit(b)) may return b-1.
func UnitToByte(v float32) uint8 {
	return uint8(v * 255)
}

// ToSRGB encodes a linear channel value: v^(1/2.2).
func ToSRGB(v float32) float32 {
	return float32(math.Pow(float64(v), 1/Gamma))
}

// ToLinear decodes an sRGB-encoded channel value: v^2.2.
func ToLinear(v float32) float32 {
	return float32(math.Pow(float64(v), Gamma))
}
