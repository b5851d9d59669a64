package colorspace

// linearLUT maps an sRGB-encoded byte to its linear value.
// 256 entries, 1KB. Texture sampling decodes every sRGB channel through it.
var linearLUT [256]float32

func init() {
	for i := range linearLUT {
		linearLUT[i] = ToLinear(ByteToUnit(uint8(i)))
	}
}

// LinearFromByte returns ToLinear(ByteToUnit(b)) from a lookup table.
//
// Example:
//
//	r := LinearFromByte(128) // ~0.2195, not 0.5
func LinearFromByte(b uint8) float32 {
	return linearLUT[b]
}
