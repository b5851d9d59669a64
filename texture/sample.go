// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/softras/colorspace"
	"github.com/gogpu/softras/math3d"
)

// MaxDepth is the depth of the far plane and the value a cleared depth
// attachment holds.
const MaxDepth float32 = 1

// Sample returns the color of the texel nearest to (u, v).
//
// u and v are clamped to [0,1] and mapped to texel (floor(u*width),
// floor(v*height)), clamped to the last column and row so that u=1 or v=1
// never reads past the buffer. Channels the format does not store read as 1.
// For sRGB formats R, G and B are converted to linear; alpha is not.
// DepthFloat textures return the depth replicated into R, G and B with
// alpha 1, a greyscale view of the depth buffer.
func (t *Texture) Sample(u, v float32) math3d.Vec4 {
	x := texelIndex(u, t.width)
	y := texelIndex(v, t.height)
	return t.decode(t.pixel(x, y))
}

// texelIndex maps a coordinate to an index in [0, size-1].
func texelIndex(coord float32, size int) int {
	if coord != coord { // NaN
		return 0
	}
	i := int(math.Floor(float64(math3d.Clamp01(coord) * float32(size))))
	return min(max(i, 0), size-1)
}

// Texel returns the decoded color at pixel (x, y), or the zero vector if the
// coordinates are out of bounds.
func (t *Texture) Texel(x, y int) math3d.Vec4 {
	if !t.inBounds(x, y) {
		return math3d.Vec4{}
	}
	return t.decode(t.pixel(x, y))
}

// SetTexel encodes c into pixel (x, y). Channels are clamped to [0,1] and
// quantized with colorspace.UnitToByte; sRGB formats encode R, G and B with
// colorspace.ToSRGB first. Channels the format does not store are dropped.
// For DepthFloat, c.X is stored as the depth. Out-of-bounds coordinates are
// silently ignored.
func (t *Texture) SetTexel(x, y int, c math3d.Vec4) {
	if !t.inBounds(x, y) {
		return
	}
	px := t.pixel(x, y)
	if t.format.IsDepth() {
		putDepth(px, c.X)
		return
	}

	channels := [4]float32{c.X, c.Y, c.Z, c.W}
	srgb := t.format.IsSRGB()
	for i := range px {
		v := math3d.Clamp01(channels[i])
		if srgb && i < 3 {
			v = colorspace.ToSRGB(v)
		}
		px[i] = colorspace.UnitToByte(v)
	}
}

// Depth returns the depth stored at (x, y). Out-of-bounds reads return
// MaxDepth. Depth panics if the texture is not DepthFloat.
func (t *Texture) Depth(x, y int) float32 {
	t.mustBeDepth("Depth")
	if !t.inBounds(x, y) {
		return MaxDepth
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(t.pixel(x, y)))
}

// SetDepth stores d at (x, y). Out-of-bounds writes are ignored.
// SetDepth panics if the texture is not DepthFloat.
func (t *Texture) SetDepth(x, y int, d float32) {
	t.mustBeDepth("SetDepth")
	if !t.inBounds(x, y) {
		return
	}
	putDepth(t.pixel(x, y), d)
}

// FillDepth stores d in every pixel of a DepthFloat texture.
func (t *Texture) FillDepth(d float32) {
	t.mustBeDepth("FillDepth")
	var px [4]byte
	putDepth(px[:], d)
	_ = t.SetPixels(px[:])
}

func (t *Texture) mustBeDepth(op string) {
	if !t.format.IsDepth() {
		panic(fmt.Sprintf("texture: %s on %s texture", op, t.format))
	}
}

func putDepth(px []byte, d float32) {
	binary.LittleEndian.PutUint32(px, math.Float32bits(d))
}

// decode converts one pixel's bytes into a float color.
func (t *Texture) decode(px []byte) math3d.Vec4 {
	if t.format.IsDepth() {
		d := math.Float32frombits(binary.LittleEndian.Uint32(px))
		if d != d {
			d = MaxDepth
		}
		d = math3d.Clamp01(d)
		return math3d.V4(d, d, d, 1)
	}

	unit := colorspace.ByteToUnit
	if t.format.IsSRGB() {
		unit = colorspace.LinearFromByte
	}

	c := math3d.V4(1, 1, 1, 1)
	switch len(px) {
	case 4:
		c.W = colorspace.ByteToUnit(px[3]) // alpha is always linear
		fallthrough
	case 3:
		c.Z = unit(px[2])
		fallthrough
	case 2:
		c.Y = unit(px[1])
		fallthrough
	case 1:
		c.X = unit(px[0])
	default:
		// Only reachable through a bad entry in formatInfoTable.
		panic(fmt.Sprintf("texture: cannot decode %d-byte %s pixel", len(px), t.format))
	}
	return c
}
