// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture provides format-aware pixel buffers and sampling.
//
// A Texture owns a tightly packed, row-major byte buffer. Pixel (x, y) starts
// at byte (x + y*width) * BytesPerPixel, channels interleaved in R, G, B, A
// order. This layout is the contract for any external producer such as an
// asset loader.
package texture

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/math3d"
)

// fillByte is the initial value of every byte of a new texture.
const fillByte = 0xFF

// Texture is a width x height pixel buffer in a fixed PixelFormat.
//
// len(Pixels()) == width*height*format.BytesPerPixel() always holds.
// Texture is not safe for concurrent mutation.
type Texture struct {
	format PixelFormat
	width  int
	height int
	pixels []byte
}

// New creates a texture with every byte set to 0xFF. It returns
// ErrInvalidDimensions if either dimension is not positive or the buffer
// size would overflow int.
//
// For color formats that is full intensity. For DepthFloat the bytes form a
// NaN pattern and the texture must be cleared (framebuffer.FrameBuffer.Clear
// or FillDepth) before depth testing against it.
func New(format PixelFormat, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if width > math.MaxInt/height/format.BytesPerPixel() {
		return nil, ErrInvalidDimensions
	}

	pixels := make([]byte, format.ImageBytes(width, height))
	for i := range pixels {
		pixels[i] = fillByte
	}

	softras.Logger().Debug("texture: created",
		"format", format.String(), "width", width, "height", height, "bytes", len(pixels))

	return &Texture{
		format: format,
		width:  width,
		height: height,
		pixels: pixels,
	}, nil
}

// Format returns the pixel format.
func (t *Texture) Format() PixelFormat {
	return t.format
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Size returns (width, height).
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// Extent returns the texture size as a single-layer gputypes.Extent3D.
func (t *Texture) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(t.width),  //nolint:gosec // G115: width > 0 checked in New
		Height:             uint32(t.height), //nolint:gosec // G115: height > 0 checked in New
		DepthOrArrayLayers: 1,
	}
}

// Pixels returns the raw pixel buffer. The slice aliases the texture's
// storage; writes through it are visible to Sample.
func (t *Texture) Pixels() []byte {
	return t.pixels
}

// SetPixels replaces the buffer contents by tiling src.
//
// The buffer is split into consecutive chunks of len(src) bytes and src is
// copied into each one, so a single pixel's bytes fill the whole texture and
// a full-size source replaces it outright. A trailing remainder shorter than
// len(src) keeps its previous contents.
//
// If src is longer than the buffer, a *SizeMismatchError is returned and the
// buffer is unchanged.
func (t *Texture) SetPixels(src []byte) error {
	if len(src) == 0 {
		return ErrEmptySource
	}
	if len(src) > len(t.pixels) {
		softras.Logger().Warn("texture: pixel source rejected",
			"format", t.format.String(), "capacity", len(t.pixels), "got", len(src))
		return &SizeMismatchError{Capacity: len(t.pixels), Got: len(src)}
	}

	for off := 0; off+len(src) <= len(t.pixels); off += len(src) {
		copy(t.pixels[off:], src)
	}
	return nil
}

// Fill sets every pixel to c, encoded as SetTexel would.
func (t *Texture) Fill(c math3d.Vec4) {
	t.SetTexel(0, 0, c)
	_ = t.SetPixels(append([]byte(nil), t.pixel(0, 0)...))
}

// inBounds reports whether (x, y) addresses a pixel.
func (t *Texture) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// pixel returns the bytes of pixel (x, y). Coordinates must be in bounds.
func (t *Texture) pixel(x, y int) []byte {
	bpp := t.format.BytesPerPixel()
	i := (x + y*t.width) * bpp
	return t.pixels[i : i+bpp]
}
