// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import "github.com/gogpu/gputypes"

// PixelFormat identifies the layout of a texture's pixel bytes.
type PixelFormat uint8

const (
	// R8 is a single 8-bit red channel (1 byte per pixel).
	R8 PixelFormat = iota

	// RGB8 is 24-bit linear RGB (3 bytes per pixel).
	RGB8

	// SRGB8 is 24-bit sRGB-encoded RGB (3 bytes per pixel).
	// Sampling converts R, G and B to linear.
	SRGB8

	// RGBA8 is 32-bit linear RGBA (4 bytes per pixel).
	RGBA8

	// SRGB8A8 is 32-bit sRGB-encoded RGB with linear alpha (4 bytes per pixel).
	SRGB8A8

	// DepthFloat stores one little-endian IEEE-754 float32 depth per pixel
	// (4 bytes per pixel).
	DepthFloat

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of stored channels.
	Channels int

	// IsSRGB reports whether R, G and B are sRGB-encoded.
	IsSRGB bool

	// IsDepth reports whether the pixel holds a float32 depth value.
	IsDepth bool

	// GPUFormat is the matching WebGPU format, or TextureFormatUndefined when
	// the GPU has no equivalent (3-byte formats).
	GPUFormat gputypes.TextureFormat

	name string
}

var formatInfoTable = [formatCount]FormatInfo{
	R8: {
		BytesPerPixel: 1,
		Channels:      1,
		GPUFormat:     gputypes.TextureFormatR8Unorm,
		name:          "R8",
	},
	RGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		GPUFormat:     gputypes.TextureFormatUndefined,
		name:          "RGB8",
	},
	SRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		IsSRGB:        true,
		GPUFormat:     gputypes.TextureFormatUndefined,
		name:          "SRGB8",
	},
	RGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		GPUFormat:     gputypes.TextureFormatRGBA8Unorm,
		name:          "RGBA8",
	},
	SRGB8A8: {
		BytesPerPixel: 4,
		Channels:      4,
		IsSRGB:        true,
		GPUFormat:     gputypes.TextureFormatRGBA8UnormSrgb,
		name:          "SRGB8A8",
	},
	DepthFloat: {
		BytesPerPixel: 4,
		Channels:      1,
		IsDepth:       true,
		GPUFormat:     gputypes.TextureFormatDepth32Float,
		name:          "DepthFloat",
	},
}

// Info returns the FormatInfo for this format.
// Unknown formats return the zero FormatInfo.
func (f PixelFormat) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f PixelFormat) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsSRGB reports whether the color channels are sRGB-encoded.
func (f PixelFormat) IsSRGB() bool {
	return f.Info().IsSRGB
}

// IsDepth reports whether this is the depth format.
func (f PixelFormat) IsDepth() bool {
	return f.Info().IsDepth
}

// GPUFormat returns the equivalent gputypes.TextureFormat for uploads.
func (f PixelFormat) GPUFormat() gputypes.TextureFormat {
	return f.Info().GPUFormat
}

// IsValid returns true if the format is a known format.
func (f PixelFormat) IsValid() bool {
	return f < formatCount
}

// ImageBytes returns the size of a width x height pixel buffer in this format.
// The product is not checked for overflow; New rejects sizes that overflow.
func (f PixelFormat) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}

func (f PixelFormat) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return formatInfoTable[f].name
}
