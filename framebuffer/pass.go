// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

import (
	"github.com/gogpu/softras/colorspace"
	"github.com/gogpu/softras/math3d"
)

// Pass carries the state a render pass applies when clearing a
// FrameBuffer. Separate passes share nothing, so they can run concurrently on
// different framebuffers.
type Pass struct {
	clearColor [4]uint8
}

// PassOption configures a Pass during creation.
type PassOption func(*Pass)

// WithClearColor sets the initial clear color. See Pass.SetClearColor.
func WithClearColor(r, g, b, a float32) PassOption {
	return func(p *Pass) {
		p.SetClearColor(r, g, b, a)
	}
}

// NewPass creates a pass whose clear color is transparent black unless an
// option sets it.
//
// Example:
//
//	pass := framebuffer.NewPass(framebuffer.WithClearColor(1, 0, 0, 1))
//	fb.Clear(pass)
func NewPass(opts ...PassOption) *Pass {
	p := &Pass{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetClearColor clamps each channel to [0,1] and quantizes it with
// colorspace.UnitToByte. The bytes are written as-is by Clear, without sRGB
// encoding.
func (p *Pass) SetClearColor(r, g, b, a float32) {
	p.clearColor = [4]uint8{
		colorspace.UnitToByte(math3d.Clamp01(r)),
		colorspace.UnitToByte(math3d.Clamp01(g)),
		colorspace.UnitToByte(math3d.Clamp01(b)),
		colorspace.UnitToByte(math3d.Clamp01(a)),
	}
}

// ClearColor returns the quantized RGBA clear color.
func (p *Pass) ClearColor() [4]uint8 {
	return p.clearColor
}
