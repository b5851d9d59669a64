// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framebuffer provides render targets built from texture attachments.
//
// A FrameBuffer owns at most one color texture and one depth texture. Its
// size is the smallest extent shared by everything attached, so a
// rasterization pass bounded by Width and Height never indexes past any
// attachment.
package framebuffer

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/math3d"
	"github.com/gogpu/softras/texture"
)

// Sentinel errors for framebuffer operations.
var (
	// ErrFormatMismatch is returned when a texture's format cannot back the
	// requested attachment. The framebuffer is left unchanged.
	ErrFormatMismatch = errors.New("framebuffer: texture format does not match attachment")

	// ErrUnknownAttachment is returned for an AttachmentKind outside
	// Color and Depth.
	ErrUnknownAttachment = errors.New("framebuffer: unknown attachment kind")
)

// AttachmentKind selects a framebuffer slot.
type AttachmentKind uint8

const (
	// Color holds an RGBA8 or SRGB8A8 texture.
	Color AttachmentKind = iota

	// Depth holds a DepthFloat texture.
	Depth
)

func (k AttachmentKind) String() string {
	switch k {
	case Color:
		return "Color"
	case Depth:
		return "Depth"
	default:
		return "Unknown"
	}
}

// Accepts reports whether a texture of format f may be attached to k.
func (k AttachmentKind) Accepts(f texture.PixelFormat) bool {
	switch k {
	case Color:
		return f == texture.RGBA8 || f == texture.SRGB8A8
	case Depth:
		return f == texture.DepthFloat
	default:
		return false
	}
}

// FrameBuffer is a render target with optional color and depth attachments.
// The zero value is not usable; call New.
type FrameBuffer struct {
	width  int
	height int
	color  *texture.Texture
	depth  *texture.Texture
}

// New returns an empty 0x0 framebuffer.
func New() *FrameBuffer {
	return &FrameBuffer{}
}

// Attach places tex into the slot for kind and returns the texture it
// replaced, handing ownership of that texture back to the caller. A nil tex
// detaches the slot.
//
// If tex's format does not suit kind, Attach returns an error wrapping
// ErrFormatMismatch and the framebuffer keeps its previous attachments and
// size.
func (f *FrameBuffer) Attach(kind AttachmentKind, tex *texture.Texture) (*texture.Texture, error) {
	slot, err := f.slot(kind)
	if err != nil {
		return nil, err
	}
	if tex != nil && !kind.Accepts(tex.Format()) {
		softras.Logger().Warn("framebuffer: attachment rejected",
			"kind", kind.String(), "format", tex.Format().String())
		return nil, fmt.Errorf("%w: %s attachment cannot hold %s", ErrFormatMismatch, kind, tex.Format())
	}

	prev := *slot
	*slot = tex
	f.resize()

	softras.Logger().Debug("framebuffer: attachment changed",
		"kind", kind.String(), "attached", tex != nil, "width", f.width, "height", f.height)
	return prev, nil
}

// Detach empties the slot for kind and returns the texture it held.
func (f *FrameBuffer) Detach(kind AttachmentKind) (*texture.Texture, error) {
	return f.Attach(kind, nil)
}

// Attachment returns the texture in the slot for kind, or nil.
func (f *FrameBuffer) Attachment(kind AttachmentKind) *texture.Texture {
	switch kind {
	case Color:
		return f.color
	case Depth:
		return f.depth
	default:
		return nil
	}
}

// Width returns the framebuffer width in pixels.
func (f *FrameBuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *FrameBuffer) Height() int {
	return f.height
}

// Size returns (width, height).
func (f *FrameBuffer) Size() (int, int) {
	return f.width, f.height
}

func (f *FrameBuffer) slot(kind AttachmentKind) (**texture.Texture, error) {
	switch kind {
	case Color:
		return &f.color, nil
	case Depth:
		return &f.depth, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAttachment, kind)
	}
}

// resize sets the size to the minimum extent over the current attachments,
// or 0x0 when nothing is attached.
func (f *FrameBuffer) resize() {
	f.width, f.height = 0, 0
	first := true
	for _, tex := range [...]*texture.Texture{f.color, f.depth} {
		if tex == nil {
			continue
		}
		if first {
			f.width, f.height = tex.Size()
			first = false
			continue
		}
		f.width = min(f.width, tex.Width())
		f.height = min(f.height, tex.Height())
	}
}

// Clear resets every attachment within the framebuffer's extent: color
// pixels to the pass clear color and depth to texture.MaxDepth. A nil pass
// clears color to transparent black.
func (f *FrameBuffer) Clear(p *Pass) {
	var rgba [4]uint8
	if p != nil {
		rgba = p.clearColor
	}

	if f.color != nil {
		px := f.color.Pixels()
		stride := f.color.Width() * 4
		for y := range f.height {
			row := px[y*stride : y*stride+f.width*4]
			for i := 0; i < len(row); i += 4 {
				copy(row[i:i+4], rgba[:])
			}
		}
	}

	if f.depth != nil {
		for y := range f.height {
			for x := range f.width {
				f.depth.SetDepth(x, y, texture.MaxDepth)
			}
		}
	}
}

// DepthTest compares z with the stored depth at (x, y). If z is nearer, it is
// written and DepthTest returns true. Without a depth attachment every
// in-bounds fragment passes. Out-of-bounds coordinates always fail.
func (f *FrameBuffer) DepthTest(x, y int, z float32) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	if f.depth == nil {
		return true
	}
	if z >= f.depth.Depth(x, y) {
		return false
	}
	f.depth.SetDepth(x, y, z)
	return true
}

// WriteColor stores c at (x, y) in the color attachment, encoded for its
// format. Writes outside the framebuffer or without a color attachment are
// ignored.
func (f *FrameBuffer) WriteColor(x, y int, c math3d.Vec4) {
	if f.color == nil || x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.color.SetTexel(x, y, c)
}

// Image returns the color attachment cropped to the framebuffer size, or nil
// when no color texture is attached.
func (f *FrameBuffer) Image() *image.NRGBA {
	if f.color == nil {
		return nil
	}
	img := f.color.ToImage()
	return img.SubImage(image.Rect(0, 0, f.width, f.height)).(*image.NRGBA)
}
