// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"image"
	"image/color"

	"github.com/gogpu/softras/colorspace"
)

// ToImage converts the texture to an *image.NRGBA.
//
// Color bytes are copied unchanged, so sRGB textures export their encoded
// values. Missing alpha becomes 255. R8 and DepthFloat export as greyscale.
func (t *Texture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	for y := range t.height {
		for x := range t.width {
			img.SetNRGBA(x, y, t.nrgbaAt(x, y))
		}
	}
	return img
}

func (t *Texture) nrgbaAt(x, y int) color.NRGBA {
	if t.format.IsDepth() {
		d := t.decode(t.pixel(x, y)).X
		g := colorspace.UnitToByte(d)
		return color.NRGBA{R: g, G: g, B: g, A: 255}
	}

	px := t.pixel(x, y)
	switch len(px) {
	case 1:
		return color.NRGBA{R: px[0], G: px[0], B: px[0], A: 255}
	case 3:
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
	default:
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
	}
}

// FromImage creates a texture in the given color format from img.
//
// Pixels are converted to non-premultiplied 8-bit RGBA and the channels the
// format stores are copied as-is; for SRGB8 and SRGB8A8 the image is assumed to
// already be sRGB-encoded, which is true of decoded PNG and JPEG files.
// DepthFloat is not supported and returns ErrInvalidFormat.
func FromImage(img image.Image, format PixelFormat) (*Texture, error) {
	if format.IsDepth() {
		return nil, ErrInvalidFormat
	}

	b := img.Bounds()
	t, err := New(format, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	for y := range t.height {
		for x := range t.width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			rgba := [4]byte{c.R, c.G, c.B, c.A}
			copy(t.pixel(x, y), rgba[:])
		}
	}
	return t, nil
}
