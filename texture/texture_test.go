// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softras/math3d"
)

var allFormats = []PixelFormat{R8, RGB8, SRGB8, RGBA8, SRGB8A8, DepthFloat}

func TestFormatTable(t *testing.T) {
	tests := []struct {
		format PixelFormat
		bpp    int
		srgb   bool
		depth  bool
		gpu    gputypes.TextureFormat
		name   string
	}{
		{R8, 1, false, false, gputypes.TextureFormatR8Unorm, "R8"},
		{RGB8, 3, false, false, gputypes.TextureFormatUndefined, "RGB8"},
		{SRGB8, 3, true, false, gputypes.TextureFormatUndefined, "SRGB8"},
		{RGBA8, 4, false, false, gputypes.TextureFormatRGBA8Unorm, "RGBA8"},
		{SRGB8A8, 4, true, false, gputypes.TextureFormatRGBA8UnormSrgb, "SRGB8A8"},
		{DepthFloat, 4, false, true, gputypes.TextureFormatDepth32Float, "DepthFloat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.IsSRGB(); got != tt.srgb {
				t.Errorf("IsSRGB() = %v, want %v", got, tt.srgb)
			}
			if got := tt.format.IsDepth(); got != tt.depth {
				t.Errorf("IsDepth() = %v, want %v", got, tt.depth)
			}
			if got := tt.format.GPUFormat(); got != tt.gpu {
				t.Errorf("GPUFormat() = %v, want %v", got, tt.gpu)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if !tt.format.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}

	bad := PixelFormat(200)
	if bad.IsValid() || bad.BytesPerPixel() != 0 || bad.String() != "Unknown" {
		t.Errorf("unknown format: valid=%v bpp=%d name=%q", bad.IsValid(), bad.BytesPerPixel(), bad.String())
	}
}

func TestNewInvalid(t *testing.T) {
	dims := []struct{ w, h int }{
		{0, 10}, {10, 0}, {0, 0}, {-1, 4},
		{math.MaxInt/4 + 1, 1},   // w*h*4 overflows
		{math.MaxInt / 2, 3},     // w*h overflows
		{1 << 20, math.MaxInt/2}, // both large
	}
	for _, d := range dims {
		tex, err := New(RGBA8, d.w, d.h)
		if tex != nil || !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) = %v, %v; want nil, ErrInvalidDimensions", d.w, d.h, tex, err)
		}
	}
	if _, err := New(PixelFormat(99), 1, 1); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("New(unknown format) err = %v, want ErrInvalidFormat", err)
	}
}

func TestNewFillsBuffer(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			tex, err := New(f, 7, 5)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			px := tex.Pixels()
			if want := 7 * 5 * f.BytesPerPixel(); len(px) != want {
				t.Fatalf("len(Pixels()) = %d, want %d", len(px), want)
			}
			for i, b := range px {
				if b != 0xFF {
					t.Fatalf("byte %d = %#x, want 0xFF", i, b)
				}
			}
			if w, h := tex.Size(); w != 7 || h != 5 || tex.Width() != 7 || tex.Height() != 5 {
				t.Errorf("Size() = %d, %d", w, h)
			}
			if tex.Format() != f {
				t.Errorf("Format() = %v", tex.Format())
			}
		})
	}
}

func TestExtent(t *testing.T) {
	tex, _ := New(RGBA8, 64, 32)
	want := gputypes.Extent3D{Width: 64, Height: 32, DepthOrArrayLayers: 1}
	if got := tex.Extent(); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}
}

func TestSetPixelsFullReplace(t *testing.T) {
	tex, _ := New(R8, 100, 100)
	src := make([]byte, 100*100)
	for i := range src {
		src[i] = byte(i)
	}
	if err := tex.SetPixels(src); err != nil {
		t.Fatalf("SetPixels() error = %v", err)
	}
	if !bytes.Equal(tex.Pixels(), src) {
		t.Error("full-size SetPixels did not replace the buffer")
	}
}

func TestSetPixelsTiles(t *testing.T) {
	tex, _ := New(RGBA8, 3, 2)
	red := []byte{255, 0, 0, 255}
	if err := tex.SetPixels(red); err != nil {
		t.Fatalf("SetPixels() error = %v", err)
	}
	for i := 0; i < len(tex.Pixels()); i += 4 {
		if !bytes.Equal(tex.Pixels()[i:i+4], red) {
			t.Fatalf("pixel at byte %d = %v, want %v", i, tex.Pixels()[i:i+4], red)
		}
	}
}

func TestSetPixelsRemainderUntouched(t *testing.T) {
	tex, _ := New(RGB8, 3, 1) // 9 bytes
	if err := tex.SetPixels([]byte{1, 2}); err != nil {
		t.Fatalf("SetPixels() error = %v", err)
	}
	want := []byte{1, 2, 1, 2, 1, 2, 1, 2, 0xFF}
	if !bytes.Equal(tex.Pixels(), want) {
		t.Errorf("Pixels() = %v, want %v", tex.Pixels(), want)
	}
}

func TestSetPixelsTooLarge(t *testing.T) {
	tex, _ := New(RGBA8, 2, 2)
	before := append([]byte(nil), tex.Pixels()...)

	err := tex.SetPixels(make([]byte, 17))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
	var sizeErr *SizeMismatchError
	if !errors.As(err, &sizeErr) || sizeErr.Capacity != 16 || sizeErr.Got != 17 {
		t.Errorf("err = %#v, want capacity 16 got 17", err)
	}
	if !bytes.Equal(tex.Pixels(), before) {
		t.Error("buffer changed after rejected SetPixels")
	}
}

func TestSetPixelsEmpty(t *testing.T) {
	tex, _ := New(R8, 2, 2)
	if err := tex.SetPixels(nil); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}

func TestFill(t *testing.T) {
	tex, _ := New(RGB8, 4, 4)
	tex.Fill(math3d.V4(0, 1, 0, 1))
	for i := 0; i < len(tex.Pixels()); i += 3 {
		if got := tex.Pixels()[i : i+3]; !bytes.Equal(got, []byte{0, 255, 0}) {
			t.Fatalf("pixel at byte %d = %v", i, got)
		}
	}
}
