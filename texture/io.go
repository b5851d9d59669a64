// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedImage is returned by Load for file extensions other than
// .png, .jpg and .jpeg.
var ErrUnsupportedImage = errors.New("texture: unsupported image file")

// Load reads a PNG or JPEG file into a texture of the given color format.
// The decoder is chosen by file extension.
func Load(path string, format PixelFormat) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return DecodePNG(f, format)
	case ".jpg", ".jpeg":
		return DecodeJPEG(f, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
}

// DecodePNG decodes a PNG stream into a texture. See FromImage.
func DecodePNG(r io.Reader, format PixelFormat) (*Texture, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode PNG: %w", err)
	}
	return FromImage(img, format)
}

// DecodeJPEG decodes a JPEG stream into a texture. See FromImage.
func DecodeJPEG(r io.Reader, format PixelFormat) (*Texture, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode JPEG: %w", err)
	}
	return FromImage(img, format)
}

// EncodePNG writes the texture as PNG. See ToImage for the channel mapping.
func (t *Texture) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.ToImage()); err != nil {
		return fmt.Errorf("texture: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the texture to a PNG file.
func (t *Texture) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("texture: create file: %w", err)
	}

	if err := t.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
