// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"fmt"
)

// Sentinel errors for texture operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized or not
	// usable for the requested operation.
	ErrInvalidFormat = errors.New("texture: invalid format")

	// ErrEmptySource is returned by SetPixels for a zero-length source.
	ErrEmptySource = errors.New("texture: empty pixel source")

	// ErrSizeMismatch is matched by *SizeMismatchError.
	ErrSizeMismatch = errors.New("texture: pixel source larger than texture")
)

// SizeMismatchError is returned by SetPixels when the source holds more bytes
// than the texture can store.
type SizeMismatchError struct {
	Capacity int
	Got      int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("texture: pixel source of %d bytes exceeds capacity of %d bytes", e.Got, e.Capacity)
}

// Is reports whether target is ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}
