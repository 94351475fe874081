package blit

import "errors"

// Sentinel errors for surface construction and format handling.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("blit: invalid dimensions")

	// ErrInvalidFormat is returned when a PixelFormat fails validation.
	ErrInvalidFormat = errors.New("blit: invalid pixel format")

	// ErrInvalidPitch is returned when pitch is smaller than a tight row.
	ErrInvalidPitch = errors.New("blit: pitch too small for width")

	// ErrDataTooSmall is returned when a pixel buffer cannot hold pitch*h bytes.
	ErrDataTooSmall = errors.New("blit: pixel buffer too small")

	// ErrFormatMismatch is returned when no conversion is defined between
	// two pixel formats.
	ErrFormatMismatch = errors.New("blit: no conversion between pixel formats")
)
