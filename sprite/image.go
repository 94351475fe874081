// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import "fmt"

// Format is the pixel layout of a sprite Image.
type Format uint8

const (
	// Format565 stores 16-bit little-endian pixels, 5 bits red, 6 green,
	// 5 blue. Always opaque.
	Format565 Format = iota + 1

	// FormatRGB stores R, G, B bytes. Always opaque.
	FormatRGB

	// FormatRGBA stores R, G, B, A bytes with inverted alpha: 0 is opaque,
	// 255 is fully transparent.
	FormatRGBA
)

// BytesPerPixel returns the storage size of one pixel, or 0 for an unknown
// format.
func (f Format) BytesPerPixel() int {
	switch f {
	case Format565:
		return 2
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	}
	return 0
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Format565:
		return "565"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Image is a sprite: Width×Height pixels stored row by row without padding.
type Image struct {
	Width, Height int
	Format        Format
	Pix           []byte
}

// NewImage allocates a w×h sprite. RGBA sprites start fully transparent,
// the others black.
func NewImage(w, h int, f Format) *Image {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	im := &Image{Width: w, Height: h, Format: f, Pix: make([]byte, w*h*f.BytesPerPixel())}
	if f == FormatRGBA {
		for i := 3; i < len(im.Pix); i += 4 {
			im.Pix[i] = 0xFF
		}
	}
	return im
}

// Empty reports whether the sprite has no pixels to draw. Images of an
// unknown format are empty.
func (im *Image) Empty() bool {
	if im == nil || im.Width <= 0 || im.Height <= 0 {
		return true
	}
	bpp := im.Format.BytesPerPixel()
	return bpp == 0 || len(im.Pix) < im.Width*im.Height*bpp
}

// Pixel returns the color at (x, y). a uses inverted alpha and is 0 for
// formats without alpha. Coordinates must lie inside the sprite.
func (im *Image) Pixel(x, y int) (r, g, b, a uint8) {
	bpp := im.Format.BytesPerPixel()
	p := im.Pix[(y*im.Width+x)*bpp:]
	switch im.Format {
	case Format565:
		v := uint16(p[0]) | uint16(p[1])<<8
		r5, g6, b5 := uint8(v>>11), uint8(v>>5)&0x3F, uint8(v)&0x1F
		return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2, 0
	case FormatRGB:
		return p[0], p[1], p[2], 0
	default:
		return p[0], p[1], p[2], p[3]
	}
}

// SetPixel stores a color at (x, y). a uses inverted alpha and is ignored
// by formats without alpha. Coordinates must lie inside the sprite.
func (im *Image) SetPixel(x, y int, r, g, b, a uint8) {
	bpp := im.Format.BytesPerPixel()
	p := im.Pix[(y*im.Width+x)*bpp:]
	switch im.Format {
	case Format565:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		p[0], p[1] = byte(v), byte(v>>8)
	case FormatRGB:
		p[0], p[1], p[2] = r, g, b
	default:
		p[0], p[1], p[2], p[3] = r, g, b, a
	}
}

// isZero reports whether the stored pixel at (x, y) is all zero bytes, the
// color key of opaque formats.
func (im *Image) isZero(x, y int) bool {
	bpp := im.Format.BytesPerPixel()
	for _, v := range im.Pix[(y*im.Width+x)*bpp:][:bpp] {
		if v != 0 {
			return false
		}
	}
	return true
}
