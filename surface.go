package blit

import "image"

// Surface is a flat pixel buffer view: width, height, pitch, format and the
// pixel memory. Pix[0] is the first byte of pixel (0, 0); row y starts at
// Pix[y*Pitch].
//
// A Surface never owns its memory. Copying a Surface copies the view, not
// the pixels. Ownership belongs to a ManagedSurface or to the caller.
//
// Surface performs no dirty tracking. Its accessors trust the caller:
// GetBasePtr does not clip, and an out-of-range coordinate panics with an
// index error rather than reading foreign memory.
type Surface struct {
	W, H   int
	Pitch  int
	Format PixelFormat
	Pix    []byte
}

// NewSurface wraps caller-owned pixel memory.
func NewSurface(pix []byte, w, h, pitch int, format PixelFormat) (Surface, error) {
	if w < 0 || h < 0 {
		return Surface{}, ErrInvalidDimensions
	}
	if err := format.Validate(); err != nil {
		return Surface{}, err
	}
	if pitch < w*format.BytesPerPixel {
		return Surface{}, ErrInvalidPitch
	}
	if w > 0 && h > 0 && len(pix) < (h-1)*pitch+w*format.BytesPerPixel {
		return Surface{}, ErrDataTooSmall
	}
	return Surface{W: w, H: h, Pitch: pitch, Format: format, Pix: pix}, nil
}

// Bounds returns the rectangle (0, 0, W, H).
func (s Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// Empty reports whether the surface has no pixels to draw on.
func (s Surface) Empty() bool {
	return s.W <= 0 || s.H <= 0 || len(s.Pix) == 0
}

// PixelOffset returns the index into Pix of pixel (x, y).
func (s Surface) PixelOffset(x, y int) int {
	return y*s.Pitch + x*s.Format.BytesPerPixel
}

// GetBasePtr returns the pixel memory starting at (x, y).
// The caller must ensure 0 <= x < W and 0 <= y < H.
func (s Surface) GetBasePtr(x, y int) []byte {
	return s.Pix[s.PixelOffset(x, y):]
}

// GetPixel returns the raw pixel value at (x, y). Unchecked.
func (s Surface) GetPixel(x, y int) uint32 {
	return readPixel(s.Pix[s.PixelOffset(x, y):], s.Format.BytesPerPixel)
}

// SetPixel stores a raw pixel value at (x, y). Unchecked.
func (s Surface) SetPixel(x, y int, c uint32) {
	writePixel(s.Pix[s.PixelOffset(x, y):], s.Format.BytesPerPixel, c)
}

// GetSubArea returns a Surface aliasing the part of s inside r.
// The result shares Pix and Pitch with s; its origin is r.Min clipped
// to the bounds of s.
func (s Surface) GetSubArea(r image.Rectangle) Surface {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return Surface{Pitch: s.Pitch, Format: s.Format}
	}
	return Surface{
		W:      r.Dx(),
		H:      r.Dy(),
		Pitch:  s.Pitch,
		Format: s.Format,
		Pix:    s.Pix[s.PixelOffset(r.Min.X, r.Min.Y):],
	}
}

// row returns the bytes of pixels [x0, x1) on row y.
func (s Surface) row(y, x0, x1 int) []byte {
	bpp := s.Format.BytesPerPixel
	off := y*s.Pitch + x0*bpp
	return s.Pix[off : off+(x1-x0)*bpp]
}
