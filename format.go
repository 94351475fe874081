package blit

import "fmt"

// PixelFormat describes how color channels are packed into a pixel.
//
// A channel occupies (8 - Loss) bits starting at Shift. A Loss of 8 means
// the channel is absent. A format with every loss equal to 8 is an indexed
// (palette) format: the pixel value is a palette index.
//
// PixelFormat is a plain value; copy it freely.
type PixelFormat struct {
	BytesPerPixel int

	RLoss, GLoss, BLoss, ALoss     uint8
	RShift, GShift, BShift, AShift uint8
}

// Predefined formats. Multi-byte pixels are stored little-endian.
var (
	// CLUT8 is an 8-bit palette-indexed format.
	CLUT8 = PixelFormat{BytesPerPixel: 1, RLoss: 8, GLoss: 8, BLoss: 8, ALoss: 8}

	// RGB555 is 16-bit color with 5 bits per channel and the top bit unused.
	RGB555 = PixelFormat{BytesPerPixel: 2, RLoss: 3, GLoss: 3, BLoss: 3, ALoss: 8, RShift: 10, GShift: 5}

	// RGB565 is 16-bit color with 6 bits of green.
	RGB565 = PixelFormat{BytesPerPixel: 2, RLoss: 3, GLoss: 2, BLoss: 3, ALoss: 8, RShift: 11, GShift: 5}

	// RGB888 is 24-bit color, stored as B, G, R bytes.
	RGB888 = PixelFormat{BytesPerPixel: 3, ALoss: 8, RShift: 16, GShift: 8}

	// ARGB8888 is 32-bit color with alpha, stored as B, G, R, A bytes.
	ARGB8888 = PixelFormat{BytesPerPixel: 4, RShift: 16, GShift: 8, AShift: 24}

	// RGBA8888 is 32-bit color with alpha, stored as A, B, G, R bytes.
	RGBA8888 = PixelFormat{BytesPerPixel: 4, RShift: 24, GShift: 16, BShift: 8}

	// ABGR8888 is 32-bit color with alpha, stored as R, G, B, A bytes.
	// It matches the byte order of image.RGBA and image.NRGBA.
	ABGR8888 = PixelFormat{BytesPerPixel: 4, GShift: 8, BShift: 16, AShift: 24}
)

// IsCLUT8 reports whether f is an 8-bit indexed format.
func (f PixelFormat) IsCLUT8() bool {
	return f.BytesPerPixel == 1 && f.RLoss == 8 && f.GLoss == 8 && f.BLoss == 8 && f.ALoss == 8
}

// HasAlpha reports whether f carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	return f.ALoss < 8
}

func channelMask(loss, shift uint8) uint32 {
	if loss >= 8 {
		return 0
	}
	return (0xFF >> loss) << shift
}

// Masks returns the bit masks of the R, G, B and A channels.
func (f PixelFormat) Masks() (r, g, b, a uint32) {
	return channelMask(f.RLoss, f.RShift),
		channelMask(f.GLoss, f.GShift),
		channelMask(f.BLoss, f.BShift),
		channelMask(f.ALoss, f.AShift)
}

// Validate checks that the channel masks do not overlap and that
// BytesPerPixel matches the total mask width rounded up to a byte.
func (f PixelFormat) Validate() error {
	if f.BytesPerPixel < 1 || f.BytesPerPixel > 4 {
		return fmt.Errorf("%w: %d bytes per pixel", ErrInvalidFormat, f.BytesPerPixel)
	}
	if f.IsCLUT8() {
		return nil
	}
	r, g, b, a := f.Masks()
	if r&g != 0 || r&b != 0 || r&a != 0 || g&b != 0 || g&a != 0 || b&a != 0 {
		return fmt.Errorf("%w: overlapping channel masks", ErrInvalidFormat)
	}
	for _, m := range [...]struct{ loss, shift uint8 }{
		{f.RLoss, f.RShift}, {f.GLoss, f.GShift}, {f.BLoss, f.BShift}, {f.ALoss, f.AShift},
	} {
		if m.loss < 8 && int(m.shift)+int(8-m.loss) > 32 {
			return fmt.Errorf("%w: channel exceeds 32 bits", ErrInvalidFormat)
		}
	}
	top := 0
	for all := r | g | b | a; all != 0; all >>= 1 {
		top++
	}
	if top == 0 || (top+7)/8 != f.BytesPerPixel {
		return fmt.Errorf("%w: %d-bit masks in %d bytes", ErrInvalidFormat, top, f.BytesPerPixel)
	}
	return nil
}

// String returns a short description such as "RGB565" or "CLUT8".
func (f PixelFormat) String() string {
	switch f {
	case CLUT8:
		return "CLUT8"
	case RGB555:
		return "RGB555"
	case RGB565:
		return "RGB565"
	case RGB888:
		return "RGB888"
	case ARGB8888:
		return "ARGB8888"
	case RGBA8888:
		return "RGBA8888"
	case ABGR8888:
		return "ABGR8888"
	}
	return fmt.Sprintf("PixelFormat(%d bpp, R%d<<%d G%d<<%d B%d<<%d A%d<<%d)",
		f.BytesPerPixel,
		8-f.RLoss, f.RShift, 8-f.GLoss, f.GShift, 8-f.BLoss, f.BShift, 8-f.ALoss, f.AShift)
}

// RGBToColor packs an opaque color. Indexed formats return 0.
func (f PixelFormat) RGBToColor(r, g, b uint8) uint32 {
	return f.ARGBToColor(0xFF, r, g, b)
}

// ARGBToColor packs a color with alpha. The alpha is dropped when f has no
// alpha channel. Indexed formats return 0.
func (f PixelFormat) ARGBToColor(a, r, g, b uint8) uint32 {
	if f.IsCLUT8() {
		return 0
	}
	return pack(a, f.ALoss, f.AShift) |
		pack(r, f.RLoss, f.RShift) |
		pack(g, f.GLoss, f.GShift) |
		pack(b, f.BLoss, f.BShift)
}

func pack(v, loss, shift uint8) uint32 {
	if loss >= 8 {
		return 0
	}
	return uint32(v>>loss) << shift
}

// ColorToRGB unpacks the color channels of c.
func (f PixelFormat) ColorToRGB(c uint32) (r, g, b uint8) {
	_, r, g, b = f.ColorToARGB(c)
	return r, g, b
}

// ColorToARGB unpacks c. Narrow channels are expanded by bit replication so
// that full intensity maps to 255. Formats without alpha report 255.
func (f PixelFormat) ColorToARGB(c uint32) (a, r, g, b uint8) {
	a = 0xFF
	if f.ALoss < 8 {
		a = unpack(c, f.ALoss, f.AShift)
	}
	return a, unpack(c, f.RLoss, f.RShift), unpack(c, f.GLoss, f.GShift), unpack(c, f.BLoss, f.BShift)
}

func unpack(c uint32, loss, shift uint8) uint8 {
	if loss >= 8 {
		return 0
	}
	bits := 8 - int(loss)
	v := (c >> shift) & (0xFF >> loss)
	r := v << loss
	for s := int(loss) - bits; s > -bits; s -= bits {
		if s >= 0 {
			r |= v << uint(s)
		} else {
			r |= v >> uint(-s)
		}
	}
	return uint8(r)
}

// readPixel reads a little-endian pixel of bpp bytes from b.
func readPixel(b []byte, bpp int) uint32 {
	switch bpp {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(b[0]) | uint32(b[1])<<8
	case 3:
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	case 4:
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return 0
}

// writePixel stores c as a little-endian pixel of bpp bytes into b.
func writePixel(b []byte, bpp int, c uint32) {
	switch bpp {
	case 1:
		b[0] = byte(c)
	case 2:
		b[0], b[1] = byte(c), byte(c>>8)
	case 3:
		b[0], b[1], b[2] = byte(c), byte(c>>8), byte(c>>16)
	case 4:
		b[0], b[1], b[2], b[3] = byte(c), byte(c>>8), byte(c>>16), byte(c>>24)
	}
}

// ReadPixel decodes the pixel stored at the start of b in format f.
// It is the raw accessor used by code that works directly on Surface memory.
func (f PixelFormat) ReadPixel(b []byte) uint32 {
	return readPixel(b, f.BytesPerPixel)
}

// WritePixel encodes c at the start of b in format f.
func (f PixelFormat) WritePixel(b []byte, c uint32) {
	writePixel(b, f.BytesPerPixel, c)
}

// CheckConversion reports whether pixels can be copied from src to dst.
//
// Identical formats and indexed-to-indexed copies are always allowed
// (indexed values are copied raw, without palette remapping). Direct color
// converts to any other direct color format. Indexed to direct needs a
// source palette. Direct to indexed is never defined.
func CheckConversion(src, dst PixelFormat, hasPalette bool) error {
	switch {
	case src == dst:
		return nil
	case src.IsCLUT8() && dst.IsCLUT8():
		return nil
	case src.IsCLUT8():
		if hasPalette {
			return nil
		}
		return fmt.Errorf("%w: %v to %v without a palette", ErrFormatMismatch, src, dst)
	case dst.IsCLUT8():
		return fmt.Errorf("%w: %v to %v", ErrFormatMismatch, src, dst)
	}
	return nil
}
