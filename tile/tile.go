// Package tile provides fixed-size square sprites for batched compositing.
//
// A tile holds Size×Size pixels packed as r | g<<8 | b<<16 | a<<24. Alpha
// uses the inverted sprite convention: 0 is opaque, 255 is fully
// transparent. Tiles compress with the rle codec and deduplicate through a
// Set whose Comparator accepts small per-channel differences.
package tile

import (
	"fmt"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/rle"
)

// Size is the edge length of a tile in pixels.
const Size = 16

// Pixels is the number of pixels in a tile.
const Pixels = Size * Size

// Transparent is a fully transparent packed pixel.
const Transparent uint32 = 0xFF << 24

// Pack packs channels into a tile pixel. a uses inverted alpha.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Unpack splits a tile pixel into channels. a uses inverted alpha.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// Sprite is a Size×Size tile. The zero value is fully opaque black.
type Sprite struct {
	pix [Pixels]uint32
}

// At returns the pixel at (x, y). Coordinates outside the tile return
// Transparent.
func (s *Sprite) At(x, y int) uint32 {
	if uint(x) >= Size || uint(y) >= Size {
		return Transparent
	}
	return s.pix[y*Size+x]
}

// Set stores p at (x, y). Coordinates outside the tile are ignored.
func (s *Sprite) Set(x, y int, p uint32) {
	if uint(x) >= Size || uint(y) >= Size {
		return
	}
	s.pix[y*Size+x] = p
}

// Pixels returns the tile pixels in row-major order. The slice aliases the
// tile.
func (s *Sprite) Pixels() []uint32 {
	return s.pix[:]
}

// Row returns row y of the tile.
func (s *Sprite) Row(y int) []uint32 {
	return s.pix[y*Size : (y+1)*Size]
}

// Compress returns the rle encoding of the tile.
func (s *Sprite) Compress() []uint32 {
	return rle.Encode(nil, s.pix[:])
}

// Decompress decodes a tile produced by Compress. The stream must cover
// exactly Pixels pixels.
func Decompress(data []uint32) (*Sprite, error) {
	s := &Sprite{}
	used, err := rle.Decode(s.pix[:], data)
	if err != nil {
		return nil, fmt.Errorf("tile: decompress: %w", err)
	}
	if used != len(data) {
		return nil, fmt.Errorf("tile: decompress: %w: %d trailing words", rle.ErrCorrupt, len(data)-used)
	}
	return s, nil
}

// FromPixels builds a tile from Pixels packed pixels.
func FromPixels(pix []uint32) (*Sprite, error) {
	if len(pix) != Pixels {
		return nil, fmt.Errorf("%w: got %d pixels", ErrSize, len(pix))
	}
	s := &Sprite{}
	copy(s.pix[:], pix)
	return s, nil
}

// FromSurface cuts the tile whose top-left corner is (x, y) out of src.
// Conventional source alpha is inverted; formats without alpha produce
// opaque pixels. Parts of the tile outside src are Transparent.
func FromSurface(src blit.Surface, x, y int) (*Sprite, error) {
	if src.Format.IsCLUT8() {
		return nil, fmt.Errorf("tile: %w: %v has no direct color", blit.ErrFormatMismatch, src.Format)
	}
	s := &Sprite{}
	for ty := 0; ty < Size; ty++ {
		for tx := 0; tx < Size; tx++ {
			sx, sy := x+tx, y+ty
			if sx < 0 || sy < 0 || sx >= src.W || sy >= src.H {
				s.pix[ty*Size+tx] = Transparent
				continue
			}
			a, r, g, b := src.Format.ColorToARGB(src.GetPixel(sx, sy))
			s.pix[ty*Size+tx] = Pack(r, g, b, 255-a)
		}
	}
	return s, nil
}

// Comparator compares tiles with a per-byte tolerance.
type Comparator struct {
	// Tolerance is the largest per-channel difference still considered equal.
	Tolerance uint8
}

// Equal reports whether every channel of a and b differs by at most
// c.Tolerance.
func (c Comparator) Equal(a, b *Sprite) bool {
	if c.Tolerance == 0 {
		return a.pix == b.pix
	}
	tol := int(c.Tolerance)
	for i, pa := range a.pix {
		pb := b.pix[i]
		if pa == pb {
			continue
		}
		for shift := 0; shift < 32; shift += 8 {
			d := int(uint8(pa>>shift)) - int(uint8(pb>>shift))
			if d > tol || -d > tol {
				return false
			}
		}
	}
	return true
}
