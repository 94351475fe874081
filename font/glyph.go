// Package font rasterizes bitmap glyphs onto blit surfaces.
//
// Glyphs are masks: "on" pixels are painted in the requested color and
// "off" pixels leave the destination untouched. A glyph is stored either
// bit-packed (one bit per pixel, MSB first) or byte-packed (one byte per
// pixel, non-zero is on).
//
// Fonts come from three sources:
//
//   - LoadCryo reads the CRYOFONT bitmap format (8-bit character codes)
//   - NewBasicFont adapts a golang.org/x/image/font/basicfont face
//   - LoadOutline rasterizes an OpenType/TrueType font at a pixel size
//
// A Manager holds several fonts and draws strings onto managed surfaces,
// marking the touched area dirty.
package font

import (
	"image"

	"github.com/gogpu/blit"
)

// Encoding is the storage layout of glyph pixels.
type Encoding uint8

const (
	// BitPacked stores (Width+7)/8 bytes per row, most significant bit
	// first.
	BitPacked Encoding = iota

	// BytePacked stores one byte per pixel. Non-zero bytes are on.
	BytePacked
)

// String returns the encoding name.
func (e Encoding) String() string {
	if e == BitPacked {
		return "bit-packed"
	}
	return "byte-packed"
}

// Glyph is a single character bitmap.
type Glyph struct {
	Width, Height int
	// OffsetX and OffsetY place the bitmap relative to the pen position,
	// which is the top-left corner of the text line.
	OffsetX, OffsetY int
	// Advance is the horizontal distance to the next pen position.
	Advance  int
	Encoding Encoding
	Data     []byte
}

// Stride returns the number of bytes per glyph row.
func (g *Glyph) Stride() int {
	if g.Encoding == BitPacked {
		return (g.Width + 7) / 8
	}
	return g.Width
}

// valid reports whether Data holds every row.
func (g *Glyph) valid() bool {
	return g.Width > 0 && g.Height > 0 && len(g.Data) >= g.Stride()*g.Height
}

// On reports whether pixel (x, y) of the glyph is set.
func (g *Glyph) On(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height || !g.valid() {
		return false
	}
	row := g.Data[y*g.Stride():]
	if g.Encoding == BitPacked {
		return row[x>>3]&(0x80>>(x&7)) != 0
	}
	return row[x] != 0
}

// DrawGlyph paints the on pixels of g in color c, packed in dst's format,
// with the pen at (x, y). Rows and columns outside dst are skipped, so a
// glyph hanging off any edge is drawn partially. It returns the clipped
// glyph box, which is empty when nothing could be drawn.
func DrawGlyph(dst blit.Surface, g *Glyph, x, y int, c uint32) image.Rectangle {
	if g == nil || !g.valid() || dst.Empty() {
		return image.Rectangle{}
	}
	box := image.Rect(0, 0, g.Width, g.Height).Add(image.Pt(x+g.OffsetX, y+g.OffsetY))
	vis := box.Intersect(dst.Bounds())
	if vis.Empty() {
		return image.Rectangle{}
	}

	stride := g.Stride()
	for py := vis.Min.Y; py < vis.Max.Y; py++ {
		row := g.Data[(py-box.Min.Y)*stride:]
		for px := vis.Min.X; px < vis.Max.X; px++ {
			gx := px - box.Min.X
			switch g.Encoding {
			case BitPacked:
				if row[gx>>3]&(0x80>>(gx&7)) == 0 {
					continue
				}
			default:
				if row[gx] == 0 {
					continue
				}
			}
			dst.SetPixel(px, py, c)
		}
	}
	return vis
}

// packBits converts g to a bit-packed copy.
func packBits(g *Glyph) *Glyph {
	if g.Encoding == BitPacked {
		return g
	}
	out := &Glyph{
		Width: g.Width, Height: g.Height,
		OffsetX: g.OffsetX, OffsetY: g.OffsetY,
		Advance:  g.Advance,
		Encoding: BitPacked,
	}
	if !g.valid() {
		return out
	}
	stride := out.Stride()
	out.Data = make([]byte, stride*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.On(x, y) {
				out.Data[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return out
}
