// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/rle"
	"github.com/gogpu/blit/tile"
)

// ErrInvalidRLE is returned when RLE sprite data cannot be parsed.
var ErrInvalidRLE = errors.New("sprite: invalid rle sprite")

// rleHeaderSize is width, height and format as little-endian uint32.
const rleHeaderSize = 12

// MaxRLESize is the largest width or height UnmarshalBinary accepts.
const MaxRLESize = 1 << 14

// RLEImage is a sprite stored as one rle stream per row of packed pixels
// (r | g<<8 | b<<16 | a<<24, inverted alpha).
type RLEImage struct {
	Width, Height int
	// Format is the layout of the sprite the image was encoded from. It
	// decides whether ColorKey applies.
	Format Format
	rows   [][]uint32
}

// NewRLEImage encodes spr.
func NewRLEImage(spr *Image) *RLEImage {
	r := &RLEImage{Format: spr.Format}
	if spr.Empty() {
		return r
	}
	r.Width, r.Height = spr.Width, spr.Height
	r.rows = make([][]uint32, spr.Height)
	row := make([]uint32, spr.Width)
	for y := range r.rows {
		for x := range row {
			cr, cg, cb, ca := spr.Pixel(x, y)
			row[x] = tile.Pack(cr, cg, cb, ca)
		}
		r.rows[y] = rle.Encode(nil, row)
	}
	return r
}

// Len returns the number of encoded words.
func (r *RLEImage) Len() int {
	n := 0
	for _, row := range r.rows {
		n += len(row)
	}
	return n
}

// Image decodes r into an RGBA sprite.
func (r *RLEImage) Image() (*Image, error) {
	im := NewImage(r.Width, r.Height, FormatRGBA)
	var dec rle.Decoder
	for y, data := range r.rows {
		row, _, err := dec.Decode(data, r.Width)
		if err != nil {
			return nil, fmt.Errorf("sprite: row %d: %w", y, err)
		}
		for x, p := range row {
			cr, cg, cb, ca := tile.Unpack(p)
			im.SetPixel(x, y, cr, cg, cb, ca)
		}
	}
	return im, nil
}

// MarshalBinary encodes r as a little-endian header (width, height, format)
// followed by the row streams.
func (r *RLEImage) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, rleHeaderSize+r.Len()*4)
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Width))
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Height))
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Format))
	for _, row := range r.rows {
		b = rle.AppendBytes(b, row)
	}
	return b, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. Row boundaries
// are recovered by decoding each row. Sprites wider or taller than
// MaxRLESize are rejected before anything is allocated.
func (r *RLEImage) UnmarshalBinary(data []byte) error {
	if len(data) < rleHeaderSize {
		return fmt.Errorf("%w: short header", ErrInvalidRLE)
	}
	w := int(binary.LittleEndian.Uint32(data))
	h := int(binary.LittleEndian.Uint32(data[4:]))
	f := Format(binary.LittleEndian.Uint32(data[8:]))
	if f.BytesPerPixel() == 0 {
		return fmt.Errorf("%w: unknown format %d", ErrInvalidRLE, f)
	}
	words, err := rle.Words(data[rleHeaderSize:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRLE, err)
	}
	if w < 0 || h < 0 || w > MaxRLESize || h > MaxRLESize {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidRLE, w, h, MaxRLESize)
	}
	if (w == 0) != (h == 0) || (w > 0 && len(words) < 2*h) {
		return fmt.Errorf("%w: %dx%d with %d words", ErrInvalidRLE, w, h, len(words))
	}

	rows := make([][]uint32, h)
	scratch := make([]uint32, w)
	for y := range rows {
		n, err := rle.Decode(scratch, words)
		if err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrInvalidRLE, y, err)
		}
		rows[y] = words[:n:n]
		words = words[n:]
	}
	if len(words) != 0 {
		return fmt.Errorf("%w: %d trailing words", ErrInvalidRLE, len(words))
	}
	r.Width, r.Height, r.Format, r.rows = w, h, f, rows
	return nil
}

// PutRLE draws r unscaled with its top-left corner at (x, y). Rows are
// decoded into the dispatcher's scratch buffer as they become visible.
func (d *Dispatcher) PutRLE(x, y int, r *RLEImage, flags Flags) {
	if d.indexed || r == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	vis := image.Rect(x, y, x+r.Width, y+r.Height).Intersect(d.clip)
	if vis.Empty() {
		return
	}
	key := flags&ColorKey != 0 && r.Format != FormatRGBA
	k := ink{}
	for py := vis.Min.Y; py < vis.Max.Y; py++ {
		sy := py - y
		if flags&FlipVertical != 0 {
			sy = r.Height - 1 - sy
		}
		row, _, err := d.dec.Decode(r.rows[sy], r.Width)
		if err != nil {
			blit.Logger().Warn("sprite: rle row skipped", "row", sy, "err", err)
			continue
		}
		for px := vis.Min.X; px < vis.Max.X; px++ {
			sx := px - x
			if flags&FlipHorizontal != 0 {
				sx = r.Width - 1 - sx
			}
			p := row[sx]
			if key && p&0xFFFFFF == 0 {
				continue
			}
			cr, cg, cb, ca := tile.Unpack(p)
			d.put(px, py, cr, cg, cb, ca, &k)
		}
	}
}
