package font

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// CRYOFONT layout, all integers big-endian:
//
//	magic     [8]byte  "CRYOFONT"
//	reserved  [3]uint16
//	height    int16    maximum glyph height
//	comment   [32]byte NUL padded
//	glyphs    cryoCount records for codes cryoFirst..cryoLast:
//	    height, width uint16
//	    offsetX, offsetY int16
//	    advance uint16
//	    rows   ((width+7)/8)*height bytes, bit-packed
const (
	cryoMagic     = "CRYOFONT"
	cryoFirst     = 32
	cryoLast      = 254
	cryoCount     = cryoLast - cryoFirst + 1
	maxGlyphSize  = 1024
	cryoNameBytes = 32
)

type cryoHeader struct {
	Magic   [8]byte
	_       [3]uint16
	Height  int16
	Comment [cryoNameBytes]byte
}

type cryoGlyph struct {
	Height, Width    uint16
	OffsetX, OffsetY int16
	Advance          uint16
}

// LoadCryo reads a CRYOFONT bitmap font. Glyph codes are 8-bit; runes are
// mapped through Windows-1252 unless WithCharmap says otherwise.
func LoadCryo(r io.Reader, opts ...Option) (*Font, error) {
	o := newOptions(opts, options{charmap: charmap.Windows1252})
	br := bufio.NewReader(r)

	var h cryoHeader
	if err := binary.Read(br, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("font: cryo header: %w", err)
	}
	if string(h.Magic[:]) != cryoMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFont, h.Magic[:])
	}
	if h.Height < 0 {
		return nil, fmt.Errorf("%w: negative height %d", ErrInvalidFont, h.Height)
	}

	name := string(bytes.TrimRight(h.Comment[:], "\x00 "))
	f := newFont(name, int(h.Height), o)
	f.glyphs = make(map[rune]*Glyph, cryoCount)
	for code := cryoFirst; code <= cryoLast; code++ {
		var rec cryoGlyph
		if err := binary.Read(br, binary.BigEndian, &rec); err != nil {
			return nil, fmt.Errorf("font: cryo glyph %d: %w", code, err)
		}
		if rec.Width > maxGlyphSize || rec.Height > maxGlyphSize {
			return nil, fmt.Errorf("%w: glyph %d is %dx%d", ErrInvalidFont, code, rec.Width, rec.Height)
		}
		g := &Glyph{
			Width:    int(rec.Width),
			Height:   int(rec.Height),
			OffsetX:  int(rec.OffsetX),
			OffsetY:  int(rec.OffsetY),
			Advance:  int(rec.Advance),
			Encoding: BitPacked,
		}
		g.Data = make([]byte, g.Stride()*g.Height)
		if _, err := io.ReadFull(br, g.Data); err != nil {
			return nil, fmt.Errorf("font: cryo glyph %d rows: %w", code, err)
		}
		// A record with no pixels and no advance marks a missing code.
		if g.Width == 0 && g.Height == 0 && g.Advance == 0 {
			continue
		}
		f.glyphs[rune(code)] = g
	}
	return f, nil
}

// WriteCryo writes f as a CRYOFONT file. Each code 32..254 is decoded
// through Windows-1252 when f is indexed by rune, and the matching glyph
// is stored bit-packed. Codes f lacks are written as empty records.
func WriteCryo(w io.Writer, f *Font) error {
	bw := bufio.NewWriter(w)
	h := cryoHeader{Height: int16(min(f.height, maxGlyphSize))}
	copy(h.Magic[:], cryoMagic)
	copy(h.Comment[:], f.name)
	if err := binary.Write(bw, binary.BigEndian, &h); err != nil {
		return fmt.Errorf("font: cryo header: %w", err)
	}

	for code := cryoFirst; code <= cryoLast; code++ {
		var g *Glyph
		if f.charmap != nil {
			g = f.lookup(rune(code))
		} else {
			g = f.lookup(charmap.Windows1252.DecodeByte(byte(code)))
		}
		rec := cryoGlyph{}
		var data []byte
		if g != nil {
			bits := packBits(g)
			rec = cryoGlyph{
				Height:  uint16(bits.Height),
				Width:   uint16(bits.Width),
				OffsetX: int16(bits.OffsetX),
				OffsetY: int16(bits.OffsetY),
				Advance: uint16(bits.Advance),
			}
			if bits.valid() {
				data = bits.Data[:bits.Stride()*bits.Height]
			} else {
				rec.Width, rec.Height = 0, 0
			}
		}
		if err := binary.Write(bw, binary.BigEndian, &rec); err != nil {
			return fmt.Errorf("font: cryo glyph %d: %w", code, err)
		}
		if _, err := bw.Write(data); err != nil {
			return fmt.Errorf("font: cryo glyph %d rows: %w", code, err)
		}
	}
	return bw.Flush()
}
