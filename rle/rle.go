// Package rle implements the run-length codec used for tile and sprite
// pixel data.
//
// A stream is a sequence of records over 32-bit pixel words:
//
//	count, pixel                 solid run: pixel repeated count times
//	count|Flag, p1, p2, … pcount literal run: count pixels copied as is
//
// Counts are never zero. A stream decodes to a known number of pixels;
// the decoder rejects streams that stop short of it or overrun it.
package rle

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Flag marks a literal record header.
const Flag uint32 = 1 << 31

// maxCount is the largest count a header can carry.
const maxCount = int(Flag - 1)

// ErrCorrupt is returned when a stream does not decode to the expected
// number of pixels.
var ErrCorrupt = errors.New("rle: corrupt stream")

// Encode appends the encoding of src to dst and returns the extended slice.
//
// Runs of two or more equal pixels become solid records. Everything else is
// gathered into literal records, which keep absorbing pixels until a run of
// at least three starts, so alternating data does not explode into one
// record per pixel.
func Encode(dst, src []uint32) []uint32 {
	n := len(src)
	for i := 0; i < n; {
		if r := runLength(src, i, maxCount); r >= 2 {
			dst = append(dst, uint32(r), src[i])
			i += r
			continue
		}
		j := i + 1
		for j < n && j-i < maxCount && runLength(src, j, 3) < 3 {
			j++
		}
		dst = append(dst, uint32(j-i)|Flag)
		dst = append(dst, src[i:j]...)
		i = j
	}
	return dst
}

// runLength counts equal pixels starting at i, up to limit.
func runLength(src []uint32, i, limit int) int {
	r := 1
	for i+r < len(src) && r < limit && src[i+r] == src[i] {
		r++
	}
	return r
}

// Decode fills dst from data and returns the number of words consumed.
// The records must cover len(dst) pixels exactly.
func Decode(dst, data []uint32) (int, error) {
	pos, i := 0, 0
	for pos < len(dst) {
		if i >= len(data) {
			return i, fmt.Errorf("%w: %d of %d pixels", ErrCorrupt, pos, len(dst))
		}
		h := data[i]
		i++
		count := int(h &^ Flag)
		if count == 0 || pos+count > len(dst) {
			return i, fmt.Errorf("%w: record of %d at pixel %d of %d", ErrCorrupt, count, pos, len(dst))
		}
		if h&Flag != 0 {
			if i+count > len(data) {
				return i, fmt.Errorf("%w: literal run truncated", ErrCorrupt)
			}
			copy(dst[pos:pos+count], data[i:i+count])
			i += count
		} else {
			if i >= len(data) {
				return i, fmt.Errorf("%w: solid run truncated", ErrCorrupt)
			}
			v := data[i]
			i++
			for k := pos; k < pos+count; k++ {
				dst[k] = v
			}
		}
		pos += count
	}
	return i, nil
}

// Decoder decodes streams into a reusable scratch buffer.
// The zero value is ready to use. A Decoder is not safe for concurrent use.
type Decoder struct {
	scratch []uint32
}

// Decode decodes n pixels from data. The returned slice is valid until the
// next call.
func (d *Decoder) Decode(data []uint32, n int) ([]uint32, int, error) {
	if cap(d.scratch) < n {
		d.scratch = make([]uint32, n)
	}
	out := d.scratch[:n]
	used, err := Decode(out, data)
	return out, used, err
}

// AppendBytes appends words to b as little-endian bytes.
func AppendBytes(b []byte, words []uint32) []byte {
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// Words converts little-endian bytes back to words. Trailing bytes that do
// not form a whole word are an error.
func Words(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrCorrupt, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words, nil
}
