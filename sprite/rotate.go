// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"image"
	"math"
)

// PutSprRot draws spr rotated clockwise by angle radians about its center.
// (x, y) is where the unrotated sprite's top-left corner would be.
//
// Multiples of a quarter turn take an exact index remap. Other angles
// inverse-map every pixel of the bounding box
// (|cos|*w + |sin|*h + 2 by |sin|*w + |cos|*h + 2) back into the sprite;
// pixels that land outside it are left untouched.
func (d *Dispatcher) PutSprRot(x, y int, spr *Image, angle float64, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	d.rotate(x, y, &src, angle, 1, 1, flags, &ink{})
}

// PutSprRotScaled draws spr scaled by (sx, sy) and then rotated by angle.
func (d *Dispatcher) PutSprRotScaled(x, y int, spr *Image, angle, sx, sy float64, flags Flags) {
	if spr.Empty() || sx <= 0 || sy <= 0 {
		return
	}
	src := imageSource(spr, flags)
	d.rotate(x, y, &src, angle, sx, sy, flags, &ink{})
}

// PutSprMaskRot is PutSprMask rotated by angle.
func (d *Dispatcher) PutSprMaskRot(x, y int, spr *Image, angle float64, m Mask, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	k := maskInk(m)
	d.rotate(x, y, &src, angle, 1, 1, flags, &k)
}

// quarterTurns returns the number of clockwise quarter turns in angle, or
// -1 when angle is not a multiple of a quarter turn.
func quarterTurns(angle float64) int {
	q := angle / (math.Pi / 2)
	k := math.Round(q)
	if math.Abs(q-k) > 1e-9 {
		return -1
	}
	return (int(k)%4 + 4) % 4
}

func (d *Dispatcher) rotate(x, y int, src *source, angle, sx, sy float64, flags Flags, k *ink) {
	if d.indexed {
		return
	}
	if sx == 1 && sy == 1 {
		if q := quarterTurns(angle); q >= 0 {
			d.rotateQuarter(x, y, src, q, flags, k)
			return
		}
	}

	sw, sh := float64(src.w)*sx, float64(src.h)*sy
	if sw < 1 || sh < 1 {
		return
	}
	sin, cos := math.Sincos(angle)
	bw := int(math.Abs(cos)*sw+math.Abs(sin)*sh) + 2
	bh := int(math.Abs(sin)*sw+math.Abs(cos)*sh) + 2

	const one = 1 << 16
	cx := int64(x)<<16 + int64(sw*one)/2
	cy := int64(y)<<16 + int64(sh*one)/2
	box := image.Rect(0, 0, bw, bh).Add(image.Pt(
		int((cx-int64(bw)<<15)>>16),
		int((cy-int64(bh)<<15)>>16),
	))
	vis := box.Intersect(d.clip)
	if vis.Empty() {
		return
	}

	// Inverse rotation, folded with the inverse scale, in 16.16.
	cu := int64(math.Round(cos / sx * one))
	su := int64(math.Round(sin / sx * one))
	sv := int64(math.Round(sin / sy * one))
	cv := int64(math.Round(cos / sy * one))
	halfW := int64(src.w) << 15
	halfH := int64(src.h) << 15

	rx0 := int64(vis.Min.X)<<16 + one/2 - cx
	for py := vis.Min.Y; py < vis.Max.Y; py++ {
		ry := int64(py)<<16 + one/2 - cy
		u := (cu*rx0+su*ry)>>16 + halfW
		v := (cv*ry-sv*rx0)>>16 + halfH
		for px := vis.Min.X; px < vis.Max.X; px++ {
			iu, iv := int(u>>16), int(v>>16)
			u += cu
			v -= sv
			if iu < 0 || iv < 0 || iu >= src.w || iv >= src.h {
				continue
			}
			if flags&FlipHorizontal != 0 {
				iu = src.w - 1 - iu
			}
			if flags&FlipVertical != 0 {
				iv = src.h - 1 - iv
			}
			r, g, b, a := src.texel(iu, iv)
			d.put(px, py, r, g, b, a, k)
		}
	}
}

// rotateQuarter draws q clockwise quarter turns by remapping indices. The
// rotated box shares the sprite's center.
func (d *Dispatcher) rotateQuarter(x, y int, src *source, q int, flags Flags, k *ink) {
	w, h := src.w, src.h
	rw, rh := w, h
	if q%2 == 1 {
		rw, rh = h, w
	}
	bx, by := x+(w-rw)/2, y+(h-rh)/2
	vis := image.Rect(bx, by, bx+rw, by+rh).Intersect(d.clip)
	if vis.Empty() {
		return
	}
	for py := vis.Min.Y; py < vis.Max.Y; py++ {
		i := py - by
		for px := vis.Min.X; px < vis.Max.X; px++ {
			j := px - bx
			var u, v int
			switch q {
			case 0:
				u, v = j, i
			case 1:
				u, v = i, h-1-j
			case 2:
				u, v = w-1-j, h-1-i
			default:
				u, v = w-1-i, j
			}
			if flags&FlipHorizontal != 0 {
				u = w - 1 - u
			}
			if flags&FlipVertical != 0 {
				v = h - 1 - v
			}
			r, g, b, a := src.texel(u, v)
			d.put(px, py, r, g, b, a, k)
		}
	}
}
