// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sprite composites sprites and tiles directly onto a blit.Surface.
//
// A Dispatcher draws without dirty-rectangle bookkeeping: it is meant for
// full-frame redraws where the caller marks the presented region itself.
// Every call clips against the dispatcher's clip rectangle and degenerate
// input (empty sprite, zero size, zero scale) draws nothing.
//
// # Alpha
//
// Sprite alpha is inverted: 0 is fully opaque, 255 is fully transparent.
// A pixel with alpha a is blended as
//
//	dst = (src*(255-a) + dst*a) / 255
//
// The same convention applies to Mask.A.
//
// # Example
//
//	d := sprite.New(screen.Surface())
//	d.PutSpr(10, 20, hero, 0)
//	d.PutSprScaled(100, 20, 64, 64, hero, sprite.FlipHorizontal)
//	d.PutSprRot(200, 20, hero, math.Pi/4, 0)
package sprite

import (
	"image"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/rle"
	"github.com/gogpu/blit/tile"
)

// Flags modify how a sprite is drawn.
type Flags uint8

const (
	// FlipHorizontal mirrors the sprite left to right.
	FlipHorizontal Flags = 1 << iota

	// FlipVertical mirrors the sprite top to bottom.
	FlipVertical

	// ColorKey treats all-zero pixels of opaque formats (565, RGB) as
	// transparent. RGBA sprites ignore it.
	ColorKey
)

// Mask is a tint color painted through a sprite's shape. A uses inverted
// alpha: 0 paints the color fully, 255 leaves the destination unchanged.
type Mask struct {
	R, G, B, A uint8
}

// Dispatcher draws sprites onto one destination surface.
//
// A Dispatcher keeps a scratch buffer for RLE decoding and is not safe for
// concurrent use. Create one per destination and goroutine.
type Dispatcher struct {
	dst     blit.Surface
	clip    image.Rectangle
	indexed bool
	dec     rle.Decoder
}

// New returns a dispatcher drawing onto dst. Indexed destinations are not
// supported; every draw on them is a no-op.
func New(dst blit.Surface, opts ...Option) *Dispatcher {
	o := options{clip: dst.Bounds()}
	for _, opt := range opts {
		opt(&o)
	}
	d := &Dispatcher{dst: dst, indexed: dst.Format.IsCLUT8()}
	d.SetClip(o.clip)
	if d.indexed {
		blit.Logger().Warn("sprite: indexed destination, drawing disabled", "format", dst.Format)
	}
	return d
}

// Surface returns the destination surface.
func (d *Dispatcher) Surface() blit.Surface {
	return d.dst
}

// SetClip restricts drawing to r, intersected with the destination bounds.
func (d *Dispatcher) SetClip(r image.Rectangle) {
	d.clip = r.Canon().Intersect(d.dst.Bounds())
}

// Clip returns the active clip rectangle.
func (d *Dispatcher) Clip() image.Rectangle {
	return d.clip
}

// source is a readable sprite: an Image or packed tile words.
type source struct {
	w, h  int
	img   *Image
	words []uint32
	key   bool
}

func imageSource(spr *Image, flags Flags) source {
	return source{
		w:   spr.Width,
		h:   spr.Height,
		img: spr,
		key: flags&ColorKey != 0 && spr.Format != FormatRGBA,
	}
}

func wordSource(words []uint32, w, h int) source {
	return source{w: w, h: h, words: words}
}

// texel returns the color at (x, y) with inverted alpha.
func (s *source) texel(x, y int) (r, g, b, a uint8) {
	if s.img != nil {
		if s.key && s.img.isZero(x, y) {
			return 0, 0, 0, 0xFF
		}
		return s.img.Pixel(x, y)
	}
	return tile.Unpack(s.words[y*s.w+x])
}

// ink selects between copying the sprite color and painting a mask.
type ink struct {
	mask bool
	m    Mask
}

func maskInk(m Mask) ink {
	return ink{mask: true, m: m}
}

// put composites one texel at (px, py). The caller has clipped.
func (d *Dispatcher) put(px, py int, r, g, b, a uint8, k *ink) {
	if k.mask {
		ma := uint32(k.m.A)
		a = uint8(ma + uint32(a)*(255-ma)/255)
		r, g, b = k.m.R, k.m.G, k.m.B
	}
	if a == 0xFF {
		return
	}
	f := d.dst.Format
	if a != 0 {
		dr, dg, db := f.ColorToRGB(d.dst.GetPixel(px, py))
		r, g, b = mix(r, dr, a), mix(g, dg, a), mix(b, db, a)
	}
	d.dst.SetPixel(px, py, f.RGBToColor(r, g, b))
}

// mix blends s over d with inverted alpha a.
func mix(s, d, a uint8) uint8 {
	return uint8((uint32(s)*(255-uint32(a)) + uint32(d)*uint32(a)) / 255)
}
