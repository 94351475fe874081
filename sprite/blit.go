// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"image"

	"github.com/gogpu/blit/tile"
)

// PutSpr draws spr unscaled with its top-left corner at (x, y).
func (d *Dispatcher) PutSpr(x, y int, spr *Image, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	d.drawScaled(x, y, spr.Width, spr.Height, &src, flags, &ink{})
}

// PutSprScaled draws spr stretched to w×h with its top-left corner at
// (x, y), using nearest-neighbor sampling.
func (d *Dispatcher) PutSprScaled(x, y, w, h int, spr *Image, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	d.drawScaled(x, y, w, h, &src, flags, &ink{})
}

// PutSprScale draws spr scaled uniformly by scale.
func (d *Dispatcher) PutSprScale(x, y int, spr *Image, scale float64, flags Flags) {
	if spr.Empty() || scale <= 0 {
		return
	}
	d.PutSprScaled(x, y, int(float64(spr.Width)*scale), int(float64(spr.Height)*scale), spr, flags)
}

// PutSprMask paints m through the shape of spr. The effective inverted
// alpha of a pixel is m.A + a*(255-m.A)/255 where a is the sprite's own.
func (d *Dispatcher) PutSprMask(x, y int, spr *Image, m Mask, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	k := maskInk(m)
	d.drawScaled(x, y, spr.Width, spr.Height, &src, flags, &k)
}

// PutSprMaskScaled is PutSprMask stretched to w×h.
func (d *Dispatcher) PutSprMaskScaled(x, y, w, h int, spr *Image, m Mask, flags Flags) {
	if spr.Empty() {
		return
	}
	src := imageSource(spr, flags)
	k := maskInk(m)
	d.drawScaled(x, y, w, h, &src, flags, &k)
}

// PutTile draws a tile unscaled with its top-left corner at (x, y).
func (d *Dispatcher) PutTile(x, y int, t *tile.Sprite) {
	if t == nil {
		return
	}
	src := wordSource(t.Pixels(), tile.Size, tile.Size)
	d.drawScaled(x, y, tile.Size, tile.Size, &src, 0, &ink{})
}

// PutTileMap draws every cell of m with the map's top-left corner at (x, y).
func (d *Dispatcher) PutTileMap(x, y int, m *tile.Map) {
	if m == nil {
		return
	}
	area := image.Rect(x, y, x+m.Cols*tile.Size, y+m.Rows*tile.Size)
	if !area.Overlaps(d.clip) {
		return
	}
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			d.PutTile(x+col*tile.Size, y+row*tile.Size, m.At(col, row))
		}
	}
}

// drawScaled maps the w×h destination box at (x, y) onto src with 16.16
// accumulators. Each accumulator starts half a step in and the step is
// rounded up, so destination pixel j samples the source pixel under its
// center and integer factors replicate every source pixel exactly.
func (d *Dispatcher) drawScaled(x, y, w, h int, src *source, flags Flags, k *ink) {
	if d.indexed || w <= 0 || h <= 0 || src.w <= 0 || src.h <= 0 {
		return
	}
	vis := image.Rect(x, y, x+w, y+h).Intersect(d.clip)
	if vis.Empty() {
		return
	}

	// Steps round up rather than truncate so the last sample stays inside
	// the source, matching x/image/draw's NearestNeighbor.
	dx := (src.w<<16 + w - 1) / w
	dy := (src.h<<16 + h - 1) / h
	fx0 := (vis.Min.X-x)*dx + (dx+1)/2
	fy := (vis.Min.Y-y)*dy + (dy+1)/2
	for py := vis.Min.Y; py < vis.Max.Y; py++ {
		sy := min(fy>>16, src.h-1)
		if flags&FlipVertical != 0 {
			sy = src.h - 1 - sy
		}
		fx := fx0
		for px := vis.Min.X; px < vis.Max.X; px++ {
			sx := min(fx>>16, src.w-1)
			if flags&FlipHorizontal != 0 {
				sx = src.w - 1 - sx
			}
			r, g, b, a := src.texel(sx, sy)
			d.put(px, py, r, g, b, a, k)
			fx += dx
		}
		fy += dy
	}
}
