// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"image"

	"github.com/gogpu/blit"
)

// Colors passed to the shape primitives are packed in the destination
// surface's pixel format.

// FillRect fills r, clipped, with c.
func (d *Dispatcher) FillRect(r image.Rectangle, c uint32) {
	if d.indexed {
		return
	}
	d.dst.FillRect(r.Canon().Intersect(d.clip), c)
}

// Erase fills the whole clip rectangle with c.
func (d *Dispatcher) Erase(c uint32) {
	d.FillRect(d.clip, c)
}

// Rectangle draws the one-pixel outline of r, clipped.
func (d *Dispatcher) Rectangle(r image.Rectangle, c uint32) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	d.Line(x0, y0, x1, y0, c)
	d.Line(x0, y1, x1, y1, c)
	d.Line(x0, y0, x0, y1, c)
	d.Line(x1, y0, x1, y1, c)
}

// Line draws a line between two inclusive end points. The segment is
// clipped with Cohen-Sutherland before rasterizing.
func (d *Dispatcher) Line(x0, y0, x1, y1 int, c uint32) {
	if d.indexed || d.clip.Empty() {
		return
	}
	ax, ay, bx, by, ok := clipLine(d.clip, x0, y0, x1, y1)
	if !ok {
		return
	}
	blit.Bresenham(ax, ay, bx, by, func(x, y int) {
		if image.Pt(x, y).In(d.clip) {
			d.dst.SetPixel(x, y, c)
		}
	})
}

// Outcodes for Cohen-Sutherland.
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(r image.Rectangle, x, y float64) int {
	code := 0
	switch {
	case x < float64(r.Min.X):
		code |= outLeft
	case x > float64(r.Max.X-1):
		code |= outRight
	}
	switch {
	case y < float64(r.Min.Y):
		code |= outTop
	case y > float64(r.Max.Y-1):
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to r with inclusive pixel bounds. ok is false
// when no part of the segment is inside.
func clipLine(r image.Rectangle, x0, y0, x1, y1 int) (ax, ay, bx, by int, ok bool) {
	xmin, ymin := float64(r.Min.X), float64(r.Min.Y)
	xmax, ymax := float64(r.Max.X-1), float64(r.Max.Y-1)
	fx0, fy0, fx1, fy1 := float64(x0), float64(y0), float64(x1), float64(y1)
	c0, c1 := outcode(r, fx0, fy0), outcode(r, fx1, fy1)

	for {
		switch {
		case c0|c1 == 0:
			return round(fx0), round(fy0), round(fx1), round(fy1), true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x, y = fx0+(fx1-fx0)*(ymax-fy0)/(fy1-fy0), ymax
		case out&outTop != 0:
			x, y = fx0+(fx1-fx0)*(ymin-fy0)/(fy1-fy0), ymin
		case out&outRight != 0:
			x, y = xmax, fy0+(fy1-fy0)*(xmax-fx0)/(fx1-fx0)
		default:
			x, y = xmin, fy0+(fy1-fy0)*(xmin-fx0)/(fx1-fx0)
		}
		if out == c0 {
			fx0, fy0 = x, y
			c0 = outcode(r, fx0, fy0)
		} else {
			fx1, fy1 = x, y
			c1 = outcode(r, fx1, fy1)
		}
	}
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
