package blit

import "image"

// FillRect fills r (clipped to the surface) with the packed color c.
func (s Surface) FillRect(r image.Rectangle, c uint32) {
	r = r.Intersect(s.Bounds())
	if r.Empty() || len(s.Pix) == 0 {
		return
	}
	bpp := s.Format.BytesPerPixel
	first := s.row(r.Min.Y, r.Min.X, r.Max.X)
	for i := 0; i < len(first); i += bpp {
		writePixel(first[i:], bpp, c)
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		copy(s.row(y, r.Min.X, r.Max.X), first)
	}
}

// HLine draws a horizontal line from x1 to x2 inclusive on row y.
func (s Surface) HLine(x1, x2, y int, c uint32) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	s.FillRect(image.Rect(x1, y, x2+1, y+1), c)
}

// VLine draws a vertical line from y1 to y2 inclusive on column x.
func (s Surface) VLine(x, y1, y2 int, c uint32) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	s.FillRect(image.Rect(x, y1, x+1, y2+1), c)
}

// FrameRect draws the one-pixel outline of r.
func (s Surface) FrameRect(r image.Rectangle, c uint32) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	s.HLine(r.Min.X, r.Max.X-1, r.Min.Y, c)
	s.HLine(r.Min.X, r.Max.X-1, r.Max.Y-1, c)
	s.VLine(r.Min.X, r.Min.Y, r.Max.Y-1, c)
	s.VLine(r.Max.X-1, r.Min.Y, r.Max.Y-1, c)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive using
// Bresenham's algorithm. Points outside the surface are skipped.
func (s Surface) DrawLine(x0, y0, x1, y1 int, c uint32) {
	if s.Empty() {
		return
	}
	if y0 == y1 {
		s.HLine(x0, x1, y0, c)
		return
	}
	if x0 == x1 {
		s.VLine(x0, y0, y1, c)
		return
	}
	Bresenham(x0, y0, x1, y1, func(x, y int) {
		if x >= 0 && x < s.W && y >= 0 && y < s.H {
			s.SetPixel(x, y, c)
		}
	})
}

// Bresenham walks the integer points of the line from (x0, y0) to (x1, y1)
// inclusive and calls plot for each.
func Bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
