package blit

import "image"

// FillRect fills r with the packed color c and marks the clipped area dirty.
func (s *ManagedSurface) FillRect(r image.Rectangle, c uint32) {
	dst := s.surface()
	r = r.Canon().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.FillRect(r, c)
	s.AddDirtyRect(r)
}

// Clear fills the whole surface with c.
func (s *ManagedSurface) Clear(c uint32) {
	s.FillRect(s.Bounds(), c)
}

// HLine draws a horizontal line from x1 to x2 inclusive on row y.
func (s *ManagedSurface) HLine(x1, x2, y int, c uint32) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	s.FillRect(image.Rect(x1, y, x2+1, y+1), c)
}

// VLine draws a vertical line from y1 to y2 inclusive on column x.
func (s *ManagedSurface) VLine(x, y1, y2 int, c uint32) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	s.FillRect(image.Rect(x, y1, x+1, y2+1), c)
}

// FrameRect draws the outline of r and marks r dirty.
func (s *ManagedSurface) FrameRect(r image.Rectangle, c uint32) {
	dst := s.surface()
	r = r.Canon()
	if dst.Empty() || r.Intersect(dst.Bounds()).Empty() {
		return
	}
	dst.FrameRect(r, c)
	s.AddDirtyRect(r)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive and marks its
// clipped bounding box dirty.
func (s *ManagedSurface) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dst := s.surface()
	box := image.Rect(x0, y0, x1, y1).Canon()
	box.Max = box.Max.Add(image.Pt(1, 1))
	if dst.Empty() || box.Intersect(dst.Bounds()).Empty() {
		return
	}
	dst.DrawLine(x0, y0, x1, y1, c)
	s.AddDirtyRect(box)
}

// SetPixel stores c at (x, y) if the point is on the surface.
func (s *ManagedSurface) SetPixel(x, y int, c uint32) {
	dst := s.surface()
	if dst.Empty() || !image.Pt(x, y).In(dst.Bounds()) {
		return
	}
	dst.SetPixel(x, y, c)
	s.AddDirtyRect(image.Rect(x, y, x+1, y+1))
}

// GetPixel returns the raw pixel at (x, y), or 0 off the surface.
func (s *ManagedSurface) GetPixel(x, y int) uint32 {
	src := s.Surface()
	if src.Empty() || !image.Pt(x, y).In(src.Bounds()) {
		return 0
	}
	return src.GetPixel(x, y)
}

// GetSubArea returns a raw view of r ∩ Bounds() and marks that area dirty,
// on the assumption that the caller is about to draw into it.
func (s *ManagedSurface) GetSubArea(r image.Rectangle) Surface {
	sub := s.surface().GetSubArea(r)
	s.AddDirtyRect(r)
	return sub
}
