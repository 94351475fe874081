package blit

import (
	"image"
	"slices"
)

// DirtySink receives the rectangles modified on a root ManagedSurface.
// A presentation layer implements it to learn which regions need to be
// pushed to the display.
type DirtySink interface {
	AddDirtyRect(r image.Rectangle)
}

// pixelBuffer is the pixel memory shared between a root surface and every
// sub-surface carved out of it. The root marks it released when it frees or
// reallocates its pixels; sub-surfaces holding the same handle then stop
// drawing.
type pixelBuffer struct {
	pix      []byte
	released bool
}

// ManagedSurface owns or borrows a Surface and adds allocation lifecycle,
// dirty-rectangle tracking, sub-surfaces and the blit API.
//
// A root surface either owns its pixels (created with Create) or wraps
// caller memory (CreateFrom). A sub-surface (CreateSub) aliases a window of
// its owner's pixels and forwards every dirty rectangle, translated by its
// offset, to the owner.
//
// The zero value is an empty surface ready for Create.
type ManagedSurface struct {
	inner           Surface
	buf             *pixelBuffer
	disposeAfterUse bool

	owner  *ManagedSurface
	offset image.Point

	palette    [256 * 3]byte
	hasPalette bool

	dirty []image.Rectangle
	sink  DirtySink
}

// NewManagedSurface returns an empty surface.
func NewManagedSurface() *ManagedSurface {
	return &ManagedSurface{}
}

// NewManagedSurfaceSize returns a surface owning a w×h buffer in format.
func NewManagedSurfaceSize(w, h int, format PixelFormat) (*ManagedSurface, error) {
	s := &ManagedSurface{}
	if err := s.Create(w, h, format); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSubSurface returns a surface aliasing bounds of parent.
func NewSubSurface(parent *ManagedSurface, bounds image.Rectangle) *ManagedSurface {
	s := &ManagedSurface{}
	s.CreateSub(parent, bounds)
	return s
}

// NewManagedSurfaceFrom wraps caller-owned pixels. The surface never frees them.
func NewManagedSurfaceFrom(src Surface) *ManagedSurface {
	s := &ManagedSurface{}
	s.CreateFrom(src)
	return s
}

// Create (re)allocates an owned w×h pixel buffer. Any previously owned
// buffer is released first, which invalidates sub-surfaces carved from it.
// Negative dimensions are clamped to zero. The whole surface is marked dirty.
func (s *ManagedSurface) Create(w, h int, format PixelFormat) error {
	if err := format.Validate(); err != nil {
		return err
	}
	s.Free()
	w, h = max(w, 0), max(h, 0)
	pitch := w * format.BytesPerPixel
	s.buf = &pixelBuffer{pix: make([]byte, pitch*h)}
	s.inner = Surface{W: w, H: h, Pitch: pitch, Format: format, Pix: s.buf.pix}
	s.disposeAfterUse = true

	Logger().Debug("blit: surface created", "w", w, "h", h, "format", format)
	s.MarkAllDirty()
	return nil
}

// CreateSub configures s as a borrowing view of bounds ∩ parent.Bounds().
// No memory is allocated and no dirty rectangle is recorded; damage is
// reported incrementally as draws occur.
func (s *ManagedSurface) CreateSub(parent *ManagedSurface, bounds image.Rectangle) {
	if parent == s {
		return
	}
	s.Free()
	if parent == nil || parent.IsStale() {
		return
	}
	r := bounds.Intersect(parent.Bounds())
	s.inner = parent.inner.GetSubArea(r)
	s.buf = parent.buf
	s.owner = parent
	s.offset = r.Min
}

// CreateFrom configures s as a root surface over caller-owned pixels.
// The whole surface is marked dirty.
func (s *ManagedSurface) CreateFrom(src Surface) {
	s.Free()
	s.inner = src
	s.buf = &pixelBuffer{pix: src.Pix}
	s.MarkAllDirty()
}

// Free releases owned memory and detaches a sub-surface from its owner.
// On a root surface it also invalidates every sub-surface carved from it,
// whether the pixels were owned or borrowed. It never touches memory the
// surface does not own. Calling Free more than once is safe.
func (s *ManagedSurface) Free() {
	if s.owner == nil && s.buf != nil {
		s.buf.released = true
		if s.disposeAfterUse {
			s.buf.pix = nil
			Logger().Debug("blit: surface freed", "w", s.inner.W, "h", s.inner.H)
		}
	}
	s.inner = Surface{Format: s.inner.Format}
	s.buf = nil
	s.disposeAfterUse = false
	s.owner = nil
	s.offset = image.Point{}
	s.dirty = s.dirty[:0]
}

// IsStale reports whether s is a sub-surface whose owner has freed or
// reallocated the pixels it aliases.
func (s *ManagedSurface) IsStale() bool {
	return s.buf != nil && s.buf.released
}

// surface returns the drawable view, or an empty one when s is stale.
func (s *ManagedSurface) surface() Surface {
	if s.IsStale() {
		Logger().Warn("blit: drawing on a stale sub-surface ignored", "offset", s.offset)
		return Surface{Format: s.inner.Format}
	}
	return s.inner
}

// Surface returns the raw view of the pixels. Writes through it bypass
// dirty tracking.
func (s *ManagedSurface) Surface() Surface {
	if s.IsStale() {
		return Surface{Format: s.inner.Format}
	}
	return s.inner
}

// Width returns the surface width.
func (s *ManagedSurface) Width() int { return s.inner.W }

// Height returns the surface height.
func (s *ManagedSurface) Height() int { return s.inner.H }

// Pitch returns the row stride in bytes.
func (s *ManagedSurface) Pitch() int { return s.inner.Pitch }

// Format returns the pixel format.
func (s *ManagedSurface) Format() PixelFormat { return s.inner.Format }

// Bounds returns the rectangle (0, 0, Width, Height).
func (s *ManagedSurface) Bounds() image.Rectangle { return s.inner.Bounds() }

// Empty reports whether there are no pixels to draw on.
func (s *ManagedSurface) Empty() bool { return s.Surface().Empty() }

// Owner returns the surface s borrows from, or nil for a root surface.
func (s *ManagedSurface) Owner() *ManagedSurface { return s.owner }

// Offset returns the position of a sub-surface within its owner.
func (s *ManagedSurface) Offset() image.Point { return s.offset }

// DisposeAfterUse reports whether s owns its pixel memory.
func (s *ManagedSurface) DisposeAfterUse() bool { return s.disposeAfterUse }

// Pixels returns the raw pixel memory starting at (0, 0).
func (s *ManagedSurface) Pixels() []byte { return s.Surface().Pix }

// GetBasePtr returns the pixel memory starting at (x, y). Unchecked.
func (s *ManagedSurface) GetBasePtr(x, y int) []byte {
	return s.Surface().GetBasePtr(x, y)
}

// SetDirtySink sets the receiver of dirty rectangles recorded on this root
// surface. Sub-surfaces ignore their own sink and report to their owner.
func (s *ManagedSurface) SetDirtySink(sink DirtySink) {
	s.sink = sink
}

// AddDirtyRect records r (clipped to the surface) as modified.
// A sub-surface translates r by its offset and forwards it to its owner;
// a root surface records it and notifies its DirtySink.
func (s *ManagedSurface) AddDirtyRect(r image.Rectangle) {
	r = r.Canon().Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	if s.owner != nil {
		if s.IsStale() {
			return
		}
		s.owner.AddDirtyRect(r.Add(s.offset))
		return
	}
	s.recordDirty(r)
	if s.sink != nil {
		s.sink.AddDirtyRect(r)
	}
}

// recordDirty appends r, skipping it when an existing rectangle already
// covers it and dropping existing rectangles r covers.
func (s *ManagedSurface) recordDirty(r image.Rectangle) {
	for _, e := range s.dirty {
		if r.In(e) {
			return
		}
	}
	s.dirty = slices.DeleteFunc(s.dirty, func(e image.Rectangle) bool { return e.In(r) })
	s.dirty = append(s.dirty, r)
}

// MarkAllDirty records the whole surface as modified.
func (s *ManagedSurface) MarkAllDirty() {
	s.AddDirtyRect(s.Bounds())
}

// DirtyRects returns a copy of the rectangles recorded since the last
// ClearDirtyRects. Sub-surfaces record nothing locally.
func (s *ManagedSurface) DirtyRects() []image.Rectangle {
	return slices.Clone(s.dirty)
}

// ClearDirtyRects forgets the recorded rectangles.
func (s *ManagedSurface) ClearDirtyRects() {
	s.dirty = s.dirty[:0]
}

// IsDirty reports whether any rectangle has been recorded.
func (s *ManagedSurface) IsDirty() bool {
	return len(s.dirty) > 0
}

// CopyFrom reinitializes s as an owning deep copy of other: same size,
// format, pixels and palette.
func (s *ManagedSurface) CopyFrom(other *ManagedSurface) error {
	if other == nil || other == s {
		return nil
	}
	// Snapshot before Create: other may alias the buffer s is about to release.
	src := other.Surface()
	var pal [256 * 3]byte
	hasPal := false
	if p := other.paletteRef(); p != nil {
		pal, hasPal = *p, true
	}

	if err := s.Create(src.W, src.H, src.Format); err != nil {
		return err
	}
	if len(src.Pix) > 0 {
		for y := 0; y < src.H; y++ {
			copy(s.inner.row(y, 0, src.W), src.row(y, 0, src.W))
		}
	}
	s.palette, s.hasPalette = pal, hasPal
	return nil
}
