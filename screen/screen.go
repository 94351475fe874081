// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package screen is the top-level presentation surface.
//
// A Screen owns the root ManagedSurface that everything is drawn on and
// receives its dirty rectangles. It merges them into a short list, falls
// back to a full redraw when the list grows too long, and describes the
// regions to push to a display texture with gputypes upload descriptors.
package screen

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/blit"
	"github.com/gogpu/gputypes"
)

// ErrNoTextureFormat is returned by Update when the screen format has no
// texture format equivalent.
var ErrNoTextureFormat = errors.New("screen: pixel format has no texture format")

// defaultMaxRects is the number of merged rectangles after which the screen
// switches to a full redraw.
const defaultMaxRects = 16

// Option configures a Screen.
type Option func(*options)

type options struct {
	maxRects int
}

// WithMaxRects sets how many disjoint dirty rectangles are tracked before
// the screen switches to a full redraw. Values below 1 are ignored.
func WithMaxRects(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxRects = n
		}
	}
}

// Presenter pushes changed pixels to a display. pix is the whole screen
// buffer; uploads describe the regions of it that changed.
type Presenter interface {
	Present(pix []byte, uploads []Upload) error
}

// Upload describes one region of the screen buffer to copy into the
// display texture.
type Upload struct {
	Origin gputypes.Origin3D
	Size   gputypes.Extent3D
	Layout gputypes.TextureDataLayout
	Format gputypes.TextureFormat
}

// Screen is a root ManagedSurface plus dirty-rectangle bookkeeping.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	surf     *blit.ManagedSurface
	rects    []image.Rectangle
	full     bool
	maxRects int
}

// New allocates a w×h screen in format and registers the screen as the
// surface's dirty sink. A new screen needs a full redraw.
func New(w, h int, format blit.PixelFormat, opts ...Option) (*Screen, error) {
	o := options{maxRects: defaultMaxRects}
	for _, opt := range opts {
		opt(&o)
	}
	surf, err := blit.NewManagedSurfaceSize(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	s := &Screen{surf: surf, maxRects: o.maxRects, full: true}
	surf.SetDirtySink(s)
	blit.Logger().Debug("screen: created", "width", w, "height", h, "format", format.String())
	return s, nil
}

// Surface returns the surface to draw on.
func (s *Screen) Surface() *blit.ManagedSurface { return s.surf }

// AddDirtyRect merges r into the dirty list. Rectangles already covered are
// dropped; overlapping ones are replaced by their union.
func (s *Screen) AddDirtyRect(r image.Rectangle) {
	if s.full {
		return
	}
	r = r.Canon().Intersect(s.surf.Bounds())
	if r.Empty() {
		return
	}
	for merged := true; merged; {
		merged = false
		for i, e := range s.rects {
			if r.In(e) {
				return
			}
			if r.Overlaps(e) {
				r = r.Union(e)
				s.rects = slices.Delete(s.rects, i, i+1)
				merged = true
				break
			}
		}
	}
	s.rects = append(s.rects, r)
	if len(s.rects) > s.maxRects {
		blit.Logger().Debug("screen: switching to full redraw", "rects", len(s.rects))
		s.MarkAllDirty()
	}
}

// MarkAllDirty requests a full redraw.
func (s *Screen) MarkAllDirty() {
	s.full = true
	s.rects = s.rects[:0]
}

// NeedsFullRedraw reports whether the whole screen must be presented.
func (s *Screen) NeedsFullRedraw() bool { return s.full }

// IsDirty reports whether anything needs to be presented.
func (s *Screen) IsDirty() bool { return s.full || len(s.rects) > 0 }

// DirtyRects returns the merged dirty rectangles, or the screen bounds
// during a full redraw.
func (s *Screen) DirtyRects() []image.Rectangle {
	if s.full {
		return []image.Rectangle{s.surf.Bounds()}
	}
	return slices.Clone(s.rects)
}

// ClearDirty forgets all dirty state, including the surface's own list.
func (s *Screen) ClearDirty() {
	s.full = false
	s.rects = s.rects[:0]
	s.surf.ClearDirtyRects()
}

// TextureFormat returns the texture format whose texel layout matches f
// byte for byte. CLUT8 maps to a single-channel format carrying the raw
// indices.
func TextureFormat(f blit.PixelFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case blit.ABGR8888:
		return gputypes.TextureFormatRGBA8Unorm, true
	case blit.ARGB8888:
		return gputypes.TextureFormatBGRA8Unorm, true
	case blit.CLUT8:
		return gputypes.TextureFormatR8Unorm, true
	}
	return gputypes.TextureFormatUndefined, false
}

// Uploads describes the dirty regions as copies out of the screen buffer.
// The texture format is left undefined when the screen format has none.
func (s *Screen) Uploads() []Upload {
	if !s.IsDirty() {
		return nil
	}
	tf, _ := TextureFormat(s.surf.Format())
	bpp := s.surf.Format().BytesPerPixel
	pitch := s.surf.Pitch()
	rects := s.DirtyRects()
	uploads := make([]Upload, 0, len(rects))
	for _, r := range rects {
		uploads = append(uploads, Upload{
			Origin: gputypes.Origin3D{X: uint32(r.Min.X), Y: uint32(r.Min.Y)},
			Size: gputypes.Extent3D{
				Width:              uint32(r.Dx()),
				Height:             uint32(r.Dy()),
				DepthOrArrayLayers: 1,
			},
			Layout: gputypes.TextureDataLayout{
				Offset:       uint64(r.Min.Y*pitch + r.Min.X*bpp),
				BytesPerRow:  uint32(pitch),
				RowsPerImage: uint32(r.Dy()),
			},
			Format: tf,
		})
	}
	return uploads
}

// Update presents the dirty regions through p and clears the dirty state
// on success. Nothing is presented when the screen is clean.
func (s *Screen) Update(p Presenter) error {
	if !s.IsDirty() {
		return nil
	}
	if _, ok := TextureFormat(s.surf.Format()); !ok {
		return fmt.Errorf("%w: %s", ErrNoTextureFormat, s.surf.Format())
	}
	if err := p.Present(s.surf.Pixels(), s.Uploads()); err != nil {
		return fmt.Errorf("screen: present: %w", err)
	}
	s.ClearDirty()
	return nil
}
