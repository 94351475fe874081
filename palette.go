package blit

import "image/color"

// SetPalette stores num RGB triplets from colors into palette entries
// starting at start. Out-of-range entries are clipped. A sub-surface sets
// its owner's palette.
func (s *ManagedSurface) SetPalette(colors []byte, start, num int) {
	if s.owner != nil {
		s.owner.SetPalette(colors, start, num)
		return
	}
	start, num = clampPaletteRange(start, num, len(colors))
	if num == 0 {
		return
	}
	copy(s.palette[start*3:(start+num)*3], colors[:num*3])
	s.hasPalette = true
}

// GrabPalette copies num palette entries starting at start into colors as
// RGB triplets.
func (s *ManagedSurface) GrabPalette(colors []byte, start, num int) {
	p := s.paletteRef()
	if p == nil {
		return
	}
	start, num = clampPaletteRange(start, num, len(colors))
	copy(colors[:num*3], p[start*3:(start+num)*3])
}

// HasPalette reports whether a palette has been set.
func (s *ManagedSurface) HasPalette() bool {
	return s.paletteRef() != nil
}

// ClearPalette forgets the palette.
func (s *ManagedSurface) ClearPalette() {
	if s.owner != nil {
		s.owner.ClearPalette()
		return
	}
	s.hasPalette = false
}

// Palette returns the palette as 256 opaque colors, or nil when none is set.
func (s *ManagedSurface) Palette() color.Palette {
	p := s.paletteRef()
	if p == nil {
		return nil
	}
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.RGBA{R: p[i*3], G: p[i*3+1], B: p[i*3+2], A: 0xFF}
	}
	return pal
}

// paletteRef returns the effective palette, following the owner chain.
func (s *ManagedSurface) paletteRef() *[256 * 3]byte {
	root := s
	for root.owner != nil {
		root = root.owner
	}
	if !root.hasPalette {
		return nil
	}
	return &root.palette
}

func clampPaletteRange(start, num, bufLen int) (int, int) {
	start = min(max(start, 0), 256)
	num = min(max(num, 0), 256-start, bufLen/3)
	return start, num
}
