package blit

import "image"

// BlitFrom copies all of src to s with its top-left corner at dest.
func (s *ManagedSurface) BlitFrom(src *ManagedSurface, dest image.Point) {
	if src == nil {
		return
	}
	s.BlitFromRect(src, src.Bounds(), dest)
}

// BlitFromRect copies srcRect of src to s with its top-left corner at dest.
//
// Pixels are copied verbatim when the formats match. Direct color formats
// are converted channel by channel; indexed sources are expanded through
// src's palette; indexed to indexed copies raw indices. Other combinations
// are rejected (see CheckConversion) and nothing is drawn.
func (s *ManagedSurface) BlitFromRect(src *ManagedSurface, srcRect image.Rectangle, dest image.Point) {
	if src == nil {
		return
	}
	s.blitFrom(src.surface(), src.paletteRef(), srcRect, dest, s.sharesPixels(src))
}

// BlitFromSurface copies srcRect of a raw surface to s at dest.
func (s *ManagedSurface) BlitFromSurface(src Surface, srcRect image.Rectangle, dest image.Point) {
	s.blitFrom(src, nil, srcRect, dest, false)
}

func (s *ManagedSurface) sharesPixels(src *ManagedSurface) bool {
	return src.buf != nil && src.buf == s.buf
}

func (s *ManagedSurface) blitFrom(src Surface, pal *[256 * 3]byte, srcRect image.Rectangle, dest image.Point, shared bool) {
	dst := s.surface()
	if dst.Empty() || src.Empty() {
		return
	}
	if err := CheckConversion(src.Format, dst.Format, pal != nil); err != nil {
		Logger().Warn("blit: blit skipped", "err", err)
		return
	}

	orig := srcRect.Min
	srcRect = srcRect.Canon().Intersect(src.Bounds())
	dest = dest.Add(srcRect.Min.Sub(orig))
	destRect := image.Rectangle{Min: dest, Max: dest.Add(srcRect.Size())}
	clipped := destRect.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	sp := srcRect.Min.Add(clipped.Min.Sub(destRect.Min))
	w, h := clipped.Dx(), clipped.Dy()

	if shared {
		src, sp = detach(src, image.Rectangle{Min: sp, Max: sp.Add(image.Pt(w, h))}), image.Point{}
	}

	if src.Format == dst.Format || (src.Format.IsCLUT8() && dst.Format.IsCLUT8()) {
		for y := 0; y < h; y++ {
			copy(dst.row(clipped.Min.Y+y, clipped.Min.X, clipped.Max.X), src.row(sp.Y+y, sp.X, sp.X+w))
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := convertPixel(src.GetPixel(sp.X+x, sp.Y+y), src.Format, dst.Format, pal)
				dst.SetPixel(clipped.Min.X+x, clipped.Min.Y+y, c)
			}
		}
	}
	s.AddDirtyRect(clipped)
}

// detach copies r of src into fresh memory so that a blit between
// overlapping windows of the same buffer reads the original pixels.
func detach(src Surface, r image.Rectangle) Surface {
	bpp := src.Format.BytesPerPixel
	pitch := r.Dx() * bpp
	out := Surface{W: r.Dx(), H: r.Dy(), Pitch: pitch, Format: src.Format, Pix: make([]byte, pitch*r.Dy())}
	for y := 0; y < out.H; y++ {
		copy(out.row(y, 0, out.W), src.row(r.Min.Y+y, r.Min.X, r.Max.X))
	}
	return out
}

// convertPixel converts c from sf to df. CheckConversion must have
// accepted the pair.
func convertPixel(c uint32, sf, df PixelFormat, pal *[256 * 3]byte) uint32 {
	if sf == df || (sf.IsCLUT8() && df.IsCLUT8()) {
		return c
	}
	if sf.IsCLUT8() {
		i := int(c&0xFF) * 3
		return df.RGBToColor(pal[i], pal[i+1], pal[i+2])
	}
	a, r, g, b := sf.ColorToARGB(c)
	return df.ARGBToColor(a, r, g, b)
}

// blendColor mixes src over dst in format f with conventional alpha:
// result = src*alpha/255 + dst*(255-alpha)/255 per channel.
func blendColor(src, dst uint32, f PixelFormat, alpha uint8) uint32 {
	sa, sr, sg, sb := f.ColorToARGB(src)
	da, dr, dg, db := f.ColorToARGB(dst)
	a := uint32(alpha)
	mix := func(s, d uint8) uint8 {
		return uint8(uint32(s)*a/255 + uint32(d)*(255-a)/255)
	}
	return f.ARGBToColor(mix(sa, da), mix(sr, dr), mix(sg, dg), mix(sb, db))
}

// TransBlitFrom copies src to s at dest, skipping pixels equal to
// transColor.
func (s *ManagedSurface) TransBlitFrom(src *ManagedSurface, dest image.Point, transColor uint32, opts ...BlitOption) {
	if src == nil {
		return
	}
	b := src.Bounds()
	s.TransBlitFromRect(src, b, image.Rectangle{Min: dest, Max: dest.Add(b.Size())}, transColor, opts...)
}

// TransBlitFromRect copies srcRect of src into destRect of s, skipping
// source pixels equal to transColor.
//
// When destRect and srcRect differ in size the source is resampled with
// nearest neighbor: destination offset d samples source offset
// floor(d*srcSize/destSize). Transparency is tested on the raw source
// pixel, before any format conversion. See BlitOption for mirroring,
// override color and uniform alpha.
func (s *ManagedSurface) TransBlitFromRect(src *ManagedSurface, srcRect, destRect image.Rectangle, transColor uint32, opts ...BlitOption) {
	if src == nil {
		return
	}
	s.transBlitFrom(src.surface(), src.paletteRef(), srcRect, destRect, transColor, newBlitOptions(opts), s.sharesPixels(src))
}

// TransBlitFromSurface is TransBlitFromRect for a raw source surface.
func (s *ManagedSurface) TransBlitFromSurface(src Surface, srcRect, destRect image.Rectangle, transColor uint32, opts ...BlitOption) {
	s.transBlitFrom(src, nil, srcRect, destRect, transColor, newBlitOptions(opts), false)
}

func (s *ManagedSurface) transBlitFrom(src Surface, pal *[256 * 3]byte, srcRect, destRect image.Rectangle, transColor uint32, o blitOptions, shared bool) {
	dst := s.surface()
	if dst.Empty() || src.Empty() || o.alpha == 0 {
		return
	}
	if !o.hasOverride {
		if err := CheckConversion(src.Format, dst.Format, pal != nil); err != nil {
			Logger().Warn("blit: transparent blit skipped", "err", err)
			return
		}
	}

	srcRect = srcRect.Canon().Intersect(src.Bounds())
	destRect = destRect.Canon()
	if srcRect.Empty() || destRect.Empty() {
		return
	}
	clipped := destRect.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	if shared {
		src = detach(src, srcRect)
		srcRect = src.Bounds()
	}

	sw, sh := srcRect.Dx(), srcRect.Dy()
	dw, dh := destRect.Dx(), destRect.Dy()
	blend := o.alpha < 0xFF && !dst.Format.IsCLUT8()

	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		sy := srcRect.Min.Y + (y-destRect.Min.Y)*sh/dh
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			j := x - destRect.Min.X
			if o.flip {
				j = dw - 1 - j
			}
			p := src.GetPixel(srcRect.Min.X+j*sw/dw, sy)
			if p == transColor {
				continue
			}
			c := o.override
			if !o.hasOverride {
				c = convertPixel(p, src.Format, dst.Format, pal)
			}
			if blend {
				c = blendColor(c, dst.GetPixel(x, y), dst.Format, o.alpha)
			}
			dst.SetPixel(x, y, c)
		}
	}
	s.AddDirtyRect(clipped)
}
