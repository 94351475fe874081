package font

import (
	"bytes"
	"fmt"
	"image"
	"math"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// coverageThreshold is the rasterized coverage at which an outline pixel
// becomes on.
const coverageThreshold = 128

// LoadOutline parses a TrueType or OpenType font and returns a font
// rendering it at size pixels per em. Glyphs are rasterized on first use
// and stored byte-packed; pixels at least half covered are on.
func LoadOutline(ttf []byte, size float64, opts ...Option) (*Font, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, size)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("font: parse outline font: %w", err)
	}
	upem := float64(face.Upem())
	if upem == 0 {
		return nil, fmt.Errorf("%w: zero units per em", ErrInvalidFont)
	}
	scale := size / upem

	asc, desc := 0.8*upem, -0.2*upem
	if ext, ok := face.FontHExtents(); ok {
		asc, desc = float64(ext.Ascender), float64(ext.Descender)
	}
	ascent := math.Ceil(asc * scale)
	height := int(ascent + math.Ceil(-desc*scale))

	o := newOptions(opts, options{})
	f := newFont("outline", height, o)
	f.setLoader(func(code rune) *Glyph {
		return outlineGlyph(face, code, scale, ascent)
	}, o.cacheSize)
	return f, nil
}

// outlineGlyph rasterizes the glyph for r with the baseline ascent pixels
// below the line top. It returns nil when the font has no glyph for r.
func outlineGlyph(face *gotext.Face, r rune, scale, ascent float64) *Glyph {
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return nil
	}
	g := &Glyph{
		Advance:  int(math.Round(float64(face.HorizontalAdvance(gid)) * scale)),
		Encoding: BytePacked,
	}
	outline, ok := face.GlyphData(gid).(gotext.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return g
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range outline.Segments {
		for _, p := range outline.Segments[i].ArgsSlice() {
			minX, maxX = math.Min(minX, float64(p.X)), math.Max(maxX, float64(p.X))
			minY, maxY = math.Min(minY, float64(p.Y)), math.Max(maxY, float64(p.Y))
		}
	}
	left := math.Floor(minX * scale)
	top := math.Floor(ascent - maxY*scale)
	w := int(math.Ceil(maxX*scale) - left)
	h := int(math.Ceil(ascent-minY*scale) - top)
	if w <= 0 || h <= 0 {
		return g
	}

	// Font units have Y up; the raster has Y down from the glyph box top.
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return float32(float64(p.X)*scale - left), float32(ascent - float64(p.Y)*scale - top)
	}
	z := vector.NewRasterizer(w, h)
	started := false
	for _, s := range outline.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			started = true
			z.MoveTo(pt(s.Args[0]))
		case ot.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	g.Width, g.Height = w, h
	g.OffsetX, g.OffsetY = int(left), int(top)
	g.Data = make([]byte, w*h)
	for i, a := range mask.Pix {
		if a >= coverageThreshold {
			g.Data[i] = 0xFF
		}
	}
	return g
}
