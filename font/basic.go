package font

import (
	"image/color"

	"golang.org/x/image/font/basicfont"
)

// NewBasicFont adapts a fixed-width basicfont face, such as
// basicfont.Face7x13. Glyphs are cut from the face mask and byte-packed on
// first use.
func NewBasicFont(face *basicfont.Face, opts ...Option) *Font {
	o := newOptions(opts, options{})
	height := face.Ascent + face.Descent
	f := newFont("basic", height, o)
	f.setLoader(func(code rune) *Glyph {
		return basicGlyph(face, code)
	}, o.cacheSize)
	return f
}

// basicGlyph cuts the glyph for r out of face.Mask, or returns nil when no
// range covers r.
func basicGlyph(face *basicfont.Face, r rune) *Glyph {
	height := face.Ascent + face.Descent
	for _, rg := range face.Ranges {
		if r < rg.Low || r >= rg.High {
			continue
		}
		y0 := (int(r-rg.Low) + rg.Offset) * height
		origin := face.Mask.Bounds().Min
		g := &Glyph{
			Width:    face.Width,
			Height:   height,
			OffsetX:  face.Left,
			Advance:  face.Advance,
			Encoding: BytePacked,
			Data:     make([]byte, face.Width*height),
		}
		for y := 0; y < height; y++ {
			for x := 0; x < face.Width; x++ {
				a := color.AlphaModel.Convert(face.Mask.At(origin.X+x, origin.Y+y0+y)).(color.Alpha).A
				g.Data[y*face.Width+x] = a
			}
		}
		return g
	}
	return nil
}
