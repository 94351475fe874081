package font

import (
	"image"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/cache"
)

// DefaultPlaceholder is drawn in place of characters a font lacks.
const DefaultPlaceholder = '?'

// defaultCacheSize bounds the decoded glyphs kept by lazy fonts.
const defaultCacheSize = 512

// Font is a set of glyphs with a common line height.
//
// Glyphs are looked up by rune. A font with a charmap stores glyphs under
// 8-bit character codes; runes are encoded through the charmap first and
// runes it cannot encode are missing.
//
// Eagerly loaded fonts (LoadCryo) are immutable. Lazily decoded fonts
// (NewBasicFont, LoadOutline) cache glyphs and are safe for concurrent use.
type Font struct {
	name        string
	height      int
	charmap     *charmap.Charmap
	placeholder rune

	glyphs map[rune]*Glyph
	load   func(code rune) *Glyph
	cache  *cache.Cache[rune, *Glyph]
}

func newFont(name string, height int, o options) *Font {
	if o.name != "" {
		name = o.name
	}
	return &Font{
		name:        name,
		height:      height,
		charmap:     o.charmap,
		placeholder: o.placeholder,
	}
}

// setLoader makes f decode glyphs on first use.
func (f *Font) setLoader(load func(code rune) *Glyph, cacheSize int) {
	f.load = load
	f.cache = cache.New[rune, *Glyph](cacheSize)
}

// Name returns the font name.
func (f *Font) Name() string { return f.name }

// Height returns the line height in pixels.
func (f *Font) Height() int { return f.height }

// Charmap returns the 8-bit character map, or nil for fonts indexed by
// rune.
func (f *Font) Charmap() *charmap.Charmap { return f.charmap }

// Placeholder returns the rune drawn for missing characters.
func (f *Font) Placeholder() rune { return f.placeholder }

// code maps r to the font's glyph key.
func (f *Font) code(r rune) (rune, bool) {
	if f.charmap == nil {
		return r, true
	}
	b, ok := f.charmap.EncodeRune(r)
	return rune(b), ok
}

// lookup returns the glyph stored under code, or nil.
func (f *Font) lookup(code rune) *Glyph {
	if f.load != nil {
		return f.cache.GetOrCreate(code, func() *Glyph {
			g := f.load(code)
			if g != nil {
				blit.Logger().Debug("font: glyph decoded", "font", f.name, "code", code)
			}
			return g
		})
	}
	return f.glyphs[code]
}

// Glyph returns the glyph for r without placeholder substitution.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	code, ok := f.code(r)
	if !ok {
		return nil, false
	}
	g := f.lookup(code)
	return g, g != nil
}

// resolve returns the glyph for r, or the placeholder glyph when the font
// lacks r. It returns nil only when the placeholder is missing too.
func (f *Font) resolve(r rune) *Glyph {
	if g, ok := f.Glyph(r); ok {
		return g
	}
	blit.Logger().Debug("font: placeholder substituted", "font", f.name, "rune", r)
	g, _ := f.Glyph(f.placeholder)
	return g
}

// CharWidth returns the advance of r, using the placeholder for missing
// characters.
func (f *Font) CharWidth(r rune) int {
	if g := f.resolve(r); g != nil {
		return g.Advance
	}
	return 0
}

// DrawChar draws r in color c with the pen at (x, y) and returns the
// touched rectangle. Missing characters draw the placeholder.
func (f *Font) DrawChar(dst blit.Surface, r rune, x, y int, c uint32) image.Rectangle {
	return DrawGlyph(dst, f.resolve(r), x, y, c)
}
