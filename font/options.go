package font

import "golang.org/x/text/encoding/charmap"

// Option configures a Font.
type Option func(*options)

type options struct {
	name        string
	charmap     *charmap.Charmap
	placeholder rune
	cacheSize   int
}

func newOptions(opts []Option, defaults options) options {
	o := defaults
	if o.placeholder == 0 {
		o.placeholder = DefaultPlaceholder
	}
	if o.cacheSize == 0 {
		o.cacheSize = defaultCacheSize
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName overrides the font name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithCharmap sets the 8-bit character map used to turn runes into glyph
// codes. CRYOFONT files default to Windows-1252; pass nil to index glyphs
// by rune directly.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(o *options) {
		o.charmap = cm
	}
}

// WithPlaceholder sets the rune drawn for missing characters.
func WithPlaceholder(r rune) Option {
	return func(o *options) {
		o.placeholder = r
	}
}

// WithCacheSize bounds the number of decoded glyphs a lazy font keeps.
// 0 means unbounded.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}
