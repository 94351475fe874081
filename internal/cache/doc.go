// Package cache provides the bounded LRU cache behind lazily decoded glyph
// tables.
//
//	glyphs := cache.New[rune, *font.Glyph](256)
//	g := glyphs.GetOrCreate('A', func() *font.Glyph { return decode('A') })
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
