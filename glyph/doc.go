// Package glyph loads rasterized glyphs from a font file.
//
// A Loader is bound to one font and one pixel size. For every requested
// code point it produces a Glyph: an 8-bit alpha bitmap plus the metrics
// needed to place it (bearing and advance, the advance in 1/64 pixel
// units as FreeType reports it).
//
// # Backends
//
// Rasterization is delegated to a pluggable Backend. Two are built in:
//
//   - "ximage" (default): golang.org/x/image/font/opentype
//   - "freetype": github.com/golang/freetype/truetype
//
// Custom backends can be registered with RegisterBackend and selected
// with WithBackend:
//
//	loader, err := glyph.NewLoaderFromFile("DejaVuSans.ttf", 32,
//	    glyph.WithBackend("freetype"))
//
// # Missing glyphs
//
// A code point the font does not map resolves to glyph index 0. Load
// reports it as ErrGlyphNotFound, except for code point 0 itself, which
// always loads the font's undefined-character glyph so that a fallback
// glyph is available to every atlas.
package glyph
