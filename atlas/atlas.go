package atlas

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gltext/glyph"
)

// PackedGlyph is a glyph placed in the atlas.
//
// The embedded Glyph carries the metrics; its Bitmap is nil because the
// pixels live in the atlas at (X, Y). The texture rectangle is the pixel
// rectangle divided by the atlas size.
type PackedGlyph struct {
	glyph.Glyph

	// Pixel position of the top-left corner in the atlas.
	X, Y int

	// Normalized texture coordinates in [0, 1].
	TexXMin, TexXMax float32
	TexYMin, TexYMax float32
}

// LookupStatus tells how Lookup resolved a code point.
type LookupStatus uint8

const (
	// LookupHit means the requested code point is in the atlas.
	LookupHit LookupStatus = iota

	// LookupFallback means the code point is absent and the code point 0
	// glyph was returned instead.
	LookupFallback

	// LookupMissing means neither the code point nor the fallback glyph is
	// in the atlas. The returned glyph is blank with zero metrics.
	LookupMissing
)

// String returns the status name.
func (s LookupStatus) String() string {
	switch s {
	case LookupHit:
		return "hit"
	case LookupFallback:
		return "fallback"
	case LookupMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Atlas is a packed glyph atlas: a size x size single-channel bitmap and a
// table from code point to packed glyph.
//
// An Atlas is written once by Pack and read-only afterwards. It may be
// shared by any number of readers.
type Atlas struct {
	size   int
	bitmap []byte

	// glyphs is the arena of placed glyphs in packing order; table indexes
	// into it.
	glyphs []PackedGlyph
	table  map[rune]int32

	unplaced   []rune
	lineHeight fixed.Int26_6
}

// Size returns the atlas dimension in pixels.
func (a *Atlas) Size() int {
	return a.size
}

// Bitmap returns the size*size alpha buffer, row-major, top row first.
// The slice is shared with the atlas and must not be modified.
func (a *Atlas) Bitmap() []byte {
	return a.bitmap
}

// Image returns an image view over the bitmap without copying.
// The image must not be modified.
func (a *Atlas) Image() *image.Alpha {
	return &image.Alpha{
		Pix:    a.bitmap,
		Stride: a.size,
		Rect:   image.Rect(0, 0, a.size, a.size),
	}
}

// Len returns the number of placed glyphs.
func (a *Atlas) Len() int {
	return len(a.glyphs)
}

// Glyphs returns the placed glyphs in packing order.
// The slice is shared with the atlas and must not be modified.
func (a *Atlas) Glyphs() []PackedGlyph {
	return a.glyphs
}

// Unplaced returns the code points that did not fit, in packing order.
func (a *Atlas) Unplaced() []rune {
	return a.unplaced
}

// Overflowed reports whether packing ran out of space.
func (a *Atlas) Overflowed() bool {
	return len(a.unplaced) > 0
}

// LineHeight returns the font line height in whole pixels.
func (a *Atlas) LineHeight() int {
	return int(a.lineHeight >> 6)
}

// LineHeightFixed returns the font line height in 1/64 pixel units.
func (a *Atlas) LineHeightFixed() fixed.Int26_6 {
	return a.lineHeight
}

// SetLineHeight sets the font line height in 1/64 pixel units.
// FontAtlas.Build sets it from the font metrics; atlases packed directly
// with Pack start at zero.
func (a *Atlas) SetLineHeight(h fixed.Int26_6) {
	a.lineHeight = h
}

// Lookup returns the packed glyph for r.
//
// Lookup never fails: when r is not in the atlas it returns the glyph for
// code point 0 with LookupFallback, and when that is absent too a blank
// glyph with LookupMissing. The returned glyph must not be modified.
func (a *Atlas) Lookup(r rune) (*PackedGlyph, LookupStatus) {
	if i, ok := a.table[r]; ok {
		return &a.glyphs[i], LookupHit
	}
	if i, ok := a.table[0]; ok {
		return &a.glyphs[i], LookupFallback
	}
	return &PackedGlyph{}, LookupMissing
}

// Contains reports whether r was placed in the atlas.
func (a *Atlas) Contains(r rune) bool {
	_, ok := a.table[r]
	return ok
}

// Kerning returns the kerning adjustment between two code points.
// Kerning is not supported and the result is always 0.
func (a *Atlas) Kerning(_, _ rune) int {
	return 0
}
