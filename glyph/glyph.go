package glyph

import "golang.org/x/image/math/fixed"

// Glyph is a rasterized code point at a fixed pixel size.
//
// Bitmap holds Width*Height alpha values, row-major, top row first.
// BearingX is the offset from the pen to the left edge of the bitmap and
// BearingY the offset from the baseline up to its top edge. Advances are
// in 1/64 pixel units.
type Glyph struct {
	Code  rune
	Index uint16

	Bitmap []byte

	Width    int
	Height   int
	BearingX int
	BearingY int

	AdvanceX fixed.Int26_6
	AdvanceY fixed.Int26_6
}

// Area returns the bitmap area in pixels.
func (g *Glyph) Area() int {
	return g.Width * g.Height
}

// Metrics holds face-level metrics at the loader's pixel size.
// Descent is positive and measured below the baseline.
type Metrics struct {
	Ascent  fixed.Int26_6
	Descent fixed.Int26_6
	Height  fixed.Int26_6
}

// LineHeight returns ascent plus descent, which is the distance between
// FreeType's ascender and descender lines.
func (m Metrics) LineHeight() fixed.Int26_6 {
	return m.Ascent + m.Descent
}
