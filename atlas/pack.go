package atlas

import (
	"cmp"
	"slices"

	"github.com/gogpu/gltext/glyph"
)

// glyphGap is the number of empty pixels kept after every glyph, both
// horizontally and vertically.
const glyphGap = 2

// Pack places glyphs into a new size x size atlas using shelf packing.
//
// Glyphs are sorted by bitmap height, tallest first; glyphs of equal height
// keep their input order, so packing the same input twice gives the same
// layout. The pen starts at (1, 1). A glyph that does not fit on the
// current shelf starts a new one at x = 0 below the tallest glyph of the
// previous shelf. When a new shelf would cross the bottom edge, packing
// stops: the partial atlas is returned with an *OverflowError.
//
// size must be a power of two; Pack does not check it. Pack does not keep
// references to the glyph bitmaps.
func Pack(glyphs []glyph.Glyph, size int) (*Atlas, error) {
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	order := make([]int, len(glyphs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(glyphs[j].Height, glyphs[i].Height)
	})

	a := &Atlas{
		size:   size,
		bitmap: make([]byte, size*size),
		glyphs: make([]PackedGlyph, 0, len(glyphs)),
		table:  make(map[rune]int32, len(glyphs)),
	}

	fsize := float32(size)
	penX, penY := 1, 1
	rowHeight := glyphs[order[0]].Height

	for n, i := range order {
		g := &glyphs[i]

		if penX+g.Width+glyphGap > size {
			penY += rowHeight + glyphGap
			rowHeight = g.Height
			penX = 0
		}
		// The second test only trips for a glyph wider than a whole shelf.
		if penY+rowHeight+glyphGap > size || penX+g.Width+glyphGap > size {
			for _, k := range order[n:] {
				a.unplaced = append(a.unplaced, glyphs[k].Code)
			}
			break
		}

		for row := 0; row < g.Height; row++ {
			dst := (penY+row)*size + penX
			copy(a.bitmap[dst:dst+g.Width], g.Bitmap[row*g.Width:(row+1)*g.Width])
		}

		pg := PackedGlyph{
			Glyph:   *g,
			X:       penX,
			Y:       penY,
			TexXMin: float32(penX) / fsize,
			TexXMax: float32(penX+g.Width) / fsize,
			TexYMin: float32(penY) / fsize,
			TexYMax: float32(penY+g.Height) / fsize,
		}
		pg.Bitmap = nil
		a.glyphs = append(a.glyphs, pg)

		penX += g.Width + glyphGap
	}

	for i := range a.glyphs {
		a.table[a.glyphs[i].Code] = int32(i)
	}

	if len(a.unplaced) > 0 {
		return a, &OverflowError{Placed: len(a.glyphs), Requested: len(glyphs)}
	}
	return a, nil
}
