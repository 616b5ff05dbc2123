package gltext

import "github.com/gogpu/gltext/atlas"

// Batch holds the buffers for one draw call. Each glyph quad contributes
// four vertices in the order bottom-left, top-left, top-right,
// bottom-right, and six indices forming the triangles (0, 2, 1) and
// (0, 3, 2) of that quad.
//
// The buffers are not interleaved: Vertices and TexCoords carry two floats
// per vertex, Colors four.
type Batch struct {
	Vertices  []float32
	TexCoords []float32
	Colors    []float32
	Indices   []uint32

	// Glyphs is the number of quads.
	Glyphs int

	// Fallbacks counts quads whose code point was not in the glyph source.
	Fallbacks int
}

// VertexCount returns the number of vertices, 4 per quad.
func (b *Batch) VertexCount() int {
	return 4 * b.Glyphs
}

// IndexCount returns the number of indices, 6 per quad.
func (b *Batch) IndexCount() int {
	return 6 * b.Glyphs
}

// BuildBatch lays out records for the framebuffer vp and returns the
// buffers for a single draw call. Code points missing from src are drawn
// with the fallback glyph.
func BuildBatch(src GlyphSource, vp Viewport, records []StringRecord) *Batch {
	total := 0
	for i := range records {
		total += records[i].Len
	}

	b := &Batch{
		Vertices:  make([]float32, 0, 8*total),
		TexCoords: make([]float32, 0, 8*total),
		Colors:    make([]float32, 0, 16*total),
		Indices:   make([]uint32, 0, 6*total),
	}

	lineHeight := src.LineHeight()
	for i := range records {
		b.appendString(src, vp, lineHeight, &records[i])
	}
	return b
}

func (b *Batch) appendString(src GlyphSource, vp Viewport, lineHeight int, rec *StringRecord) {
	scale := rec.Scale
	penX, penY := penOrigin(rec, vp, lineHeight)
	newlines := 0

	for _, r := range rec.Text {
		if r == '\n' {
			newlines++
			penX, penY = penOrigin(rec, vp, lineHeight)
			penY -= float32(lineHeight) * scale * float32(newlines)
			continue
		}

		g, status := src.Lookup(r)
		if status != atlas.LookupHit {
			b.Fallbacks++
		}

		x := penX + float32(g.BearingX)*scale
		y := penY - float32(g.Height-g.BearingY)*scale
		w := float32(g.Width) * scale
		h := float32(g.Height) * scale

		b.Vertices = append(b.Vertices,
			x, y,
			x, y+h,
			x+w, y+h,
			x+w, y,
		)
		// Atlas rows run top to bottom, so the top edge samples TexYMin.
		b.TexCoords = append(b.TexCoords,
			g.TexXMin, g.TexYMax,
			g.TexXMin, g.TexYMin,
			g.TexXMax, g.TexYMin,
			g.TexXMax, g.TexYMax,
		)
		c := rec.Color
		for range 4 {
			b.Colors = append(b.Colors, c.R, c.G, c.B, c.A)
		}

		base := uint32(4 * b.Glyphs)
		b.Indices = append(b.Indices,
			base, base+2, base+1,
			base, base+3, base+2,
		)
		b.Glyphs++

		penX += float32(g.AdvanceX>>6) * scale
	}
}
