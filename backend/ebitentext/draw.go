// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitentext

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/internal/logging"
)

// MaxQuadsPerDraw is the number of glyphs addressable with 16-bit indices.
const MaxQuadsPerDraw = (1 << 16) / 4

// Drawer converts gltext batches into Ebitengine triangles.
//
// The zero value is ready to use. Vertex and index storage is reused across
// frames, so a Drawer must not be shared between goroutines.
type Drawer struct {
	// Filter is the atlas sampling filter. The zero value is
	// ebiten.FilterNearest; ebiten.FilterLinear matches the OpenGL backend.
	Filter ebiten.Filter

	vertices []ebiten.Vertex
	indices  []uint16

	batch     *gltext.Batch
	dstHeight int
	disp      [2]float32
}

// Draw draws t onto dst using atlasImg, the image created by NewAtlasImage
// for the atlas t was laid out with.
func (d *Drawer) Draw(dst *ebiten.Image, t *gltext.Text, atlasImg *ebiten.Image) {
	if dst == nil || t == nil || atlasImg == nil {
		return
	}

	b, rebuilt := t.Batch()
	h := dst.Bounds().Dy()
	dx, dy := t.Displacement()
	if rebuilt || b != d.batch || h != d.dstHeight || d.disp != [2]float32{dx, dy} {
		d.vertices = appendVertices(d.vertices[:0], b, atlasImg.Bounds().Dx(), h, dx, dy)
		d.batch, d.dstHeight, d.disp = b, h, [2]float32{dx, dy}
	}

	quads := len(d.vertices) / 4
	if quads == 0 {
		return
	}
	d.indices = quadIndices(d.indices, min(quads, MaxQuadsPerDraw))

	opts := &ebiten.DrawTrianglesOptions{Filter: d.Filter}
	draws := 0
	for q := 0; q < quads; q += MaxQuadsPerDraw {
		n := min(quads-q, MaxQuadsPerDraw)
		dst.DrawTriangles(d.vertices[4*q:4*(q+n)], d.indices[:6*n], atlasImg, opts)
		draws++
	}
	if draws > 1 {
		logging.Logger().Debug("text drawn in chunks", "glyphs", quads, "draws", draws)
	}
}

// appendVertices converts batch vertices to Ebitengine vertices. Positions
// are moved by the displacement and flipped against dstHeight; texture
// coordinates are scaled to atlas pixels.
func appendVertices(vs []ebiten.Vertex, b *gltext.Batch, atlasSize, dstHeight int, dx, dy float32) []ebiten.Vertex {
	size := float32(atlasSize)
	h := float32(dstHeight)
	for i := range b.VertexCount() {
		vs = append(vs, ebiten.Vertex{
			DstX:   b.Vertices[2*i] + dx,
			DstY:   h - (b.Vertices[2*i+1] + dy),
			SrcX:   b.TexCoords[2*i] * size,
			SrcY:   b.TexCoords[2*i+1] * size,
			ColorR: b.Colors[4*i],
			ColorG: b.Colors[4*i+1],
			ColorB: b.Colors[4*i+2],
			ColorA: b.Colors[4*i+3],
		})
	}
	return vs
}

// quadIndices returns indices for n quads using the same winding as
// gltext batches, reusing buf when it is long enough.
func quadIndices(buf []uint16, n int) []uint16 {
	if len(buf) >= 6*n {
		return buf
	}
	buf = buf[:0]
	for q := range n {
		base := uint16(4 * q)
		buf = append(buf, base, base+2, base+1, base, base+3, base+2)
	}
	return buf
}
