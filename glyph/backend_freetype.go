package glyph

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// freetypeBackend implements Backend using github.com/golang/freetype,
// the Go port of the FreeType TrueType rasterizer.
type freetypeBackend struct{}

// Open implements Backend.Open.
func (freetypeBackend) Open(data []byte, pixelSize int) (Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &freetypeFace{font: f, face: face}, nil
}

// freetypeFace implements Face over a truetype face.
type freetypeFace struct {
	font *truetype.Font
	face font.Face
}

// GlyphIndex implements Face.GlyphIndex.
func (f *freetypeFace) GlyphIndex(r rune) uint16 {
	return uint16(f.font.Index(r))
}

// Render implements Face.Render.
func (f *freetypeFace) Render(r rune) (Glyph, bool) {
	return renderFace(f.face, r)
}

// Metrics implements Face.Metrics.
func (f *freetypeFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{Ascent: m.Ascent, Descent: m.Descent, Height: m.Height}
}

// Close implements Face.Close.
func (f *freetypeFace) Close() error {
	return f.face.Close()
}
