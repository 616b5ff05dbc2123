package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageBackend implements Backend using golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Open implements Backend.Open.
func (ximageBackend) Open(data []byte, pixelSize int) (Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}

	// DPI 72 makes Size equal to pixels per em.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}
	return &ximageFace{font: f, face: face}, nil
}

// ximageFace implements Face over an opentype face.
type ximageFace struct {
	font *opentype.Font
	face font.Face
	buf  sfnt.Buffer
}

// GlyphIndex implements Face.GlyphIndex.
func (f *ximageFace) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// Render implements Face.Render.
func (f *ximageFace) Render(r rune) (Glyph, bool) {
	return renderFace(f.face, r)
}

// Metrics implements Face.Metrics.
func (f *ximageFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{Ascent: m.Ascent, Descent: m.Descent, Height: m.Height}
}

// Close implements Face.Close.
func (f *ximageFace) Close() error {
	return f.face.Close()
}
