package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Backend opens a font for rasterization at a fixed pixel size.
// This abstraction allows swapping the rasterization library.
type Backend interface {
	// Open parses font data and prepares a face at pixelSize pixels per em.
	Open(data []byte, pixelSize int) (Face, error)
}

// Face is an opened font at a fixed pixel size.
// Faces are not safe for concurrent use.
type Face interface {
	// GlyphIndex returns the glyph index for r, or 0 if the font does not
	// map it.
	GlyphIndex(r rune) uint16

	// Render rasterizes r. The returned Glyph has Code, bitmap and metrics
	// set; Index is filled in by the Loader.
	Render(r rune) (Glyph, bool)

	// Metrics returns the face metrics.
	Metrics() Metrics

	// Close releases the face.
	Close() error
}

// backendRegistry holds registered backends.
var backendRegistry = map[string]Backend{
	"ximage":   ximageBackend{},
	"freetype": freetypeBackend{},
}

// defaultBackendName is the backend used when none (or an unknown one)
// is requested.
const defaultBackendName = "ximage"

// RegisterBackend registers a rasterization backend under name.
// Registering an existing name replaces it.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// getBackend returns the backend by name, or the default if not found.
func getBackend(name string) Backend {
	if b, ok := backendRegistry[name]; ok {
		return b
	}
	return backendRegistry[defaultBackendName]
}

// renderFace rasterizes r through an x/image font.Face with the dot at the
// origin. Both built-in backends expose such a face.
//
// The mask returned by font.Face is owned by the face and reused on the
// next call, so the pixels are copied out.
func renderFace(face font.Face, r rune) (Glyph, bool) {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, false
	}

	g := Glyph{
		Code:     r,
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		AdvanceX: advance,
	}
	w, h := dr.Dx(), dr.Dy()
	if w <= 0 || h <= 0 || mask == nil {
		return g, true
	}
	g.Width, g.Height = w, h
	g.Bitmap = make([]byte, w*h)

	if a, ok := mask.(*image.Alpha); ok {
		for y := 0; y < h; y++ {
			off := a.PixOffset(maskp.X, maskp.Y+y)
			copy(g.Bitmap[y*w:(y+1)*w], a.Pix[off:off+w])
		}
		return g, true
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha)
			g.Bitmap[y*w+x] = c.A
		}
	}
	return g, true
}
