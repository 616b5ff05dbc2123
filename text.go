package gltext

import (
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/internal/logging"
)

// MaxStringLen is the maximum number of code points, newlines included,
// kept per string. Longer strings are truncated.
const MaxStringLen = 256

// GlyphSource provides the glyphs and line height used for layout.
// *atlas.Atlas implements it.
type GlyphSource interface {
	// Lookup returns the glyph for r. It must never return nil.
	Lookup(r rune) (*atlas.PackedGlyph, atlas.LookupStatus)

	// LineHeight returns the font line height in whole pixels.
	LineHeight() int
}

// Viewport is the framebuffer size in pixels.
type Viewport struct {
	Width, Height int
}

// StringRecord is one string in a Text together with its measured size.
//
// Width and Height are computed when the string is added. Height is one
// scaled line height per line. Width is the widest line, where a line
// includes the advance of the newline that ends it. Len counts the code
// points that produce quads, which is every code point except '\n'.
type StringRecord struct {
	Text []rune

	// X and Y are the absolute origin; RelX and RelY the relative one.
	// Which pair is used depends on Placement.
	X, Y       int
	RelX, RelY float32

	Scale     float32
	Placement Placement
	Alignment Alignment
	Color     Color

	Width, Height float32
	Len           int
}

// Text is a set of strings laid out against one glyph source and drawn
// with a single draw call.
//
// The batch is rebuilt lazily: AddString, Clear and OnResize mark it dirty
// and the next call to Batch rebuilds it. Text is not safe for concurrent
// use. Several Texts may share one glyph source.
type Text struct {
	src GlyphSource
	vp  Viewport

	strings []StringRecord
	disp    [2]float32

	batch *Batch
	dirty bool
}

// NewText creates an empty Text for a framebuffer of the given size.
func NewText(src GlyphSource, fbWidth, fbHeight int) *Text {
	return &Text{
		src:   src,
		vp:    Viewport{Width: fbWidth, Height: fbHeight},
		dirty: true,
	}
}

// AddString adds a string at an absolute origin.
//
// p must be one of the absolute placements. The returned record is a copy.
// A string longer than MaxStringLen code points is truncated and still
// added; the record is then returned together with ErrStringTooLong.
func (t *Text) AddString(s string, x, y int, scale float32, p Placement, a Alignment, c Color) (*StringRecord, error) {
	if !p.valid() || p == PlacementRelative {
		return nil, ErrInvalidPlacement
	}
	return t.add(StringRecord{
		X:         x,
		Y:         y,
		Scale:     scale,
		Placement: p,
		Alignment: a,
		Color:     c,
	}, s)
}

// AddStringRelative adds a string whose origin is (rx, ry) times the
// framebuffer size. Both components must lie in [0, 1]. The origin follows
// the framebuffer on resize.
func (t *Text) AddStringRelative(s string, rx, ry, scale float32, a Alignment, c Color) (*StringRecord, error) {
	if rx < 0 || rx > 1 || ry < 0 || ry > 1 {
		return nil, &OriginError{X: rx, Y: ry}
	}
	return t.add(StringRecord{
		RelX:      rx,
		RelY:      ry,
		Scale:     scale,
		Placement: PlacementRelative,
		Alignment: a,
		Color:     c,
	}, s)
}

func (t *Text) add(rec StringRecord, s string) (*StringRecord, error) {
	if !(rec.Scale > 0) {
		return nil, ErrInvalidScale
	}
	if !rec.Alignment.valid() {
		return nil, ErrInvalidAlignment
	}

	var err error
	rec.Text = []rune(norm.NFC.String(s))
	if len(rec.Text) > MaxStringLen {
		rec.Text = rec.Text[:MaxStringLen:MaxStringLen]
		err = ErrStringTooLong
	}
	rec.Width, rec.Height, rec.Len = measure(t.src, rec.Text, rec.Scale)

	t.strings = append(t.strings, rec)
	t.dirty = true

	out := rec
	return &out, err
}

// Clear removes all strings.
func (t *Text) Clear() {
	t.strings = t.strings[:0]
	t.dirty = true
}

// OnResize records a new framebuffer size and marks the batch dirty.
// The glyph source is not touched.
func (t *Text) OnResize(width, height int) {
	t.vp = Viewport{Width: width, Height: height}
	t.dirty = true
}

// Viewport returns the current framebuffer size.
func (t *Text) Viewport() Viewport {
	return t.vp
}

// SetDisplacement sets an offset in pixels applied to every vertex at
// draw time. It does not dirty the batch.
func (t *Text) SetDisplacement(x, y float32) {
	t.disp = [2]float32{x, y}
}

// Displacement returns the draw-time offset set by SetDisplacement.
func (t *Text) Displacement() (x, y float32) {
	return t.disp[0], t.disp[1]
}

// LineHeight returns the line height of the glyph source in pixels.
func (t *Text) LineHeight() int {
	return t.src.LineHeight()
}

// Strings returns a copy of the string records.
func (t *Text) Strings() []StringRecord {
	return slices.Clone(t.strings)
}

// Len returns the total number of quads over all strings.
func (t *Text) Len() int {
	n := 0
	for i := range t.strings {
		n += t.strings[i].Len
	}
	return n
}

// Dirty reports whether the next Batch call rebuilds the batch.
func (t *Text) Dirty() bool {
	return t.dirty
}

// Batch returns the render batch, rebuilding it first if the string set or
// the framebuffer size changed. rebuilt reports whether a rebuild happened,
// so callers can skip re-uploading unchanged buffers.
func (t *Text) Batch() (b *Batch, rebuilt bool) {
	if !t.dirty && t.batch != nil {
		return t.batch, false
	}

	t.batch = BuildBatch(t.src, t.vp, t.strings)
	t.dirty = false

	logging.Logger().Debug("text batch rebuilt",
		"strings", len(t.strings),
		"glyphs", t.batch.Glyphs,
		"fallbacks", t.batch.Fallbacks)
	return t.batch, true
}
