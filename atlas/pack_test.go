package atlas

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gltext/glyph"
)

// box returns a glyph whose bitmap is filled with fill.
func box(code rune, w, h int, fill byte) glyph.Glyph {
	bmp := make([]byte, w*h)
	for i := range bmp {
		bmp[i] = fill
	}
	return glyph.Glyph{
		Code:     code,
		Bitmap:   bmp,
		Width:    w,
		Height:   h,
		BearingY: h,
		AdvanceX: fixed.I(w + 1),
	}
}

func TestPack_Positions(t *testing.T) {
	glyphs := []glyph.Glyph{
		box('c', 30, 8, 3),
		box('a', 20, 10, 1),
		box('b', 20, 8, 2),
	}
	a, err := Pack(glyphs, 64)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	tests := []struct {
		code rune
		x, y int
	}{
		{'a', 1, 1},
		{'b', 23, 1},
		{'c', 0, 13},
	}
	for _, tt := range tests {
		pg, status := a.Lookup(tt.code)
		if status != LookupHit {
			t.Fatalf("Lookup(%q) status = %v, want hit", tt.code, status)
		}
		if pg.X != tt.x || pg.Y != tt.y {
			t.Errorf("%q placed at (%d, %d), want (%d, %d)", tt.code, pg.X, pg.Y, tt.x, tt.y)
		}
		if pg.Bitmap != nil {
			t.Errorf("%q keeps a bitmap reference", tt.code)
		}
	}

	if got := a.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if a.Overflowed() {
		t.Error("Overflowed() = true, want false")
	}
}

func TestPack_UVRoundTrip(t *testing.T) {
	const size = 128
	a, err := Pack([]glyph.Glyph{box('x', 17, 23, 9), box('y', 5, 3, 9)}, size)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	for _, pg := range a.Glyphs() {
		want := [4]float32{
			float32(pg.X) / size,
			float32(pg.X+pg.Width) / size,
			float32(pg.Y) / size,
			float32(pg.Y+pg.Height) / size,
		}
		got := [4]float32{pg.TexXMin, pg.TexXMax, pg.TexYMin, pg.TexYMax}
		if got != want {
			t.Errorf("%q UV = %v, want %v", pg.Code, got, want)
		}
	}
}

func TestPack_StableOrder(t *testing.T) {
	glyphs := []glyph.Glyph{
		box('q', 4, 6, 1),
		box('p', 4, 6, 1),
		box('r', 4, 6, 1),
	}
	a, err := Pack(glyphs, 64)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	var got []rune
	for _, pg := range a.Glyphs() {
		got = append(got, pg.Code)
	}
	if diff := cmp.Diff([]rune{'q', 'p', 'r'}, got); diff != "" {
		t.Errorf("packing order mismatch (-want +got):\n%s", diff)
	}
}

func TestPack_Idempotent(t *testing.T) {
	glyphs := randomGlyphs(rand.New(rand.NewPCG(7, 11)), 120, 20)

	a1, err1 := Pack(glyphs, 256)
	a2, err2 := Pack(glyphs, 256)
	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("errors differ: %v vs %v", err1, err2)
	}
	if diff := cmp.Diff(a1.Glyphs(), a2.Glyphs()); diff != "" {
		t.Errorf("glyphs differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(a1.Unplaced(), a2.Unplaced()); diff != "" {
		t.Errorf("unplaced differ (-first +second):\n%s", diff)
	}
	if !cmp.Equal(a1.Bitmap(), a2.Bitmap()) {
		t.Error("bitmaps differ")
	}
}

func TestPack_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 50; iter++ {
		n := 1 + rng.IntN(200)
		glyphs := randomGlyphs(rng, n, 1+rng.IntN(40))
		size := 64 << rng.IntN(3)

		a, err := Pack(glyphs, size)
		if a == nil {
			t.Fatalf("iter %d: Pack() returned nil atlas, err = %v", iter, err)
		}
		if err != nil && !errors.Is(err, ErrAtlasOverflow) {
			t.Fatalf("iter %d: unexpected error %v", iter, err)
		}
		if got := a.Len() + len(a.Unplaced()); got != n {
			t.Errorf("iter %d: placed+unplaced = %d, want %d", iter, got, n)
		}
		if (err != nil) != a.Overflowed() {
			t.Errorf("iter %d: err = %v but Overflowed() = %v", iter, err, a.Overflowed())
		}

		checkPlacement(t, a, glyphs)
	}
}

func TestPack_Overflow(t *testing.T) {
	glyphs := make([]glyph.Glyph, 200)
	for i := range glyphs {
		glyphs[i] = box(rune('!'+i), 40, 40, 1)
	}
	a, err := Pack(glyphs, 256)
	if !errors.Is(err, ErrAtlasOverflow) {
		t.Fatalf("Pack() error = %v, want ErrAtlasOverflow", err)
	}
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error %T is not *OverflowError", err)
	}
	// Six columns and six shelves of 40+2 pixels fit in 256.
	if oe.Placed != 36 || a.Len() != 36 {
		t.Errorf("placed = %d (Len %d), want 36", oe.Placed, a.Len())
	}
	if oe.Requested != 200 {
		t.Errorf("Requested = %d, want 200", oe.Requested)
	}
	if got := len(a.Unplaced()); got != 164 {
		t.Errorf("len(Unplaced()) = %d, want 164", got)
	}
	if a.Contains(a.Unplaced()[0]) {
		t.Error("unplaced code point is in the table")
	}
	checkPlacement(t, a, glyphs)
}

func TestPack_OversizedGlyph(t *testing.T) {
	tests := []struct {
		name string
		g    glyph.Glyph
	}{
		{"too tall", box('T', 4, 80, 1)},
		{"too wide", box('W', 80, 4, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Pack([]glyph.Glyph{tt.g}, 64)
			if !errors.Is(err, ErrAtlasOverflow) {
				t.Fatalf("Pack() error = %v, want ErrAtlasOverflow", err)
			}
			if a.Len() != 0 {
				t.Errorf("Len() = %d, want 0", a.Len())
			}
		})
	}
}

func TestPack_Empty(t *testing.T) {
	a, err := Pack(nil, 64)
	if !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("Pack(nil) error = %v, want ErrNoGlyphs", err)
	}
	if a != nil {
		t.Error("expected nil atlas")
	}
}

func TestAtlas_Lookup(t *testing.T) {
	withFallback, err := Pack([]glyph.Glyph{box(0, 6, 8, 1), box('A', 6, 8, 2)}, 64)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	without, err := Pack([]glyph.Glyph{box('A', 6, 8, 2)}, 64)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	tests := []struct {
		name     string
		a        *Atlas
		r        rune
		want     LookupStatus
		wantCode rune
	}{
		{"hit", withFallback, 'A', LookupHit, 'A'},
		{"fallback", withFallback, 'Z', LookupFallback, 0},
		{"hit without fallback", without, 'A', LookupHit, 'A'},
		{"missing", without, 'Z', LookupMissing, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, status := tt.a.Lookup(tt.r)
			if status != tt.want {
				t.Errorf("status = %v, want %v", status, tt.want)
			}
			if pg == nil {
				t.Fatal("Lookup returned nil glyph")
			}
			if pg.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", pg.Code, tt.wantCode)
			}
			if status == LookupMissing && (pg.Width != 0 || pg.AdvanceX != 0) {
				t.Errorf("missing glyph has metrics %+v", pg.Glyph)
			}
		})
	}
}

func TestLookupStatus_String(t *testing.T) {
	tests := []struct {
		s    LookupStatus
		want string
	}{
		{LookupHit, "hit"},
		{LookupFallback, "fallback"},
		{LookupMissing, "missing"},
		{LookupStatus(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("LookupStatus(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestAtlas_ImageShared(t *testing.T) {
	a, err := Pack([]glyph.Glyph{box('A', 3, 3, 200)}, 16)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	img := a.Image()
	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if &img.Pix[0] != &a.Bitmap()[0] {
		t.Error("Image() copied the bitmap")
	}
	if got := img.AlphaAt(1, 1).A; got != 200 {
		t.Errorf("AlphaAt(1, 1) = %d, want 200", got)
	}
	if got := a.Kerning('A', 'V'); got != 0 {
		t.Errorf("Kerning() = %d, want 0", got)
	}
}

func randomGlyphs(rng *rand.Rand, n, maxDim int) []glyph.Glyph {
	glyphs := make([]glyph.Glyph, n)
	for i := range glyphs {
		w := rng.IntN(maxDim + 1)
		h := rng.IntN(maxDim + 1)
		glyphs[i] = box(rune(i+1), w, h, byte(i%255+1))
	}
	return glyphs
}

// checkPlacement verifies bounds, UV range, pairwise disjointness and
// bitmap content of every placed glyph.
func checkPlacement(t *testing.T, a *Atlas, src []glyph.Glyph) {
	t.Helper()

	bounds := image.Rect(0, 0, a.Size(), a.Size())
	byCode := make(map[rune]glyph.Glyph, len(src))
	for _, g := range src {
		byCode[g.Code] = g
	}

	placed := a.Glyphs()
	rects := make([]image.Rectangle, len(placed))
	for i, pg := range placed {
		r := image.Rect(pg.X, pg.Y, pg.X+pg.Width, pg.Y+pg.Height)
		rects[i] = r
		if !r.In(bounds) {
			t.Errorf("%d: rect %v outside atlas %v", pg.Code, r, bounds)
		}
		for _, uv := range []float32{pg.TexXMin, pg.TexXMax, pg.TexYMin, pg.TexYMax} {
			if uv < 0 || uv > 1 {
				t.Errorf("%d: UV %v outside [0, 1]", pg.Code, uv)
			}
		}

		want := byCode[pg.Code]
		for y := 0; y < pg.Height; y++ {
			for x := 0; x < pg.Width; x++ {
				got := a.Bitmap()[(pg.Y+y)*a.Size()+pg.X+x]
				if exp := want.Bitmap[y*want.Width+x]; got != exp {
					t.Fatalf("%d: pixel (%d, %d) = %d, want %d", pg.Code, x, y, got, exp)
				}
			}
		}
	}

	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				t.Errorf("glyphs %d and %d overlap: %v %v", placed[i].Code, placed[j].Code, rects[i], rects[j])
			}
		}
	}
}
