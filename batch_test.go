package gltext

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestBuildBatch_HelloWorld(t *testing.T) {
	src := newStubSource(20)
	txt := NewText(src, 800, 600)
	if _, err := txt.AddString("Hello\nWorld", 10, 100, 1, PlacementAbsoluteBottomLeft, AlignRight, RGBA(1, 0.5, 0, 1)); err != nil {
		t.Fatalf("AddString() error = %v", err)
	}
	b, _ := txt.Batch()

	if b.Glyphs != 10 || b.VertexCount() != 40 || b.IndexCount() != 60 {
		t.Fatalf("Glyphs = %d, VertexCount = %d, IndexCount = %d", b.Glyphs, b.VertexCount(), b.IndexCount())
	}
	if len(b.Vertices) != 80 || len(b.TexCoords) != 80 || len(b.Colors) != 160 || len(b.Indices) != 60 {
		t.Fatalf("buffer lengths = %d %d %d %d", len(b.Vertices), len(b.TexCoords), len(b.Colors), len(b.Indices))
	}
	if b.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", b.Fallbacks)
	}

	// 'H' at pen (10, 100): bearing (1, 9), 8x10.
	wantH := []float32{11, 99, 11, 109, 19, 109, 19, 99}
	if diff := cmp.Diff(wantH, b.Vertices[0:8]); diff != "" {
		t.Errorf("'H' quad mismatch (-want +got):\n%s", diff)
	}
	// 'e' one advance to the right.
	if b.Vertices[8] != 21 {
		t.Errorf("'e' x = %v, want 21", b.Vertices[8])
	}
	// 'W' starts the second line one line height lower.
	wantW := []float32{11, 79, 11, 89, 19, 89, 19, 79}
	if diff := cmp.Diff(wantW, b.Vertices[5*8:6*8]); diff != "" {
		t.Errorf("'W' quad mismatch (-want +got):\n%s", diff)
	}

	g, _ := src.Lookup('H')
	wantUV := []float32{
		g.TexXMin, g.TexYMax,
		g.TexXMin, g.TexYMin,
		g.TexXMax, g.TexYMin,
		g.TexXMax, g.TexYMax,
	}
	if diff := cmp.Diff(wantUV, b.TexCoords[0:8]); diff != "" {
		t.Errorf("'H' UV mismatch (-want +got):\n%s", diff)
	}

	for i := 0; i < len(b.Colors); i += 4 {
		if got := (Color{b.Colors[i], b.Colors[i+1], b.Colors[i+2], b.Colors[i+3]}); got != RGBA(1, 0.5, 0, 1) {
			t.Fatalf("color of vertex %d = %+v", i/4, got)
		}
	}
}

func TestBuildBatch_ThirdLine(t *testing.T) {
	b := BuildBatch(newStubSource(20), Viewport{Width: 800, Height: 600}, []StringRecord{
		mustRecord(t, "a\nb\nc", 0, 200, 2, PlacementAbsoluteBottomLeft, AlignRight),
	})
	// Each newline drops the pen by 2*20 more than the origin.
	wantY := []float32{198, 158, 118}
	for q, want := range wantY {
		if got := b.Vertices[q*8+1]; got != want {
			t.Errorf("line %d y = %v, want %v", q, got, want)
		}
	}
}

func TestBuildBatch_Fallback(t *testing.T) {
	src := newStubSource(20)
	b := BuildBatch(src, Viewport{Width: 100, Height: 100}, []StringRecord{
		mustRecord(t, "a\u4e00b", 0, 0, 1, PlacementAbsoluteBottomLeft, AlignRight),
	})
	if b.Glyphs != 3 {
		t.Fatalf("Glyphs = %d, want 3", b.Glyphs)
	}
	if b.Fallbacks != 1 {
		t.Errorf("Fallbacks = %d, want 1", b.Fallbacks)
	}
	fb, _ := src.Lookup(0)
	if got := b.TexCoords[8+2]; got != fb.TexXMin {
		t.Errorf("second quad u = %v, want fallback %v", got, fb.TexXMin)
	}
	// Fallback advance is 7: 'b' starts at 10 + 7.
	if got := b.Vertices[16]; got != 18 {
		t.Errorf("'b' x = %v, want 18", got)
	}
}

func TestBuildBatch_MissingFallback(t *testing.T) {
	src := newStubSource(20)
	delete(src.glyphs, 0)
	b := BuildBatch(src, Viewport{Width: 100, Height: 100}, []StringRecord{
		mustRecord(t, "?a", 0, 0, 1, PlacementAbsoluteBottomLeft, AlignRight),
	})
	if b.Glyphs != 2 || b.Fallbacks != 1 {
		t.Fatalf("Glyphs = %d, Fallbacks = %d", b.Glyphs, b.Fallbacks)
	}
	// The blank glyph has no size and no advance.
	if b.Vertices[0] != b.Vertices[4] {
		t.Errorf("blank quad has width: %v", b.Vertices[0:8])
	}
	if got := b.Vertices[8]; got != 1 {
		t.Errorf("'a' x = %v, want 1", got)
	}
}

func TestBuildBatch_LeftGrowsLeftward(t *testing.T) {
	b := BuildBatch(newStubSource(20), Viewport{Width: 200, Height: 200}, []StringRecord{
		mustRecord(t, "ab", 100, 0, 1, PlacementAbsoluteBottomLeft, AlignLeft),
	})
	if got := b.Vertices[0]; got != 81 {
		t.Errorf("first quad x = %v, want 81", got)
	}
	if right := b.Vertices[8+4]; right > 100 {
		t.Errorf("last quad right edge = %v, want <= 100", right)
	}
}

func TestBuildBatch_Indices(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	src := newStubSource(18)
	letters := []rune("abcdefghij\n")

	for iter := 0; iter < 20; iter++ {
		var records []StringRecord
		for range 1 + rng.IntN(5) {
			s := make([]rune, rng.IntN(40))
			for i := range s {
				s[i] = letters[rng.IntN(len(letters))]
			}
			records = append(records, mustRecord(t, string(s), rng.IntN(300), rng.IntN(300), 1, PlacementAbsoluteTopLeft, AlignCenterXY))
		}

		b := BuildBatch(src, Viewport{Width: 320, Height: 320}, records)

		total := 0
		for _, r := range records {
			total += r.Len
		}
		if b.Glyphs != total {
			t.Fatalf("iter %d: Glyphs = %d, want %d", iter, b.Glyphs, total)
		}
		if len(b.Vertices) != 8*total || len(b.Indices) != 6*total {
			t.Fatalf("iter %d: %d vertex floats, %d indices for %d quads", iter, len(b.Vertices), len(b.Indices), total)
		}
		for q := 0; q < total; q++ {
			base := uint32(4 * q)
			want := []uint32{base, base + 2, base + 1, base, base + 3, base + 2}
			if diff := cmp.Diff(want, b.Indices[6*q:6*q+6]); diff != "" {
				t.Fatalf("iter %d quad %d indices (-want +got):\n%s", iter, q, diff)
			}
		}
	}
}

func TestVertexBufferLayouts(t *testing.T) {
	layouts := VertexBufferLayouts()
	if len(layouts) != 3 {
		t.Fatalf("len = %d, want 3", len(layouts))
	}
	tests := []struct {
		stride   uint64
		format   gputypes.VertexFormat
		location uint32
	}{
		{8, gputypes.VertexFormatFloat32x2, PositionLocation},
		{8, gputypes.VertexFormatFloat32x2, TexCoordLocation},
		{16, gputypes.VertexFormatFloat32x4, ColorLocation},
	}
	for i, tt := range tests {
		l := layouts[i]
		if uint64(l.ArrayStride) != tt.stride {
			t.Errorf("layout %d stride = %d, want %d", i, l.ArrayStride, tt.stride)
		}
		if len(l.Attributes) != 1 {
			t.Fatalf("layout %d has %d attributes", i, len(l.Attributes))
		}
		if a := l.Attributes[0]; a.Format != tt.format || uint32(a.ShaderLocation) != tt.location {
			t.Errorf("layout %d attribute = %+v", i, a)
		}
	}

	b := &Batch{Vertices: make([]float32, 8), TexCoords: make([]float32, 8), Colors: make([]float32, 16), Indices: make([]uint32, 6)}
	v, tc, c, idx := b.BufferSizes()
	if v != 32 || tc != 32 || c != 64 || idx != 24 {
		t.Errorf("BufferSizes() = %d %d %d %d", v, tc, c, idx)
	}
}

func mustRecord(t *testing.T, s string, x, y int, scale float32, p Placement, a Alignment) StringRecord {
	t.Helper()
	txt := NewText(newStubSource(20), 0, 0)
	rec, err := txt.AddString(s, x, y, scale, p, a, white)
	if err != nil {
		t.Fatalf("AddString(%q) error = %v", s, err)
	}
	return *rec
}
