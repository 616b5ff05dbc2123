package gltext

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gltext/atlas"
)

func buildGoRegular(t testing.TB, size int) *atlas.Atlas {
	t.Helper()
	fa, err := atlas.New(atlas.WithSize(size))
	if err != nil {
		t.Fatalf("atlas.New failed: %v", err)
	}
	t.Cleanup(func() { _ = fa.Close() })

	if err := fa.LoadFontData(goregular.TTF, 32); err != nil {
		t.Fatalf("LoadFontData failed: %v", err)
	}
	fa.LoadCharacterRange(32, 255)
	a, err := fa.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return a
}

// TestTextIntegration lays out text against a real atlas built from Go Regular.
func TestTextIntegration(t *testing.T) {
	a := buildGoRegular(t, atlas.DefaultSize)
	lh := float32(a.LineHeight())
	if lh <= 0 {
		t.Fatalf("LineHeight() = %v", lh)
	}

	txt := NewText(a, 1280, 720)
	rec, err := txt.AddString("Hello\nWorld", 20, 20, 1, PlacementAbsoluteTopLeft, AlignRight, RGB(1, 1, 1))
	if err != nil {
		t.Fatalf("AddString failed: %v", err)
	}
	if rec.Len != 10 {
		t.Errorf("Len = %d, want 10", rec.Len)
	}
	if rec.Height != 2*lh {
		t.Errorf("Height = %v, want %v", rec.Height, 2*lh)
	}

	line := func(s string) float32 {
		var w float32
		for _, r := range s {
			g, _ := a.Lookup(r)
			w += float32(g.AdvanceX >> 6)
		}
		return w
	}
	if want := max(line("Hello\n"), line("World")); rec.Width != want {
		t.Errorf("Width = %v, want %v", rec.Width, want)
	}

	b, rebuilt := txt.Batch()
	if !rebuilt {
		t.Error("first Batch() did not rebuild")
	}
	if b.Glyphs != 10 || b.Fallbacks != 0 {
		t.Errorf("Glyphs = %d, Fallbacks = %d, want 10, 0", b.Glyphs, b.Fallbacks)
	}
	for i, uv := range b.TexCoords {
		if uv < 0 || uv > 1 {
			t.Fatalf("tex coord %d = %v outside [0, 1]", i, uv)
		}
	}
}

func TestTextIntegration_Fallback(t *testing.T) {
	a := buildGoRegular(t, atlas.DefaultSize)
	txt := NewText(a, 640, 480)

	_, err := txt.AddStringRelative("A\u4e00B", 0.5, 0.5, 1.5, AlignCenterXY, RGB(1, 0, 0))
	if err != nil {
		t.Fatalf("AddStringRelative failed: %v", err)
	}
	b, _ := txt.Batch()
	if b.Glyphs != 3 || b.Fallbacks != 1 {
		t.Errorf("Glyphs = %d, Fallbacks = %d, want 3, 1", b.Glyphs, b.Fallbacks)
	}
}

func TestTextIntegration_SmallAtlas(t *testing.T) {
	fa, err := atlas.New(atlas.WithSize(128))
	if err != nil {
		t.Fatalf("atlas.New failed: %v", err)
	}
	defer fa.Close()
	if err := fa.LoadFontData(goregular.TTF, 32); err != nil {
		t.Fatalf("LoadFontData failed: %v", err)
	}
	fa.LoadCharacterRange(32, 126)

	a, err := fa.Build()
	if !errors.Is(err, atlas.ErrAtlasOverflow) {
		t.Fatalf("Build() error = %v, want ErrAtlasOverflow", err)
	}

	// Glyphs that did not fit still lay out, using the fallback glyph.
	txt := NewText(a, 320, 240)
	if _, err := txt.AddString("The quick brown fox", 0, 0, 1, PlacementAbsoluteBottomLeft, AlignRight, RGB(1, 1, 1)); err != nil {
		t.Fatalf("AddString failed: %v", err)
	}
	b, _ := txt.Batch()
	if b.Glyphs != 19 {
		t.Errorf("Glyphs = %d, want 19", b.Glyphs)
	}
	if b.Fallbacks == 0 {
		t.Error("expected fallbacks in an overflowed atlas")
	}
}
