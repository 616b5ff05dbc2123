// Package gltext lays out Unicode strings as textured quads for a single
// draw call against a packed glyph atlas.
//
// # Overview
//
// A font is rasterized by package glyph and packed into a single-channel
// texture by package atlas. A Text holds a set of strings, each with an
// origin, a scale, a placement mode, an alignment and a color, and turns
// them into one Batch of non-interleaved vertex, texture coordinate, color
// and 32-bit index buffers. Backends in backend/gl and backend/ebiten
// upload the atlas and issue the draw.
//
// # Quick Start
//
//	fa, _ := atlas.New()
//	_ = fa.LoadFont("DejaVuSans.ttf", 32)
//	fa.LoadCharacterRange(32, 255)
//	a, _ := fa.Build()
//
//	t := gltext.NewText(a, 1280, 720)
//	_, _ = t.AddString("Hello\nWorld", 20, 20, 1,
//	    gltext.PlacementAbsoluteTopLeft, gltext.AlignRight, gltext.RGB(1, 1, 1))
//
//	batch, rebuilt := t.Batch()
//
// # Coordinates
//
// Layout works in framebuffer pixels with the origin at the bottom left
// and y pointing up, as in OpenGL window coordinates. Absolute placements
// anchor the origin to one of the four framebuffer corners; the relative
// placement takes the origin as a fraction of the framebuffer size.
//
// # Alignment
//
// AlignRight draws the string to the right of the pen. AlignLeft draws it
// to the left, so the string ends at the pen. AlignCenterX, AlignCenterY
// and AlignCenterXY center the string on the pen along the named axes.
//
// # Logging
//
// gltext is silent by default. SetLogger installs a log/slog logger that
// is shared by all sub-packages.
package gltext
