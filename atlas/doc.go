// Package atlas packs rasterized glyphs into a single-channel texture
// atlas and maps code points to their packed glyph records.
//
// The atlas is a square, power-of-two sized 8-bit bitmap. Pack places
// glyphs on horizontal shelves, tallest first, with a 2 pixel gap around
// every glyph to avoid sampling bleed, and assigns each placed glyph its
// normalized texture rectangle.
//
// # Overflow
//
// Packing stops at the first glyph that does not fit. The atlas built so
// far is still returned and usable; the error matches ErrAtlasOverflow and
// the glyphs that were not placed resolve to the fallback glyph on lookup.
//
// # Building from a font
//
// FontAtlas wraps a glyph.Loader and Pack:
//
//	fa, err := atlas.New(atlas.WithSize(512))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer fa.Close()
//	if err := fa.LoadFont("DejaVuSans.ttf", 32); err != nil {
//	    log.Fatal(err)
//	}
//	failed := fa.LoadCharacterRange(32, 255)
//	a, err := fa.Build()
//	if errors.Is(err, atlas.ErrAtlasOverflow) {
//	    // a is still valid, some glyphs are missing
//	}
//
// # Debug dump
//
// Building with the atlaspng tag enables Atlas.WritePNG, which writes the
// bitmap as an 8-bit grayscale PNG. Without the tag WritePNG returns
// ErrDumpUnsupported and FontAtlas only logs a warning.
package atlas
