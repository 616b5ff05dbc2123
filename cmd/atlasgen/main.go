// Command atlasgen packs a font into a glyph atlas and writes it as a
// grayscale PNG, reporting the code points that failed to load or did not
// fit.
//
// Usage:
//
//	atlasgen [-font name|path] [-size px] [-atlas px] [-ranges 32-255,913-1023] [-out atlas.png] [-list]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/internal/fontsource"
)

func main() {
	var (
		fontName  = flag.String("font", "", "font file or system font name (default: embedded Go Regular)")
		pixelSize = flag.Int("size", 32, "glyph pixel size")
		atlasSize = flag.Int("atlas", atlas.DefaultSize, "atlas texture size")
		backend   = flag.String("backend", "", "glyph rasterizer backend (ximage or freetype)")
		ranges    = flag.String("ranges", defaultRanges, "comma separated code points or lo-hi ranges")
		output    = flag.String("out", atlas.DefaultDumpPath, "output PNG file")
		list      = flag.Bool("list", false, "print the glyph table")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		gltext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rs, err := parseRanges(*ranges)
	if err != nil {
		log.Fatalf("Invalid -ranges: %v", err)
	}

	data, where, err := fontsource.Resolve(*fontName)
	if err != nil {
		log.Fatalf("Failed to find font: %v", err)
	}

	opts := []atlas.Option{atlas.WithSize(*atlasSize)}
	if *backend != "" {
		opts = append(opts, atlas.WithBackend(*backend))
	}
	fa, err := atlas.New(opts...)
	if err != nil {
		log.Fatalf("Invalid atlas options: %v", err)
	}
	defer fa.Close()

	if err := fa.LoadFontData(data, *pixelSize); err != nil {
		log.Fatalf("Failed to load font %s: %v", where, err)
	}

	failed := 0
	for _, r := range rs {
		failed += fa.LoadCharacterRange(r.lo, r.hi)
	}

	a, err := fa.Build()
	var overflow *atlas.OverflowError
	switch {
	case errors.As(err, &overflow):
		log.Printf("Atlas overflow: placed %d of %d glyphs, %d left out", overflow.Placed, overflow.Requested, len(a.Unplaced()))
	case err != nil:
		log.Fatalf("Failed to build atlas: %v", err)
	}

	if err := writePNG(*output, a); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("%s: %d glyphs from %s at %dpx, %d failed, saved to %s (%dx%d)",
		filepath.Base(os.Args[0]), a.Len(), where, *pixelSize, failed, *output, a.Size(), a.Size())

	if *list {
		printTable(os.Stdout, a)
	}
}

func writePNG(path string, a *atlas.Atlas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	img := &image.Gray{
		Pix:    a.Bitmap(),
		Stride: a.Size(),
		Rect:   image.Rect(0, 0, a.Size(), a.Size()),
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printTable(out io.Writer, a *atlas.Atlas) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "code\tx\ty\tw\th\tadvance\tu0\tv0\tu1\tv1\t")
	for _, g := range a.Glyphs() {
		fmt.Fprintf(w, "U+%04X\t%d\t%d\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			g.Code, g.X, g.Y, g.Width, g.Height, g.AdvanceX.Round(),
			g.TexXMin, g.TexYMin, g.TexXMax, g.TexYMax)
	}
	_ = w.Flush()
}
