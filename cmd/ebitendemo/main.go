// Command ebitendemo draws gltext strings inside an Ebitengine game.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/backend/ebitentext"
	"github.com/gogpu/gltext/internal/fontsource"
)

type game struct {
	txt    *gltext.Text
	atlas  *ebiten.Image
	drawer ebitentext.Drawer
	w, h   int
	frame  int
}

func (g *game) Update() error {
	g.frame++
	// Sway the whole text object without rebuilding its batch.
	g.txt.SetDisplacement(float32(g.frame%120-60)/6, 0)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.txt, g.atlas)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.txt.OnResize(g.w, g.h)
	}
	return g.w, g.h
}

func main() {
	var (
		fontName  = flag.String("font", "", "font file or system font name (default: embedded Go Regular)")
		pixelSize = flag.Int("size", 32, "glyph pixel size")
		width     = flag.Int("width", 640, "window width")
		height    = flag.Int("height", 480, "window height")
	)
	flag.Parse()

	data, _, err := fontsource.Resolve(*fontName)
	if err != nil {
		log.Fatalf("Failed to find font: %v", err)
	}
	fa, err := atlas.New()
	if err != nil {
		log.Fatal(err)
	}
	defer fa.Close()
	if err := fa.LoadFontData(data, *pixelSize); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	fa.LoadCharacterRange(32, 255)
	fa.LoadCharacterRange(913, 1023)
	a, err := fa.Build()
	if err != nil {
		log.Printf("Atlas incomplete: %v", err)
	}

	img, err := ebitentext.NewAtlasImage(a)
	if err != nil {
		log.Fatal(err)
	}

	g := &game{
		txt:   gltext.NewText(a, *width, *height),
		atlas: img,
		w:     *width,
		h:     *height,
	}
	g.drawer.Filter = ebiten.FilterLinear
	_, _ = g.txt.AddStringRelative("gltext on Ebitengine", 0.5, 0.5, 1,
		gltext.AlignCenterXY, gltext.RGB(0.9, 0.9, 0.9))
	_, _ = g.txt.AddString("Αβγ bottom left", 10, 10, 0.75,
		gltext.PlacementAbsoluteBottomLeft, gltext.AlignRight, gltext.RGB(0.4, 0.8, 1))

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("gltext")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
