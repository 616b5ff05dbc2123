// Command gltextdemo opens a window and draws a few strings with gltext
// through the OpenGL 4.1 backend.
//
// Usage:
//
//	gltextdemo [-font name|path] [-size px] [-atlas px] [-vsync] [-v]
//
// Press Escape to quit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/backend/opengl"
	"github.com/gogpu/gltext/internal/fontsource"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		fontName  = flag.String("font", "", "font file or system font name (default: embedded Go Regular)")
		pixelSize = flag.Int("size", 32, "glyph pixel size")
		atlasSize = flag.Int("atlas", atlas.DefaultSize, "atlas texture size")
		backend   = flag.String("backend", "", "glyph rasterizer backend (ximage or freetype)")
		width     = flag.Int("width", 512, "window width")
		height    = flag.Int("height", 512, "window height")
		vsync     = flag.Bool("vsync", true, "synchronize with the display refresh")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gltext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to init GLFW: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(*width, *height, "gltext", nil, nil)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	win.MakeContextCurrent()
	if *vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to init OpenGL: %v", err)
	}

	fa, err := buildAtlas(*fontName, *pixelSize, *atlasSize, *backend)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}
	defer fa.Close()

	tex, err := opengl.UploadAtlas(fa.Atlas())
	if err != nil {
		log.Fatalf("Failed to upload atlas: %v", err)
	}
	defer tex.Destroy()

	fbW, fbH := win.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbW, fbH)
	if err != nil {
		log.Fatalf("Failed to create text renderer: %v", err)
	}
	defer renderer.Destroy()

	txt := gltext.NewText(fa.Atlas(), fbW, fbH)
	addStrings(txt)

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		renderer.Resize(w, h)
		txt.OnResize(w, h)
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for !win.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.1, 0.1, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.Draw(txt, tex); err != nil {
			log.Printf("draw: %v", err)
		}

		win.SwapBuffers()
	}
}

func buildAtlas(fontName string, pixelSize, size int, backend string) (*atlas.FontAtlas, error) {
	data, where, err := fontsource.Resolve(fontName)
	if err != nil {
		return nil, err
	}

	opts := []atlas.Option{atlas.WithSize(size)}
	if backend != "" {
		opts = append(opts, atlas.WithBackend(backend))
	}
	fa, err := atlas.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := fa.LoadFontData(data, pixelSize); err != nil {
		return nil, err
	}

	failed := fa.LoadCharacterRange(32, 255)
	failed += fa.LoadCharacterRange(913, 1023) // Greek and Coptic
	if fa.LoadCharacter(0x1F601) != nil {
		failed++
	}
	log.Printf("Loaded %s: %d characters failed", where, failed)

	if _, err := fa.Build(); err != nil {
		// An overflowing atlas is still usable; missing glyphs fall back.
		log.Printf("Atlas incomplete: %v", err)
	}
	return fa, nil
}

func addStrings(txt *gltext.Text) {
	white := gltext.RGB(0.75, 0.75, 0.75)
	red := gltext.RGB(1, 0, 0)

	add := func(_ *gltext.StringRecord, err error) {
		if err != nil {
			log.Printf("add string: %v", err)
		}
	}
	add(txt.AddString("Hello World! (Left-aligned)", 50, 50, 1,
		gltext.PlacementAbsoluteTopRight, gltext.AlignLeft, white))
	add(txt.AddStringRelative("Relative text (0.5, 0.5)", 0.5, 0.5, 1,
		gltext.AlignCenterXY, white))
	add(txt.AddString("Hello World! (Right-aligned)", 50, 50, 1,
		gltext.PlacementAbsoluteBottomLeft, gltext.AlignRight, white))
	add(txt.AddString("big text", 50, 250, 2,
		gltext.PlacementAbsoluteBottomLeft, gltext.AlignRight, white))
	add(txt.AddString("small text", 50, 230, 0.25,
		gltext.PlacementAbsoluteBottomLeft, gltext.AlignRight, white))
	add(txt.AddStringRelative("Strings of different colors share one batch!\nAnd line breaks!",
		0.5, 0.75, 0.5, gltext.AlignCenterXY, red))
}
