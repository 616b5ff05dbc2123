package glyph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/gltext/internal/logging"
)

// Loader produces glyphs for one font at one pixel size.
//
// The pixel size is fixed when the Loader is created; a different size
// needs a new Loader. Loader is not safe for concurrent use.
type Loader struct {
	face      Face
	pixelSize int
	metrics   Metrics
}

// NewLoader opens font data (TTF or OTF) at pixelSize pixels per em.
// Every failure to open the font wraps ErrFontLoad.
func NewLoader(data []byte, pixelSize int, opts ...Option) (*Loader, error) {
	if pixelSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPixelSize, pixelSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, ErrEmptyFontData)
	}

	config := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&config)
	}

	face, err := getBackend(config.backendName).Open(data, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	return &Loader{
		face:      face,
		pixelSize: pixelSize,
		metrics:   face.Metrics(),
	}, nil
}

// NewLoaderFromFile opens a font file at pixelSize pixels per em.
func NewLoaderFromFile(path string, pixelSize int, opts ...Option) (*Loader, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return NewLoader(data, pixelSize, opts...)
}

// PixelSize returns the pixel size the loader rasterizes at.
func (l *Loader) PixelSize() int {
	return l.pixelSize
}

// Metrics returns the face metrics at the loader's pixel size.
func (l *Loader) Metrics() Metrics {
	return l.metrics
}

// Load rasterizes the glyph for r.
//
// If the font does not map r, Load returns a *NotFoundError. Code point 0
// is the exception: it always yields the undefined-character glyph.
func (l *Loader) Load(r rune) (Glyph, error) {
	if l.face == nil {
		return Glyph{}, ErrLoaderClosed
	}

	idx := l.face.GlyphIndex(r)
	if idx == 0 && r != 0 {
		return Glyph{}, &NotFoundError{Code: r}
	}

	g, ok := l.face.Render(r)
	if !ok {
		return Glyph{}, &NotFoundError{Code: r}
	}
	g.Code = r
	g.Index = idx
	return g, nil
}

// LoadRange calls Load for every code point in [start, end] and returns
// the loaded glyphs in code point order together with the number of code
// points that failed. Individual failures never abort the range.
func (l *Loader) LoadRange(start, end rune) ([]Glyph, int) {
	if start > end {
		return nil, 0
	}

	n := int64(end) - int64(start) + 1
	glyphs := make([]Glyph, 0, min(n, 4096))
	failed := 0
	var failedByScript map[language.Script]int

	// int64 counter so that end == math.MaxInt32 terminates.
	for c := int64(start); c <= int64(end); c++ {
		r := rune(c)
		g, err := l.Load(r)
		if err != nil {
			failed++
			if failedByScript == nil {
				failedByScript = make(map[language.Script]int)
			}
			failedByScript[language.LookupScript(r)]++
			continue
		}
		glyphs = append(glyphs, g)
	}

	if failed > 0 {
		logFailures(start, end, failed, failedByScript)
	}
	return glyphs, failed
}

// logFailures reports range failures grouped by Unicode script.
func logFailures(start, end rune, failed int, byScript map[language.Script]int) {
	log := logging.Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	scripts := make([]string, 0, len(byScript))
	counts := make(map[string]int, len(byScript))
	for s, n := range byScript {
		name := fmt.Sprint(s)
		if _, seen := counts[name]; !seen {
			scripts = append(scripts, name)
		}
		counts[name] += n
	}
	sort.Strings(scripts)

	attrs := make([]any, 0, len(scripts))
	for _, name := range scripts {
		attrs = append(attrs, slog.Int(name, counts[name]))
	}
	log.Debug("glyph range partially loaded",
		"start", fmt.Sprintf("U+%04X", start),
		"end", fmt.Sprintf("U+%04X", end),
		"failed", failed,
		slog.Group("scripts", attrs...))
}

// Close releases the font face. Load fails with ErrLoaderClosed afterwards.
func (l *Loader) Close() error {
	if l.face == nil {
		return nil
	}
	err := l.face.Close()
	l.face = nil
	return err
}
