package atlas

import (
	"errors"

	"github.com/gogpu/gltext/glyph"
	"github.com/gogpu/gltext/internal/logging"
)

// FontAtlas loads glyphs from one font at one pixel size and packs them
// into an Atlas.
//
// Glyphs are queued with LoadCharacter and LoadCharacterRange and packed by
// Build. Loading a font always queues code point 0, the fallback glyph.
//
// FontAtlas is not safe for concurrent use.
type FontAtlas struct {
	config Config
	loader *glyph.Loader

	pending []glyph.Glyph
	queued  map[rune]struct{}

	atlas *Atlas
}

// New creates a FontAtlas with the given options.
func New(opts ...Option) (*FontAtlas, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FontAtlas{config: cfg}, nil
}

// LoadFont opens the font file at path with the given pixel size and
// queues the fallback glyph. Glyphs queued for a previous font are
// discarded.
func (fa *FontAtlas) LoadFont(path string, pixelSize int) error {
	l, err := glyph.NewLoaderFromFile(path, pixelSize, fa.loaderOptions()...)
	if err != nil {
		return err
	}
	return fa.useLoader(l)
}

// LoadFontData is like LoadFont but reads the font from memory.
func (fa *FontAtlas) LoadFontData(data []byte, pixelSize int) error {
	l, err := glyph.NewLoader(data, pixelSize, fa.loaderOptions()...)
	if err != nil {
		return err
	}
	return fa.useLoader(l)
}

func (fa *FontAtlas) loaderOptions() []glyph.Option {
	if fa.config.Backend == "" {
		return nil
	}
	return []glyph.Option{glyph.WithBackend(fa.config.Backend)}
}

func (fa *FontAtlas) useLoader(l *glyph.Loader) error {
	if fa.loader != nil {
		_ = fa.loader.Close()
	}
	fa.loader = l
	fa.pending = fa.pending[:0]
	fa.queued = make(map[rune]struct{})
	fa.atlas = nil

	return fa.LoadCharacter(0)
}

// LoadCharacter rasterizes r and queues it for the next Build.
// A code point that is already queued is skipped.
func (fa *FontAtlas) LoadCharacter(r rune) error {
	if fa.loader == nil {
		return ErrNoFont
	}
	if _, ok := fa.queued[r]; ok {
		return nil
	}
	g, err := fa.loader.Load(r)
	if err != nil {
		return err
	}
	fa.pending = append(fa.pending, g)
	fa.queued[r] = struct{}{}
	return nil
}

// LoadCharacterRange queues every code point in [start, end] that the font
// maps and returns how many could not be loaded. Without a font nothing is
// queued and the whole range counts as failed.
func (fa *FontAtlas) LoadCharacterRange(start, end rune) int {
	if start > end {
		return 0
	}
	if fa.loader == nil {
		return int(int64(end) - int64(start) + 1)
	}

	glyphs, failed := fa.loader.LoadRange(start, end)
	for _, g := range glyphs {
		if _, ok := fa.queued[g.Code]; ok {
			continue
		}
		fa.pending = append(fa.pending, g)
		fa.queued[g.Code] = struct{}{}
	}
	return failed
}

// Pending returns the number of queued glyphs.
func (fa *FontAtlas) Pending() int {
	return len(fa.pending)
}

// Build packs the queued glyphs and returns the atlas.
//
// On overflow the partial atlas is returned together with an error
// matching ErrAtlasOverflow; it is also kept as the current atlas. Queued
// glyphs stay queued, so loading more code points and calling Build again
// packs everything from scratch.
func (fa *FontAtlas) Build() (*Atlas, error) {
	if fa.loader == nil {
		return nil, ErrNoFont
	}

	a, err := Pack(fa.pending, fa.config.Size)
	if a == nil {
		return nil, err
	}
	a.SetLineHeight(fa.loader.Metrics().LineHeight())
	fa.atlas = a

	log := logging.Logger()
	if err != nil {
		log.Warn("atlas overflow",
			"size", fa.config.Size,
			"placed", a.Len(),
			"requested", len(fa.pending))
	} else {
		log.Info("atlas built",
			"size", fa.config.Size,
			"glyphs", a.Len(),
			"lineHeight", a.LineHeight())
	}

	if fa.config.Dump {
		if dumpErr := a.WritePNG(fa.config.DumpPath); dumpErr != nil {
			if errors.Is(dumpErr, ErrDumpUnsupported) {
				log.Warn("atlas dump skipped", "reason", dumpErr)
			} else {
				log.Warn("atlas dump failed", "path", fa.config.DumpPath, "err", dumpErr)
			}
		}
	}

	return a, err
}

// Atlas returns the atlas produced by the last Build, or nil.
func (fa *FontAtlas) Atlas() *Atlas {
	return fa.atlas
}

// Size returns the configured atlas dimension.
func (fa *FontAtlas) Size() int {
	return fa.config.Size
}

// Close releases the font. The built atlas stays usable.
func (fa *FontAtlas) Close() error {
	if fa.loader == nil {
		return nil
	}
	err := fa.loader.Close()
	fa.loader = nil
	fa.pending = nil
	fa.queued = nil
	return err
}
