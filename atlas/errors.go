package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the atlas package.
var (
	// ErrAtlasOverflow is matched by the error Pack returns when it ran out
	// of space. The atlas returned alongside it is still valid.
	ErrAtlasOverflow = errors.New("atlas: out of space")

	// ErrNoGlyphs is returned when Pack is called with no glyphs.
	ErrNoGlyphs = errors.New("atlas: no glyphs to pack")

	// ErrNoFont is returned when glyphs are requested before a font is loaded.
	ErrNoFont = errors.New("atlas: no font loaded")

	// ErrDumpUnsupported is returned by WritePNG in builds without the
	// atlaspng tag.
	ErrDumpUnsupported = errors.New("atlas: PNG dump not compiled in (build with -tags atlaspng)")
)

// OverflowError reports how many glyphs were placed before the atlas ran
// out of space.
type OverflowError struct {
	Placed    int
	Requested int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("atlas: out of space: placed %d of %d glyphs", e.Placed, e.Requested)
}

// Unwrap makes errors.Is(err, ErrAtlasOverflow) hold.
func (e *OverflowError) Unwrap() error { return ErrAtlasOverflow }

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
