package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyph package.
var (
	// ErrFontLoad is wrapped by every error that prevents a Loader from
	// being created (missing file, empty or corrupt data).
	ErrFontLoad = errors.New("glyph: failed to load font")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrInvalidPixelSize is returned for a non-positive pixel size.
	ErrInvalidPixelSize = errors.New("glyph: pixel size must be positive")

	// ErrGlyphNotFound is returned when the font has no glyph for a code point.
	ErrGlyphNotFound = errors.New("glyph: glyph not found")

	// ErrLoaderClosed is returned when loading from a closed Loader.
	ErrLoaderClosed = errors.New("glyph: loader is closed")
)

// NotFoundError reports the code point that has no glyph in the font.
type NotFoundError struct {
	Code rune
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("glyph: no glyph for U+%04X", e.Code)
}

// Unwrap makes errors.Is(err, ErrGlyphNotFound) hold.
func (e *NotFoundError) Unwrap() error { return ErrGlyphNotFound }
