// Package fontsource resolves the font argument of the gltext commands.
package fontsource

import (
	"errors"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultName is reported for the embedded Go Regular font.
const DefaultName = "Go Regular (embedded)"

// ErrNotFound is returned when a font name matches neither a file nor an
// installed system font.
var ErrNotFound = errors.New("fontsource: font not found")

// Resolve returns the font data for name together with the location it
// was read from.
//
// An empty name selects the embedded Go Regular font. A name that is an
// existing file is read directly; anything else is looked up among the
// installed system fonts, so "DejaVuSans" or "arial.ttf" both work.
func Resolve(name string) ([]byte, string, error) {
	if name == "" {
		return goregular.TTF, DefaultName, nil
	}

	path := name
	if _, err := os.Stat(name); err != nil {
		path, err = findfont.Find(name)
		if err != nil || path == "" {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("fontsource: %w", err)
	}
	return data, path, nil
}
