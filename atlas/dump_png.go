//go:build atlaspng

package atlas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DumpSupported reports whether WritePNG is compiled in.
const DumpSupported = true

// WritePNG writes the atlas bitmap to path as an 8-bit grayscale PNG,
// creating parent directories as needed.
func (a *Atlas) WritePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("atlas: dump: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: dump: %w", err)
	}

	img := &image.Gray{
		Pix:    a.bitmap,
		Stride: a.size,
		Rect:   image.Rect(0, 0, a.size, a.size),
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("atlas: dump: %w", err)
	}
	return f.Close()
}
