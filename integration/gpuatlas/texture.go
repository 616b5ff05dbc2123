// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/internal/logging"
)

var (
	// ErrInvalidDrawContext is returned when the draw context is nil or the
	// created texture cannot be drawn by it.
	ErrInvalidDrawContext = errors.New("gpuatlas: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the draw context has no
	// texture creator.
	ErrInvalidRenderer = errors.New("gpuatlas: renderer must implement gpucontext.TextureCreator")

	// ErrNilAtlas is returned by Upload for a nil atlas.
	ErrNilAtlas = errors.New("gpuatlas: nil atlas")

	// ErrTextureDestroyed is returned by Draw after Destroy.
	ErrTextureDestroyed = errors.New("gpuatlas: texture destroyed")
)

// textureDestroyer is implemented by textures that release GPU memory.
type textureDestroyer interface {
	Destroy()
}

// createFunc matches gpucontext.TextureCreator.NewTextureFromRGBA.
type createFunc func(width, height int, data []byte) (any, error)

// Texture is an atlas uploaded as an RGBA GPU texture.
type Texture struct {
	tex  any
	size int
}

// Upload expands the atlas into RGBA tinted with c and creates a GPU
// texture from it.
func Upload(dc gpucontext.TextureDrawer, a *atlas.Atlas, c gltext.Color) (*Texture, error) {
	if dc == nil {
		return nil, ErrInvalidDrawContext
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return nil, ErrInvalidRenderer
	}
	return upload(func(w, h int, data []byte) (any, error) {
		return creator.NewTextureFromRGBA(w, h, data)
	}, a, c)
}

func upload(create createFunc, a *atlas.Atlas, c gltext.Color) (*Texture, error) {
	if a == nil {
		return nil, ErrNilAtlas
	}
	size := a.Size()
	tex, err := create(size, size, ExpandRGBA(a.Bitmap(), c))
	if err != nil {
		return nil, fmt.Errorf("gpuatlas: NewTextureFromRGBA failed: %w", err)
	}

	// The expanded pixels are premultiplied.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	logging.Logger().Info("atlas texture created", "size", size, "glyphs", a.Len())
	return &Texture{tex: tex, size: size}, nil
}

// ExpandRGBA converts single-channel coverage into premultiplied RGBA
// pixels of color c.
func ExpandRGBA(coverage []byte, c gltext.Color) []byte {
	p := c.Premultiply()
	rgba := [4]float32{p.R, p.G, p.B, p.A}
	out := make([]byte, 4*len(coverage))
	for i, v := range coverage {
		if v == 0 {
			continue
		}
		cov := float32(v)
		for ch, f := range rgba {
			out[4*i+ch] = byte(clamp01(f)*cov + 0.5)
		}
	}
	return out
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// Size returns the texture dimension in pixels.
func (t *Texture) Size() int {
	return t.size
}

// Draw draws the texture with its top-left corner at (x, y).
func (t *Texture) Draw(dc gpucontext.TextureDrawer, x, y float32) error {
	if t.tex == nil {
		return ErrTextureDestroyed
	}
	if dc == nil {
		return ErrInvalidDrawContext
	}
	gpuTex, ok := t.tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Destroy releases the GPU texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	if t.tex == nil {
		return
	}
	if d, ok := t.tex.(textureDestroyer); ok {
		d.Destroy()
	}
	t.tex = nil
}
