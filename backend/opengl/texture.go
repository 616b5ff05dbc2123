// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gltext/atlas"
	"github.com/gogpu/gltext/internal/logging"
)

// Texture is an atlas uploaded as a single-channel GL texture.
type Texture struct {
	id   uint32
	size int
}

// UploadAtlas uploads the atlas bitmap as a GL_R8 texture with linear
// filtering and edge clamping.
func UploadAtlas(a *atlas.Atlas) (*Texture, error) {
	if a == nil {
		return nil, ErrNilAtlas
	}
	size := int32(a.Size())

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Rows are tightly packed bytes.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, size, size, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Bitmap()))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := checkError("upload atlas"); err != nil {
		gl.DeleteTextures(1, &id)
		return nil, err
	}

	logging.Logger().Info("atlas texture uploaded", "size", a.Size(), "glyphs", a.Len())
	return &Texture{id: id, size: a.Size()}, nil
}

// ID returns the GL texture name, or 0 after Destroy.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns the texture dimension in pixels.
func (t *Texture) Size() int {
	return t.size
}

// Destroy deletes the GL texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	if t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
