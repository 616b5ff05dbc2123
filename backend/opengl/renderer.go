// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gltext"
	"github.com/gogpu/gltext/internal/logging"
)

// Buffer slots in Renderer.buffers.
const (
	bufPositions = iota
	bufTexCoords
	bufColors
	bufIndices
	numBuffers
)

// Renderer owns the shader program, the vertex array and the buffers used
// to draw gltext batches.
//
// A Renderer can draw several Texts; buffers are re-uploaded whenever the
// batch differs from the one drawn last.
type Renderer struct {
	program uint32
	vao     uint32
	buffers [numBuffers]uint32

	projLoc  int32
	dispLoc  int32
	atlasLoc int32

	uploaded   *gltext.Batch
	indexCount int32
}

// NewRenderer compiles the text shaders and creates the vertex array for a
// framebuffer of the given size.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := newProgram()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		program:  program,
		projLoc:  uniformLocation(program, uniformProjection),
		dispLoc:  uniformLocation(program, uniformDisplacement),
		atlasLoc: uniformLocation(program, uniformAtlas),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(numBuffers, &r.buffers[0])

	gl.BindVertexArray(r.vao)
	r.attribute(bufPositions, gltext.PositionLocation, 2)
	r.attribute(bufTexCoords, gltext.TexCoordLocation, 2)
	r.attribute(bufColors, gltext.ColorLocation, 4)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.buffers[bufIndices])
	gl.BindVertexArray(0)

	gl.UseProgram(r.program)
	gl.Uniform1i(r.atlasLoc, 0)
	r.setProjection(width, height)
	gl.UseProgram(0)

	if err := checkError("create renderer"); err != nil {
		r.Destroy()
		return nil, err
	}

	logging.Logger().Info("opengl text renderer created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"width", width,
		"height", height)
	return r, nil
}

func (r *Renderer) attribute(slot int, location uint32, components int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buffers[slot])
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(location)
}

// Resize updates the projection and the GL viewport for a new framebuffer
// size. Texts must be told separately with Text.OnResize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.UseProgram(r.program)
	r.setProjection(width, height)
	gl.UseProgram(0)
}

func (r *Renderer) setProjection(width, height int) {
	proj := framebufferProjection(width, height)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
}

// Draw draws t with the atlas texture tex in one glDrawElements call.
// Blending must be enabled by the caller.
func (r *Renderer) Draw(t *gltext.Text, tex *Texture) error {
	if r.program == 0 || tex == nil || tex.id == 0 {
		return ErrDestroyed
	}

	b, rebuilt := t.Batch()
	if rebuilt || b != r.uploaded {
		r.upload(b)
	}
	if r.indexCount == 0 {
		return nil
	}

	dx, dy := t.Displacement()

	gl.UseProgram(r.program)
	gl.Uniform2f(r.dispLoc, dx, dy)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.BindVertexArray(r.vao)

	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return checkError("draw text")
}

func (r *Renderer) upload(b *gltext.Batch) {
	r.uploaded = b
	r.indexCount = int32(len(b.Indices))
	if r.indexCount == 0 {
		return
	}

	vSize, tSize, cSize, iSize := b.BufferSizes()

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buffers[bufPositions])
	gl.BufferData(gl.ARRAY_BUFFER, vSize, gl.Ptr(b.Vertices), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buffers[bufTexCoords])
	gl.BufferData(gl.ARRAY_BUFFER, tSize, gl.Ptr(b.TexCoords), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buffers[bufColors])
	gl.BufferData(gl.ARRAY_BUFFER, cSize, gl.Ptr(b.Colors), gl.DYNAMIC_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, iSize, gl.Ptr(b.Indices), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)

	logging.Logger().Debug("text buffers uploaded", "glyphs", b.Glyphs, "bytes", vSize+tSize+cSize+iSize)
}

// Destroy deletes the GL objects. It is safe to call more than once.
func (r *Renderer) Destroy() {
	if r.program == 0 {
		return
	}
	gl.DeleteBuffers(numBuffers, &r.buffers[0])
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
	r.program = 0
	r.vao = 0
	r.buffers = [numBuffers]uint32{}
	r.uploaded = nil
	r.indexCount = 0
}
