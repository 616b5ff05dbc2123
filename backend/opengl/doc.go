// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package opengl draws gltext batches with OpenGL 4.1 core profile.
//
// The atlas is uploaded once as a GL_R8 texture. Every Text is drawn with
// one glDrawElements call over three non-interleaved vertex buffers
// (position, texture coordinate, color) and a 32-bit index buffer. Buffers
// are re-uploaded only when the Text rebuilt its batch.
//
// # Usage
//
// All functions must be called on the thread that owns the current GL
// context, after gl.Init:
//
//	tex, err := opengl.UploadAtlas(a)
//	if err != nil {
//	    return err
//	}
//	defer tex.Destroy()
//
//	r, err := opengl.NewRenderer(width, height)
//	if err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	for !win.ShouldClose() {
//	    gl.Clear(gl.COLOR_BUFFER_BIT)
//	    if err := r.Draw(text, tex); err != nil {
//	        log.Println(err)
//	    }
//	    win.SwapBuffers()
//	}
//
// The vertex shader adds the Text displacement (the disp uniform) to every
// vertex, so a Text can be moved without rebuilding its batch.
package opengl
