// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuatlas shows a glyph atlas inside gogpu applications.
//
// The atlas coverage is expanded into premultiplied RGBA tinted with a
// color, uploaded through gpucontext.TextureCreator and drawn with
// gpucontext.TextureDrawer. This is meant for inspecting the packing at
// runtime, next to or instead of the PNG dump written by the atlas package.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if tex == nil {
//	        tex, _ = gpuatlas.Upload(dc.AsTextureDrawer(), fa.Atlas(), gltext.RGB(1, 1, 1))
//	    }
//	    tex.Draw(dc.AsTextureDrawer(), 10, 10)
//	})
package gpuatlas
