// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitentext draws gltext batches onto Ebitengine images.
//
// The atlas is converted once into a premultiplied white RGBA image with
// NewAtlasImage. Each frame, Drawer.Draw converts the text batch into
// Ebitengine vertices and issues DrawTriangles calls of at most
// MaxQuadsPerDraw glyphs, since Ebitengine indices are 16 bits wide.
//
// gltext positions have their origin at the bottom left of the
// framebuffer; Ebitengine images have it at the top left. Draw flips the Y
// axis using the height of the destination image, so the Text should be
// sized to the destination bounds.
//
//	img, _ := ebitentext.NewAtlasImage(fa.Atlas())
//	var d ebitentext.Drawer
//	d.Draw(screen, txt, img)
package ebitentext
