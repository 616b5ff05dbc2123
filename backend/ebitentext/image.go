// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitentext

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gltext/atlas"
)

// ErrNilAtlas is returned by NewAtlasImage for a nil atlas.
var ErrNilAtlas = errors.New("ebitentext: nil atlas")

// NewAtlasImage converts the atlas coverage bitmap into an Ebitengine image.
func NewAtlasImage(a *atlas.Atlas) (*ebiten.Image, error) {
	if a == nil {
		return nil, ErrNilAtlas
	}
	return ebiten.NewImageFromImage(atlasRGBA(a.Image())), nil
}

// atlasRGBA expands coverage into premultiplied white, which is the pixel
// format Ebitengine images use.
func atlasRGBA(src *image.Alpha) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srow := src.Pix[src.PixOffset(b.Min.X, y):]
		drow := dst.Pix[dst.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			v := srow[x]
			if v == 0 {
				continue
			}
			d := drow[4*x : 4*x+4 : 4*x+4]
			d[0], d[1], d[2], d[3] = v, v, v, v
		}
	}
	return dst
}
