// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

// Ortho returns a column-major orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) [16]float32 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return [16]float32{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// framebufferProjection maps framebuffer pixels with the origin at the
// bottom left to clip space.
func framebufferProjection(width, height int) [16]float32 {
	return Ortho(0, float32(max(width, 1)), 0, float32(max(height, 1)), -1, 1)
}
