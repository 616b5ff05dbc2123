// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Errors returned by the OpenGL backend.
var (
	// ErrShaderCompile is returned when a shader fails to compile. The
	// error message carries the GL info log.
	ErrShaderCompile = errors.New("opengl: shader compilation failed")

	// ErrProgramLink is returned when the shader program fails to link.
	ErrProgramLink = errors.New("opengl: program link failed")

	// ErrNilAtlas is returned by UploadAtlas for a nil atlas.
	ErrNilAtlas = errors.New("opengl: nil atlas")

	// ErrDestroyed is returned when a destroyed Renderer or Texture is used.
	ErrDestroyed = errors.New("opengl: use after Destroy")
)

// GLError is a non-zero glGetError code observed after an operation.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("opengl: %s: %s (0x%04X)", e.Op, glErrorName(e.Code), e.Code)
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown GL error"
	}
}

// checkError drains the GL error queue and returns the first error, if any.
func checkError(op string) error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == nil {
			first = &GLError{Op: op, Code: code}
		}
	}
	return first
}
