// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Surface is a fixed-size off-screen rendering target.
//
// A Surface owns an RGBA pixel buffer in device pixels plus one bound
// drawing [Context] carrying the forward resolution-scale transform.
// Its size is immutable for its lifetime: geometry changes require
// destruction and recreation, never in-place resize. At any moment a
// Surface is owned by exactly one of the [Store] map or the
// [RecyclePool].
//
// Surfaces are NOT safe for concurrent use.
type Surface struct {
	img    *image.RGBA
	format gputypes.TextureFormat
	ctx    *Context
	closed bool
}

// newSurface creates a surface of the given physical size with the
// given context transform. Dimensions below 1 are floored to 1 device
// pixel so the surface is never degenerate.
func newSurface(width, height int, format gputypes.TextureFormat, transform Matrix) *Surface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	s := &Surface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		format: format,
	}
	s.ctx = &Context{surface: s, transform: transform}
	return s
}

// newSurfaceLike derives a fresh surface from a template: same physical
// size, same format, same context transform, blank content. This is how
// non-base layers are allocated when the recycle pool is empty.
func newSurfaceLike(template *Surface) *Surface {
	return newSurface(
		template.Width(),
		template.Height(),
		template.format,
		template.ctx.transform,
	)
}

// Width returns the surface width in device pixels.
func (s *Surface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in device pixels.
func (s *Surface) Height() int {
	return s.img.Bounds().Dy()
}

// Format returns the pixel format of the surface.
func (s *Surface) Format() gputypes.TextureFormat {
	return s.format
}

// Context returns the drawing context bound to this surface.
func (s *Surface) Context() *Context {
	return s.ctx
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pixels returns direct access to the pixel data.
// For RGBA format, each pixel is 4 bytes: R, G, B, A.
func (s *Surface) Pixels() []byte {
	return s.img.Pix
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	return s.img.Stride
}

// blank resets every pixel to fully transparent.
func (s *Surface) blank() {
	clear(s.img.Pix)
}

// Close releases the surface. After Close the surface must not be
// used. Close is idempotent; multiple calls are safe.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return nil
}
