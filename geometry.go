// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"image"
	"math"
)

// MaxSurfaceDim is the largest physical surface dimension, in device
// pixels, that PhysicalSize will produce. It matches the typical GPU
// texture limit so a surface can always be uploaded as a texture.
const MaxSurfaceDim = 16384

// Point represents a 2D point in logical (unscaled) units.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size represents logical width and height.
//
// The canvas size reported to the redraw callback is a Size; so is the
// size component of the visible region.
type Size struct {
	Width, Height float64
}

// Rect is a logical origin plus size. The visible region of the canvas
// is a Rect: the window into the addressable canvas currently on
// screen.
type Rect struct {
	Origin Point
	Size   Size
}

// PhysicalSize returns the physical surface size, in device pixels,
// for a logical size at the given resolution (device pixels per
// logical unit).
//
// Each axis is ceil(dim·resolution) clamped to [1, MaxSurfaceDim].
// Degenerate inputs (zero, negative or NaN dimensions) clamp to the
// 1-pixel floor so the backing store is always constructible.
//
// Resolution must be positive; validating it is the caller's
// responsibility (the Canvas geometry setters enforce it).
func PhysicalSize(s Size, resolution float64) image.Point {
	return image.Point{
		X: physicalDim(s.Width, resolution),
		Y: physicalDim(s.Height, resolution),
	}
}

func physicalDim(logical, resolution float64) int {
	d := math.Ceil(logical * resolution)
	if !(d >= 1) { // also catches NaN
		return 1
	}
	if d > MaxSurfaceDim {
		return MaxSurfaceDim
	}
	return int(d)
}

// TransformFor returns the forward scale transform for the given
// resolution: the transform applied to a layer's drawing context so
// commands issued in logical units land at correct device pixels.
func TransformFor(resolution float64) Matrix {
	return Scale(resolution, resolution)
}
