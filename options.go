// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// CPU-only canvas at default resolution
//	cv := backing.NewCanvas(backing.WithVisibleRegion(region))
//
//	// HiDPI canvas backed by a host GPU device
//	cv := backing.NewCanvas(
//	    backing.WithVisibleRegion(region),
//	    backing.WithResolution(2.0),
//	    backing.WithDevice(app.DeviceHandle()),
//	)
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	resolution float64
	visible    Rect
	size       Size
	redraw     RedrawFunc
	poolCap    int
	device     DeviceHandle
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		resolution: 1.0,
		poolCap:    defaultPoolCap,
	}
}

// defaultPoolCap bounds the recycle pool so a frame that briefly uses
// many overlay layers does not pin their surfaces forever.
const defaultPoolCap = 8

// WithResolution sets the device scale factor (device pixels per
// logical unit). NewCanvas panics if resolution is not positive.
func WithResolution(resolution float64) Option {
	return func(o *canvasOptions) {
		o.resolution = resolution
	}
}

// WithVisibleRegion sets the initial logical visible region. Surfaces
// are sized to this region (times the resolution), not to the whole
// canvas.
func WithVisibleRegion(r Rect) Option {
	return func(o *canvasOptions) {
		o.visible = r
	}
}

// WithCanvasSize sets the logical size of the whole addressable
// canvas, as reported to the redraw callback.
func WithCanvasSize(s Size) Option {
	return func(o *canvasOptions) {
		o.size = s
	}
}

// WithRedraw sets the redraw-request callback invoked when compositing
// finds the backing store empty.
func WithRedraw(fn RedrawFunc) Option {
	return func(o *canvasOptions) {
		o.redraw = fn
	}
}

// WithPoolCap sets the maximum number of retired surfaces kept for
// reuse. 0 means unbounded. The default is 8.
func WithPoolCap(n int) Option {
	return func(o *canvasOptions) {
		o.poolCap = n
	}
}

// WithDevice attaches a host GPU device. New surfaces then use the
// device's preferred surface format instead of RGBA8Unorm.
func WithDevice(h DeviceHandle) Option {
	return func(o *canvasOptions) {
		o.device = h
	}
}
