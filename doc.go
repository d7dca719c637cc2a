// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backing manages the layered off-screen backing store of an
// interactive canvas.
//
// A backing store is a set of fixed-size surfaces ("layers") composited
// in ascending layer-id order to form the final picture. The package
// owns surface lifecycle: layers are created on demand, retired layers
// are recycled through a LIFO pool to avoid reallocation churn, and the
// whole store is discarded when the visible region or device resolution
// changes (recycled surfaces bake their physical size in at creation).
//
// # Key Principle
//
// backing caches already-rendered content, it does NOT rasterize vector
// paths. Layers expose a drawing [Context] in logical units plus raw
// RGBA pixel access, so any rasterizer (gg, x/image/vector, or a GPU
// backend reached through a [DeviceHandle]) can populate them.
// Compositing reproduces layer pixels exactly: nearest-neighbor
// sampling, no antialiasing, no interpolation.
//
// # Core Types
//
//   - Canvas: compositor and invalidation controller; owns the Store
//   - Store: ordered LayerID → Surface mapping plus the recycle pool
//   - Surface: fixed-size RGBA buffer with a bound drawing Context
//   - RecyclePool: LIFO stack of retired surfaces
//
// # Usage
//
//	var cv *backing.Canvas
//	cv = backing.NewCanvas(
//	    backing.WithVisibleRegion(backing.Rect{Size: backing.Size{Width: 800, Height: 600}}),
//	    backing.WithResolution(2.0), // HiDPI
//	    backing.WithRedraw(func(canvas backing.Size, visible backing.Rect) {
//	        dc := cv.Store().ContextFor(backing.BaseLayer)
//	        // ... issue drawing commands in logical units ...
//	        _ = dc
//	    }),
//	)
//
//	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	cv.Composite(dst, image.Point{}) // creates the base layer, fires the
//	                                 // redraw callback, paints in id order
//
// # Resolution
//
// Surfaces are sized to VisibleRegion × Resolution in device pixels and
// their contexts carry the forward scale, so drawing commands issued in
// logical units land at correct physical pixel positions. Composite
// applies the inverse 1/r transform, returning to logical units on the
// destination.
//
// # Thread Safety
//
// The package follows the single-threaded paint-path model: a Canvas
// and its Store must be used from one goroutine, typically the UI
// thread driving paint events. No operation blocks or spawns work.
// The redraw callback runs synchronously inside Composite and must not
// call Composite again on the same Canvas.
package backing
