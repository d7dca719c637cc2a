// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RedrawFunc is the redraw-request callback. It is invoked at most once
// per composite cycle, when compositing finds the backing store empty,
// with the current canvas size and visible region. The application is
// expected to repopulate layer content through [Store.ContextFor],
// either synchronously or by scheduling a follow-up paint.
//
// The callback runs on the paint path: it must not block indefinitely
// and must not call [Canvas.Composite] on the same canvas.
type RedrawFunc func(canvas Size, visible Rect)

// Canvas composites the backing store onto paint destinations and owns
// the invalidation policy that keeps surfaces consistent with the
// visible region and device resolution.
//
// Canvas is NOT safe for concurrent use; drive it from the thread that
// handles paint events.
type Canvas struct {
	store      *Store
	resolution float64
	visible    Rect
	size       Size
	redraw     RedrawFunc
	device     DeviceHandle

	// compositing guards against the redraw callback re-entering
	// Composite.
	compositing bool
}

// NewCanvas creates a canvas with an empty backing store.
// The zero configuration is a 0×0 visible region at resolution 1.0
// with no redraw callback; see the With* options.
func NewCanvas(opts ...Option) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolution <= 0 || math.IsNaN(o.resolution) {
		panic("backing: resolution must be positive")
	}

	return &Canvas{
		store:      NewStore(o.poolCap),
		resolution: o.resolution,
		visible:    o.visible,
		size:       o.size,
		redraw:     o.redraw,
		device:     o.device,
	}
}

// Store returns the canvas's backing store.
func (c *Canvas) Store() *Store {
	return c.store
}

// Resolution returns the device scale factor (device pixels per
// logical unit).
func (c *Canvas) Resolution() float64 {
	return c.resolution
}

// VisibleRegion returns the logical region surfaces are sized to.
func (c *Canvas) VisibleRegion() Rect {
	return c.visible
}

// CanvasSize returns the logical size of the whole addressable canvas.
func (c *Canvas) CanvasSize() Size {
	return c.size
}

// SetResolution changes the device scale factor. Panics if resolution
// is not positive: non-positive values are a caller contract violation
// (validate or clamp upstream).
//
// A change invalidates the whole backing store, pool included: pooled
// surfaces were sized for the old resolution and reusing them would
// silently produce incorrectly scaled content.
func (c *Canvas) SetResolution(resolution float64) {
	if resolution <= 0 || math.IsNaN(resolution) {
		panic("backing: resolution must be positive")
	}
	if resolution == c.resolution {
		return
	}
	c.resolution = resolution
	c.store.InvalidateAll()
}

// SetVisibleRegion moves or resizes the logical visible region. A size
// change invalidates the whole backing store; a pure origin change
// keeps it, since surfaces are sized to the region, not positioned by
// it.
func (c *Canvas) SetVisibleRegion(r Rect) {
	sizeChanged := r.Size != c.visible.Size
	c.visible = r
	if sizeChanged {
		c.store.InvalidateAll()
	}
}

// SetCanvasSize records the logical size of the whole canvas. It is
// reported to the redraw callback and does not affect surface sizing:
// surfaces cover the visible region only.
func (c *Canvas) SetCanvasSize(s Size) {
	c.size = s
}

// SetRedraw replaces the redraw-request callback. A nil callback is
// valid: the base layer then stays blank after recreation.
func (c *Canvas) SetRedraw(fn RedrawFunc) {
	c.redraw = fn
}

// InvalidateAll discards the backing store and recycle pool, forcing
// full recreation on the next composite. The geometry setters call
// this automatically; it remains exported for callers whose geometry
// policy lives elsewhere.
func (c *Canvas) InvalidateAll() {
	c.store.InvalidateAll()
}

// Composite paints the backing store onto dst with layer origins at
// `at`, in ascending layer-id order so higher ids deterministically
// paint over lower ids.
//
// An empty store first gets its base surface created (sized
// VisibleRegion × Resolution) and the redraw callback fired, before any
// painting happens. Layer content is already-rendered pixels, so
// compositing is exact: nearest-neighbor sampling, no antialiasing. At
// resolutions other than 1.0 the inverse 1/r transform maps the
// pre-scaled layer content back to logical units on dst.
func (c *Canvas) Composite(dst draw.Image, at image.Point) {
	if c.compositing {
		Logger().Warn("backing: reentrant Composite ignored")
		return
	}
	c.compositing = true
	defer func() { c.compositing = false }()

	if c.store.Empty() {
		c.ensureBackingStore()
	}

	for _, id := range c.store.ids() {
		l := c.store.layers[id]
		if l.hidden {
			continue
		}
		src := l.surface.Image()
		if c.resolution == 1 {
			draw.Draw(dst, src.Bounds().Add(at), src, image.Point{}, draw.Over)
			continue
		}
		inv := 1 / c.resolution
		m := f64.Aff3{
			inv, 0, float64(at.X),
			0, inv, float64(at.Y),
		}
		draw.NearestNeighbor.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	}
}

// Snapshot composites the backing store into a fresh image sized to
// the logical visible region. Like Composite, an empty store is first
// recreated and redrawn.
func (c *Canvas) Snapshot() *image.RGBA {
	w := physicalDim(c.visible.Size.Width, 1)
	h := physicalDim(c.visible.Size.Height, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	c.Composite(dst, image.Point{})
	return dst
}

// ensureBackingStore performs first-time creation for an empty store:
// it allocates the base surface at VisibleRegion × Resolution device
// pixels with the forward scale applied to its context, then asks the
// owner to repopulate content. With no callback registered the base
// layer stays blank, which is not an error.
func (c *Canvas) ensureBackingStore() {
	phys := PhysicalSize(c.visible.Size, c.resolution)
	c.store.createBase(phys.X, phys.Y, c.surfaceFormat(), TransformFor(c.resolution))

	if c.redraw != nil {
		c.redraw(c.size, c.visible)
	}
}

// surfaceFormat resolves the pixel format for new surfaces: the host
// device's preferred surface format when a device is attached,
// RGBA8Unorm otherwise.
func (c *Canvas) surfaceFormat() gputypes.TextureFormat {
	if c.device != nil {
		if f := c.device.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return gputypes.TextureFormatRGBA8Unorm
}
