// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Context is a drawing context bound to a single [Surface].
//
// Coordinates passed to Context methods are logical units; the context
// applies its transform (the forward resolution scale) so content lands
// at correct device pixel positions. The operations here cover simple
// shape-and-color drawing; vector path rasterization is the job of an
// external 2D backend writing through [Context.Image].
type Context struct {
	surface   *Surface
	transform Matrix
}

// Surface returns the surface this context draws into.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Transform returns the context's current transform.
func (c *Context) Transform() Matrix {
	return c.transform
}

// Image returns the surface's backing *image.RGBA for direct pixel
// access, e.g. by an external rasterizer. Pixels written through it are
// device pixels; apply [Context.Transform] to position logical content.
func (c *Context) Image() *image.RGBA {
	return c.surface.img
}

// Clear resets the whole surface to fully transparent.
func (c *Context) Clear() {
	c.surface.blank()
}

// ClearRect resets a logical rectangle to fully transparent.
func (c *Context) ClearRect(r Rect) {
	draw.Draw(c.surface.img, c.deviceRect(r), image.Transparent, image.Point{}, draw.Src)
}

// SetPixel sets the device pixel that the logical point maps to.
func (c *Context) SetPixel(p Point, col color.Color) {
	dp := c.transform.TransformPoint(p)
	c.surface.img.Set(int(math.Floor(dp.X)), int(math.Floor(dp.Y)), col)
}

// FillRect fills a logical rectangle with a solid color, replacing the
// destination pixels.
func (c *Context) FillRect(r Rect, col color.Color) {
	draw.Draw(c.surface.img, c.deviceRect(r), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage draws an image with its top-left corner at the device
// position the logical point maps to. The image's own pixels are
// treated as device pixels and composited source-over.
func (c *Context) DrawImage(img image.Image, at Point) {
	dp := c.transform.TransformPoint(at)
	r := img.Bounds().Sub(img.Bounds().Min).
		Add(image.Point{X: int(math.Floor(dp.X)), Y: int(math.Floor(dp.Y))})
	draw.Draw(c.surface.img, r, img, img.Bounds().Min, draw.Over)
}

// deviceRect maps a logical rectangle to device pixels, covering every
// pixel the logical rectangle touches.
func (c *Context) deviceRect(r Rect) image.Rectangle {
	min := c.transform.TransformPoint(r.Origin)
	max := c.transform.TransformPoint(Point{
		X: r.Origin.X + r.Size.Width,
		Y: r.Origin.Y + r.Size.Height,
	})
	return image.Rect(
		int(math.Floor(min.X)), int(math.Floor(min.Y)),
		int(math.Ceil(max.X)), int(math.Ceil(max.Y)),
	)
}
