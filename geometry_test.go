// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"image"
	"math"
	"testing"
)

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		name       string
		size       Size
		resolution float64
		want       image.Point
	}{
		{"unit scale", Size{Width: 800, Height: 600}, 1.0, image.Point{X: 800, Y: 600}},
		{"hidpi", Size{Width: 400, Height: 300}, 2.0, image.Point{X: 800, Y: 600}},
		{"fractional scale rounds up", Size{Width: 3.2, Height: 3.2}, 1.5, image.Point{X: 5, Y: 5}},
		{"fractional logical size rounds up", Size{Width: 100.5, Height: 100.1}, 1.0, image.Point{X: 101, Y: 101}},
		{"zero clamps to one pixel", Size{}, 2.0, image.Point{X: 1, Y: 1}},
		{"negative clamps to one pixel", Size{Width: -10, Height: 5}, 1.0, image.Point{X: 1, Y: 5}},
		{"nan clamps to one pixel", Size{Width: math.NaN(), Height: 4}, 1.0, image.Point{X: 1, Y: 4}},
		{"huge clamps to max dim", Size{Width: 1e9, Height: 10}, 4.0, image.Point{X: MaxSurfaceDim, Y: 40}},
		{"infinite clamps to max dim", Size{Width: math.Inf(1), Height: 1}, 1.0, image.Point{X: MaxSurfaceDim, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhysicalSize(tt.size, tt.resolution)
			if got != tt.want {
				t.Errorf("PhysicalSize(%v, %v) = %v, want %v", tt.size, tt.resolution, got, tt.want)
			}
		})
	}
}

func TestTransformFor(t *testing.T) {
	m := TransformFor(2.0)
	got := m.TransformPoint(Pt(3, 4))
	if got.X != 6 || got.Y != 8 {
		t.Errorf("TransformFor(2).TransformPoint(3,4) = (%v, %v), want (6, 8)", got.X, got.Y)
	}

	if !TransformFor(1.0).IsIdentity() {
		t.Error("TransformFor(1) should be the identity")
	}
}

func TestTransformForRoundTrip(t *testing.T) {
	// Forward then inverse must return to logical coordinates.
	m := TransformFor(2.5)
	inv := m.Invert()
	p := inv.TransformPoint(m.TransformPoint(Pt(7, -3)))
	if math.Abs(p.X-7) > 1e-9 || math.Abs(p.Y+3) > 1e-9 {
		t.Errorf("inverse round trip = (%v, %v), want (7, -3)", p.X, p.Y)
	}
}
