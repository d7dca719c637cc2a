// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

// RecyclePool is a last-in-first-out stack of retired surfaces kept for
// reuse without reallocation.
//
// Every pooled surface carries the physical size and transform it was
// created with, so the pool is only valid for one geometry: on any
// visible-region or resolution change the whole pool must be drained
// rather than inspected per item ([Store.InvalidateAll] does this).
//
// RecyclePool is NOT safe for concurrent use.
type RecyclePool struct {
	surfaces []*Surface
	capacity int // max retained surfaces; 0 = unbounded
}

// NewRecyclePool creates an empty pool retaining at most capacity
// surfaces. A capacity of 0 means unbounded.
func NewRecyclePool(capacity int) *RecyclePool {
	return &RecyclePool{capacity: capacity}
}

// Push retires a surface into the pool. If the pool is at capacity the
// surface is closed and discarded instead.
func (p *RecyclePool) Push(s *Surface) {
	if s == nil {
		return
	}
	if p.capacity > 0 && len(p.surfaces) >= p.capacity {
		Logger().Debug("backing: recycle pool full, discarding surface",
			"capacity", p.capacity)
		_ = s.Close()
		return
	}
	p.surfaces = append(p.surfaces, s)
}

// Pop removes and returns the most recently retired surface, blanked to
// fully transparent and ready for reuse under a new layer id.
// Returns nil if the pool is empty.
func (p *RecyclePool) Pop() *Surface {
	if len(p.surfaces) == 0 {
		return nil
	}
	s := p.surfaces[len(p.surfaces)-1]
	p.surfaces = p.surfaces[:len(p.surfaces)-1]
	s.blank()
	return s
}

// Len returns the number of pooled surfaces.
func (p *RecyclePool) Len() int {
	return len(p.surfaces)
}

// Drain closes and discards every pooled surface.
func (p *RecyclePool) Drain() {
	for _, s := range p.surfaces {
		_ = s.Close()
	}
	p.surfaces = p.surfaces[:0]
}
