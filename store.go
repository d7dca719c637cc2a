// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
)

// LayerID identifies a layer in the backing store. Ids have no meaning
// beyond their numeric order: layers composite ascending, so higher ids
// paint over lower ids.
type LayerID uint32

// BaseLayer is the mandatory base layer id. A non-empty store always
// contains the base layer; every other layer's surface is derived from
// its template.
const BaseLayer LayerID = 0

// layer is a single store entry. Visibility is a property of the layer
// slot, not of the surface: a retired surface may come back under a new
// id fully visible.
type layer struct {
	surface *Surface
	hidden  bool
}

// Store is the ordered mapping from layer ids to surfaces.
//
// It owns every active surface and the recycle pool of retired ones.
// Layer allocation resolves in order: existing layer, pooled surface,
// fresh surface derived from the base layer's template. With no base
// layer the store is "not yet drawable" and lookups return nil; the
// owning [Canvas] establishes the base layer on first composite.
//
// Store is NOT safe for concurrent use.
type Store struct {
	layers  map[LayerID]*layer
	order   []LayerID // cached ascending ids, nil when dirty
	pool    *RecyclePool
	created int
}

// NewStore creates an empty store whose recycle pool retains at most
// poolCap surfaces (0 = unbounded).
func NewStore(poolCap int) *Store {
	return &Store{
		layers: make(map[LayerID]*layer),
		pool:   NewRecyclePool(poolCap),
	}
}

// ContextFor returns a drawing context for the given layer, allocating
// the layer if needed.
//
// Resolution order: an existing layer returns its surface's context; a
// missing layer is installed from the recycle pool (most recently
// retired surface, blanked) or, with the pool empty, from a fresh
// surface derived from the base layer's template. With no base layer
// established yet, ContextFor returns nil: the caller should treat this
// as "draw skipped this frame", not as an error.
//
// Repeated calls with the same id return a context bound to the same
// surface until the layer is retired or invalidated.
func (st *Store) ContextFor(id LayerID) *Context {
	if l, ok := st.layers[id]; ok {
		return l.surface.Context()
	}

	s := st.pool.Pop()
	if s == nil {
		base, ok := st.layers[BaseLayer]
		if !ok {
			return nil
		}
		s = newSurfaceLike(base.surface)
		st.created++
	}

	st.layers[id] = &layer{surface: s}
	st.order = nil
	return s.Context()
}

// Clear retires every layer except the base layer into the recycle
// pool and blanks the base layer's content in place, preserving its
// surface identity.
//
// This is the fast erase-and-redraw path for animation: a frame that
// invalidates most overlay layers pays zero reallocation, because the
// retired surfaces are reused by the next round of ContextFor calls.
func (st *Store) Clear() {
	for id, l := range st.layers {
		if id == BaseLayer {
			continue
		}
		st.pool.Push(l.surface)
		delete(st.layers, id)
	}
	if base, ok := st.layers[BaseLayer]; ok {
		base.surface.blank()
	}
	st.order = nil
}

// InvalidateAll unconditionally destroys the store contents and drains
// the recycle pool. No surface survives: pooled surfaces carry a fixed
// physical size baked in at creation, so after a geometry change reuse
// would silently produce incorrectly scaled content.
//
// The next ContextFor or Composite call is forced to recreate surfaces
// from scratch.
func (st *Store) InvalidateAll() {
	for _, l := range st.layers {
		_ = l.surface.Close()
	}
	st.layers = make(map[LayerID]*layer)
	st.pool.Drain()
	st.order = nil
}

// Release retires a single layer into the recycle pool. The base layer
// cannot be released; use InvalidateAll to discard everything.
func (st *Store) Release(id LayerID) error {
	if id == BaseLayer {
		return errors.New("backing: base layer cannot be released")
	}
	l, ok := st.layers[id]
	if !ok {
		return fmt.Errorf("backing: layer %d does not exist", id)
	}
	st.pool.Push(l.surface)
	delete(st.layers, id)
	st.order = nil
	return nil
}

// SetVisible controls layer visibility without retiring it. Invisible
// layers keep their content but are skipped by the compositor.
// Unknown ids are ignored.
func (st *Store) SetVisible(id LayerID, visible bool) {
	if l, ok := st.layers[id]; ok {
		l.hidden = !visible
	}
}

// IDs returns all layer ids in compositing order (ascending).
func (st *Store) IDs() []LayerID {
	ids := st.ids()
	out := make([]LayerID, len(ids))
	copy(out, ids)
	return out
}

// ids returns the cached ascending id list without copying.
func (st *Store) ids() []LayerID {
	if st.order == nil {
		st.order = make([]LayerID, 0, len(st.layers))
		for id := range st.layers {
			st.order = append(st.order, id)
		}
		slices.Sort(st.order)
	}
	return st.order
}

// Len returns the number of active layers.
func (st *Store) Len() int {
	return len(st.layers)
}

// Has reports whether the given layer is active.
func (st *Store) Has(id LayerID) bool {
	_, ok := st.layers[id]
	return ok
}

// Empty reports whether the store holds no layers. An empty store has
// no base layer and triggers full recreation on the next composite.
func (st *Store) Empty() bool {
	return len(st.layers) == 0
}

// PoolLen returns the number of surfaces waiting in the recycle pool.
func (st *Store) PoolLen() int {
	return st.pool.Len()
}

// Created returns the number of surfaces allocated (not reused) since
// the store was constructed. Useful for asserting that recycle reuse
// and forced recreation behave as expected.
func (st *Store) Created() int {
	return st.created
}

// createBase installs a freshly allocated base surface. Called by the
// owning Canvas when compositing finds the store empty.
func (st *Store) createBase(width, height int, format gputypes.TextureFormat, transform Matrix) *Surface {
	s := newSurface(width, height, format, transform)
	st.layers[BaseLayer] = &layer{surface: s}
	st.order = nil
	st.created++
	return s
}
