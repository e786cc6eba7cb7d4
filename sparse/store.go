// SPDX-License-Identifier: MIT

// Package sparse - Store: ordered cell index & default-erasing accessors.
//
// Purpose:
//   - Keep only non-default cells, ordered by coordinate (B-tree, O(log s)).
//   - Enforce the storage invariant at the single write path: a value equal
//     to the default is never stored; writing it erases the cell.
//   - Reject coordinates of the wrong length loudly (panic with ErrArity)
//     instead of returning a silently wrong value.
//
// Complexity quicksheet:
//   - Get/Lookup/Set: O(N·log s); Len/Dims/Default: O(1); Clear: O(1).

package sparse

import (
	"context"
	"log/slog"

	"github.com/google/btree"

	"github.com/katalvlaran/sparsegrid/coord"
)

// entry is one stored cell. key is owned by the index and never mutated.
type entry[V any] struct {
	key coord.Coord
	val V
}

// lessEntry orders entries by coordinate, component 0 most significant.
func lessEntry[V any](a, b entry[V]) bool {
	return coord.Less(a.key, b.key)
}

// Store is an N-dimensional sparse grid of V.
//   - dims is the fixed coordinate length (>= 1).
//   - def is the value every absent cell reads as.
//   - tree holds exactly the cells whose value differs from def.
//
// The zero Store is not usable; build one with New or NewZero.
type Store[V any] struct {
	dims   int
	def    V
	tree   *btree.BTreeG[entry[V]]
	eq     func(a, b V) bool
	degree int
	log    *slog.Logger
}

// New creates an empty dims-dimensional store whose absent cells read as def.
// Implementation:
//   - Stage 1: validate dims >= 1; else ErrBadDims.
//   - Stage 2: resolve options and allocate the empty ordered index.
//   - Stage 3: pick the value comparison for V once (see equalFor).
//
// Errors:
//   - ErrBadDims (shape contract violation).
//
// Complexity:
//   - Time O(1), Space O(1).
func New[V any](dims int, def V, opts ...Option) (*Store[V], error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	o := gatherOptions(opts...)

	return &Store[V]{
		dims:   dims,
		def:    def,
		tree:   btree.NewG[entry[V]](o.degree, lessEntry[V]),
		eq:     equalFor[V](),
		degree: o.degree,
		log:    o.logger.With("system", logSystem),
	}, nil
}

// NewZero is New with the zero value of V as the default.
func NewZero[V any](dims int, opts ...Option) (*Store[V], error) {
	var zero V

	return New(dims, zero, opts...)
}

// Dims returns the fixed coordinate length.
func (s *Store[V]) Dims() int { return s.dims }

// Default returns the value absent cells read as.
func (s *Store[V]) Default() V { return s.def }

// Len returns the number of stored (non-default) cells.
// Complexity: O(1).
func (s *Store[V]) Len() int { return s.tree.Len() }

// Validate reports whether c has exactly Dims components.
// It returns nil or an error wrapping ErrArity; it never panics.
func (s *Store[V]) Validate(c coord.Coord) error {
	if len(c) != s.dims {
		return storeErrorf(ctxValidate, c, arityError(len(c), s.dims))
	}

	return nil
}

// mustArity panics with a wrapped ErrArity when len(c) != Dims.
func (s *Store[V]) mustArity(method string, c coord.Coord) {
	if len(c) != s.dims {
		panic(storeErrorf(method, c, arityError(len(c), s.dims)))
	}
}

// Get returns the value at c, or the default when no cell is stored there.
// Get never mutates the store.
//
// Errors:
//   - Panics with an error wrapping ErrArity when len(c) != Dims.
//
// Complexity:
//   - Time O(N·log s).
func (s *Store[V]) Get(c coord.Coord) V {
	s.mustArity(ctxGet, c)

	return s.get(c)
}

// Lookup is Get that also reports whether a cell is stored at c.
// A false result always comes with the default value.
func (s *Store[V]) Lookup(c coord.Coord) (V, bool) {
	s.mustArity(ctxLookup, c)
	e, ok := s.tree.Get(entry[V]{key: c})
	if !ok {
		return s.def, false
	}

	return e.val, true
}

// Set writes v at c.
// Implementation:
//   - Stage 1: validate arity (panic with ErrArity on mismatch).
//   - Stage 2: if v equals the default, erase any stored cell (no-op if absent).
//   - Stage 3: otherwise insert or overwrite the cell with a private copy of c.
//
// Behavior highlights:
//   - Equality against the default is the sole erase criterion (see Equaler).
//   - The caller keeps ownership of c; later mutations of c do not reach the index.
//
// Complexity:
//   - Time O(N·log s).
func (s *Store[V]) Set(c coord.Coord, v V) {
	s.mustArity(ctxSet, c)
	s.set(c.Clone(), v)
}

// get reads without validation; callers guarantee len(c) == dims.
func (s *Store[V]) get(c coord.Coord) V {
	if e, ok := s.tree.Get(entry[V]{key: c}); ok {
		return e.val
	}

	return s.def
}

// set writes without validation. key must be owned by the caller and never
// mutated afterwards, since it may become the stored key.
func (s *Store[V]) set(key coord.Coord, v V) {
	if s.eq(v, s.def) {
		if _, ok := s.tree.Delete(entry[V]{key: key}); ok && s.debugEnabled() {
			s.log.Debug("cell erased", "coord", key, "cells", s.tree.Len())
		}
		return
	}
	if _, replaced := s.tree.ReplaceOrInsert(entry[V]{key: key, val: v}); !replaced && s.debugEnabled() {
		s.log.Debug("cell inserted", "coord", key, "cells", s.tree.Len())
	}
}

// Clear drops every stored cell; dims and default are kept.
// Nodes are not recycled into the free list, so clearing a store that shares
// nodes with a Clone stays O(1) and leaves the clone untouched.
func (s *Store[V]) Clear() {
	n := s.tree.Len()
	s.tree.Clear(false)
	if s.debugEnabled() {
		s.log.Debug("store cleared", "dropped", n)
	}
}

// debugEnabled guards Debug records so the write path allocates nothing
// when debug logging is off.
func (s *Store[V]) debugEnabled() bool {
	return s.log.Enabled(context.Background(), slog.LevelDebug)
}
