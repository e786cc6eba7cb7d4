// SPDX-License-Identifier: MIT

// Package sparse - chained index protocol: Cursor stages & the resolved Cell.
//
// State machine:
//
//	Store.Index(c0) -> Cursor{[c0]} -> .Index(c1) -> ... -> Cursor{[c0..cN-1]}
//	                                                           |
//	                                                   .Cell() / .Resolve()
//	                                                           v
//	                                                   Cell{[c0..cN-1]}: Get / Set (chainable)
//
// Behavior highlights:
//   - Each Index step copies the coordinate before appending; stages are
//     immutable values and never share a buffer, so re-using a stage simply
//     branches the chain.
//   - Only a Cell touches the store. Cursor.Get/Set are shortcuts that always
//     resolve first, so no read or write happens on a partial coordinate.
//   - N = 1: Store.Index(i) is already complete.

package sparse

import "github.com/katalvlaran/sparsegrid/coord"

// Cursor is one stage of a chained index expression: a partial coordinate
// bound to its store. Stages may be reused: extending the same stage twice
// branches the chain into two independent expressions. The zero Cursor has
// no store.
type Cursor[V any] struct {
	s *Store[V]
	c coord.Coord
}

// Cell is a resolved reference to one grid cell. Reads delegate to the
// store's get and writes to its set; the store is the single owner of data.
// The zero Cell has no store.
type Cell[V any] struct {
	s *Store[V]
	c coord.Coord
}

// Index starts a chained index expression with the first component.
// Complexity: O(1).
func (s *Store[V]) Index(i uint) Cursor[V] {
	return Cursor[V]{s: s, c: coord.Coord{i}}
}

// At resolves all components in one call: s.At(i, j, k) is the variadic
// form of s.Index(i).Index(j).Index(k).Cell().
//
// Errors:
//   - Panics with an error wrapping ErrArity when len(c) != Dims.
func (s *Store[V]) At(c ...uint) Cell[V] {
	s.mustArity(ctxAt, c)

	return Cell[V]{s: s, c: coord.Of(c...)}
}

// Index appends the next component and returns the next stage.
//
// Errors:
//   - Panics with ErrNilStore on a zero Cursor.
//   - Panics with an error wrapping ErrArity when the cursor already holds
//     Dims components (more than N components supplied).
//
// Complexity:
//   - Time O(N), Space O(N) for the copied coordinate.
func (cur Cursor[V]) Index(i uint) Cursor[V] {
	if cur.s == nil {
		panic(ErrNilStore)
	}
	if len(cur.c) >= cur.s.dims {
		panic(storeErrorf(ctxIndex, cur.c, arityError(len(cur.c)+1, cur.s.dims)))
	}

	return Cursor[V]{s: cur.s, c: cur.c.Append(i)}
}

// Depth returns how many components the cursor holds.
func (cur Cursor[V]) Depth() int { return len(cur.c) }

// Complete reports whether the cursor holds all components and can resolve.
func (cur Cursor[V]) Complete() bool {
	return cur.s != nil && len(cur.c) == cur.s.dims
}

// Resolve turns a complete cursor into its Cell.
//
// Errors:
//   - ErrNilStore for a zero Cursor.
//   - An error wrapping ErrArity when fewer than Dims components are held.
func (cur Cursor[V]) Resolve() (Cell[V], error) {
	if cur.s == nil {
		return Cell[V]{}, ErrNilStore
	}
	if len(cur.c) != cur.s.dims {
		return Cell[V]{}, storeErrorf(ctxResolve, cur.c, arityError(len(cur.c), cur.s.dims))
	}

	return Cell[V]{s: cur.s, c: cur.c}, nil
}

// Cell is Resolve that panics on error (programmer error: the expression
// supplied the wrong number of components).
func (cur Cursor[V]) Cell() Cell[V] {
	cell, err := cur.Resolve()
	if err != nil {
		panic(err)
	}

	return cell
}

// Get is shorthand for cur.Cell().Get().
func (cur Cursor[V]) Get() V { return cur.Cell().Get() }

// Set is shorthand for cur.Cell().Set(v).
func (cur Cursor[V]) Set(v V) Cell[V] { return cur.Cell().Set(v) }

// Stored is shorthand for cur.Cell().Stored().
func (cur Cursor[V]) Stored() bool { return cur.Cell().Stored() }

// mustStore panics with ErrNilStore on a zero Cell.
func (c Cell[V]) mustStore() {
	if c.s == nil {
		panic(ErrNilStore)
	}
}

// Get reads the cell: the stored value, or the store's default.
// Complexity: O(N·log s).
func (c Cell[V]) Get() V {
	c.mustStore()

	return c.s.get(c.c)
}

// Set writes v to the cell and returns the same cell, so writes chain:
// c.Set(314).Set(0).Set(217) performs three sets in order and each one
// observes the state left by the previous. Writing the default erases.
// Complexity: O(N·log s).
func (c Cell[V]) Set(v V) Cell[V] {
	c.mustStore()
	c.s.set(c.c, v)

	return c
}

// Erase writes the store's default, removing the cell if stored.
func (c Cell[V]) Erase() Cell[V] {
	c.mustStore()

	return c.Set(c.s.def)
}

// Stored reports whether the cell currently holds a non-default value.
func (c Cell[V]) Stored() bool {
	c.mustStore()
	_, ok := c.s.tree.Get(entry[V]{key: c.c})

	return ok
}

// Coord returns a copy of the cell's coordinate.
func (c Cell[V]) Coord() coord.Coord { return c.c.Clone() }
