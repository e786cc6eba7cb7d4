// Package sparse provides Store, an N-dimensional sparse grid that behaves as
// if every cell of an unbounded grid holds a default value while storing only
// the cells that differ from it.
//
// The package provides:
//
//   - Store[V]: ordered coordinate→value index plus one default value.
//     Writing the default erases the cell, so memory stays proportional to
//     the number of non-default cells and no stored cell ever equals the
//     default.
//
//   - Cursor[V]: a chained index builder. store.Index(i).Index(j) accumulates
//     one component per step; each step returns a new immutable value.
//
//   - Cell[V]: the resolved reference. Get reads, Set writes and returns the
//     same cell, so writes chain left to right:
//
//     m.Index(100).Index(100).Cell().Set(314).Set(0).Set(217)
//
//   - Ordered iteration (All, Range, Prefix) and the canonical text form
//     (String, WriteTo): one "[c0,c1,...]=value" line per stored cell, in
//     ascending lexicographic coordinate order.
//
// Dimensionality is fixed when the store is built. A coordinate of any other
// length is a programmer error: Get, Set, At and Cursor.Cell panic with an
// error wrapping ErrArity; Validate and Cursor.Resolve report it instead.
//
// A Store is not safe for concurrent use. Cursors and cells keep their store
// alive, so a dangling reference cannot be formed.
package sparse
