// Package sparsegrid is an in-memory N-dimensional sparse grid: every cell of
// an unbounded grid reads as a default value, and only the cells that differ
// from it are stored.
//
// What you get:
//
//   - Ordered storage: cells are kept in a B-tree keyed by coordinate, so
//     iteration and the text form are always in lexicographic order.
//   - Default erasure: writing the default removes the cell; memory tracks
//     the number of non-default cells, never the grid's extent.
//   - Chained indexing: m.Index(i).Index(j).Set(v), or m.At(i, j) in one call,
//     with Set returning the cell so writes chain left to right.
//
// Everything is organized under two subpackages:
//
//	coord/  — Coord value type: ordering, copy-on-append, "[c0,c1]" text form
//	sparse/ — Store, Cursor and Cell; options, errors, iteration, rendering
//
// Quick example:
//
//	m, _ := sparse.New(2, -1)
//	m.Index(10).Index(100).Set(11)
//	fmt.Print(m) // [10,100]=11
//
//	go get github.com/katalvlaran/sparsegrid/sparse
package sparsegrid
