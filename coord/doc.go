// Package coord defines Coord, the fixed-length tuple of non-negative
// integers that addresses a cell of an N-dimensional sparse grid.
//
// Coordinates are plain values:
//
//   - Ordering is lexicographic, component 0 most significant (Compare, Less).
//   - Append never writes into the receiver's backing array, so two
//     coordinates derived from a common prefix never alias each other.
//   - String renders the canonical "[c0,c1,...]" form used by sparse.Store.
//
// Non-negativity is carried by the component type (uint); there is no
// negative coordinate to validate.
package coord
