// SPDX-License-Identifier: MIT

// Package coord - coordinate value type, ordering and text form.
//
// Complexity quicksheet:
//   - Compare/Less/Equal: O(N); Append/Clone: O(N) copy; String: O(N).

package coord

import (
	"slices"
	"strconv"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = '['
	_fmtClose = ']'
	_fmtSep   = ','
)

// Coord is an ordered sequence of grid components.
// The length of a Coord is its dimensionality; a sparse.Store fixes it at
// construction and rejects coordinates of any other length.
type Coord []uint

// Of returns a Coord holding a private copy of the given components.
// Complexity: O(N).
func Of(c ...uint) Coord {
	return Coord(slices.Clone(c))
}

// Clone returns an independent copy of c (nil stays nil).
// Complexity: O(N).
func (c Coord) Clone() Coord {
	return slices.Clone(c)
}

// Append returns a new Coord equal to c followed by i.
// Implementation:
//   - Stage 1: allocate len(c)+1 fresh components.
//   - Stage 2: copy c and write i into the last slot.
//
// Behavior highlights:
//   - The receiver is never modified and never shares storage with the result,
//     so a prefix may be extended in several directions safely.
//
// Complexity:
//   - Time O(N), Space O(N).
func (c Coord) Append(i uint) Coord {
	out := make(Coord, len(c)+1)
	copy(out, c)
	out[len(c)] = i

	return out
}

// Compare orders a and b lexicographically, component 0 first.
// It returns -1, 0 or +1. A strict prefix sorts before its extensions.
// Complexity: O(N).
func Compare(a, b Coord) int {
	return slices.Compare(a, b)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Coord) bool {
	return slices.Compare(a, b) < 0
}

// Equal reports whether a and b have the same length and components.
func Equal(a, b Coord) bool {
	return slices.Equal(a, b)
}

// AppendTo appends the canonical "[c0,c1,...]" form of c to b.
// Complexity: O(N) amortized.
func (c Coord) AppendTo(b []byte) []byte {
	b = append(b, _fmtOpen)
	for k, v := range c {
		if k > 0 {
			b = append(b, _fmtSep)
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}

	return append(b, _fmtClose)
}

// String implements fmt.Stringer, e.g. "[10,100]".
func (c Coord) String() string {
	return string(c.AppendTo(make([]byte, 0, 2+len(c)*4)))
}
