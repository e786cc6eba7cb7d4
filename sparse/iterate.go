// SPDX-License-Identifier: MIT

// Package sparse - ordered iteration & canonical text form.
//
// All iterators walk the B-tree in ascending lexicographic coordinate order
// (component 0 most significant). They are lazy and restartable: each range
// loop starts a fresh ascent. Yielded coordinates are copies.
//
// IMPORTANT: mutating the store while an iterator is running is undefined.

package sparse

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/sparsegrid/coord"
)

// ---------- Formatting literals ----------
const (
	_fmtAssign = '='
	_fmtEOL    = '\n'
)

// All returns an iterator over every stored cell in ascending coordinate order.
//
//	for c, v := range s.All() {
//	    fmt.Println(c, v)
//	}
//
// Breaking out of the loop stops the ascent early.
func (s *Store[V]) All() iter.Seq2[coord.Coord, V] {
	return func(yield func(coord.Coord, V) bool) {
		s.tree.Ascend(func(e entry[V]) bool {
			return yield(e.key.Clone(), e.val)
		})
	}
}

// Range iterates stored cells with from <= coord < to, in order.
// Bounds are compared lexicographically and may be shorter than Dims:
// Range(coord.Of(3), coord.Of(4)) covers every cell whose first component is 3.
// An empty or inverted range yields nothing.
func (s *Store[V]) Range(from, to coord.Coord) iter.Seq2[coord.Coord, V] {
	return func(yield func(coord.Coord, V) bool) {
		s.tree.AscendRange(entry[V]{key: from}, entry[V]{key: to}, func(e entry[V]) bool {
			return yield(e.key.Clone(), e.val)
		})
	}
}

// Prefix iterates stored cells whose leading components equal p, in order.
// An empty p is equivalent to All; a p longer than Dims yields nothing.
func (s *Store[V]) Prefix(p coord.Coord) iter.Seq2[coord.Coord, V] {
	return func(yield func(coord.Coord, V) bool) {
		if len(p) > s.dims {
			return
		}
		s.tree.AscendGreaterOrEqual(entry[V]{key: p}, func(e entry[V]) bool {
			if !slices.Equal(e.key[:len(p)], p) {
				return false
			}
			return yield(e.key.Clone(), e.val)
		})
	}
}

// Coords returns an iterator over stored coordinates only.
func (s *Store[V]) Coords() iter.Seq[coord.Coord] {
	return func(yield func(coord.Coord) bool) {
		for c := range s.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// WriteTo writes the canonical text form to w: one "[c0,c1,...]=value\n"
// line per stored cell, in iteration order. Values use fmt's %v.
// It implements io.WriterTo and stops at the first write error.
// Complexity: O(s·N).
func (s *Store[V]) WriteTo(w io.Writer) (int64, error) {
	var (
		n   int64
		err error
		buf []byte
	)
	s.tree.Ascend(func(e entry[V]) bool {
		buf = e.key.AppendTo(buf[:0])
		buf = append(buf, _fmtAssign)
		buf = fmt.Append(buf, e.val)
		buf = append(buf, _fmtEOL)

		var k int
		k, err = w.Write(buf)
		n += int64(k)

		return err == nil
	})

	return n, err
}

// String implements fmt.Stringer with the canonical text form.
// An empty store renders as "".
func (s *Store[V]) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)

	return sb.String()
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Store[int])(nil)
	_ io.WriterTo  = (*Store[int])(nil)
)
