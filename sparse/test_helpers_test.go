// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Store tests.
//   • Centralize the "panics with a sentinel" assertion.

package sparse_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsegrid/sparse"
)

// defaultValue is the default used by most int fixtures.
const defaultValue = -1

// mustStore builds a dims-dimensional int store with default def or fails the test.
func mustStore(tb testing.TB, dims, def int, opts ...sparse.Option) *sparse.Store[int] {
	tb.Helper()
	s, err := sparse.New(dims, def, opts...)
	if err != nil {
		tb.Fatalf("sparse.New(%d, %d): %v", dims, def, err)
	}

	return s
}

// requirePanicIs asserts that fn panics with an error matching target via errors.Is.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic value, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, err)
		}
	}()
	fn()
}

// noDefaultStored asserts the storage invariant: no stored value equals def.
func noDefaultStored(t *testing.T, s *sparse.Store[int]) {
	t.Helper()
	for c, v := range s.All() {
		if v == s.Default() {
			t.Fatalf("cell %v stores the default %d", c, v)
		}
	}
}

// caseless is a string value whose equality ignores case (Equaler fixture).
type caseless string

// Equal implements sparse.Equaler.
func (c caseless) Equal(o caseless) bool { return strings.EqualFold(string(c), string(o)) }

// box is a reference value that deep-clones itself (Cloner fixture).
type box struct{ vals []int }

// Clone implements sparse.Cloner.
func (b *box) Clone() *box {
	if b == nil {
		return nil
	}

	return &box{vals: slices.Clone(b.vals)}
}

// Equal implements sparse.Equaler so a nil default compares by content.
func (b *box) Equal(o *box) bool {
	if b == nil || o == nil {
		return b == o
	}

	return slices.Equal(b.vals, o.vals)
}
