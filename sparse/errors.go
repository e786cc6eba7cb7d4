// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Callers match these via errors.Is; context (method, coordinate) is attached
// with storeErrorf at the detection site.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsegrid/coord"
)

var (
	// ErrBadDims is returned by constructors when dims < 1.
	ErrBadDims = errors.New("sparse: dimensions must be >= 1")

	// ErrArity indicates a coordinate whose length differs from the store's
	// dimensionality: a chain read or written before all components were
	// supplied, a chain extended past the last component, or a direct
	// Get/Set/At with the wrong number of components.
	ErrArity = errors.New("sparse: coordinate arity mismatch")

	// ErrNilStore indicates a zero Cursor or Cell (no backing store).
	ErrNilStore = errors.New("sparse: nil store")
)

// ---------- error context tags ----------

const (
	ctxGet      = "Get"
	ctxLookup   = "Lookup"
	ctxSet      = "Set"
	ctxAt       = "At"
	ctxValidate = "Validate"
	ctxIndex    = "Index"
	ctxResolve  = "Resolve"
)

// storeErrorf wraps err with a uniform "Store.<method>(<coord>)" context.
// The sentinel stays reachable through %w.
func storeErrorf(method string, c coord.Coord, err error) error {
	return fmt.Errorf("Store.%s(%s): %w", method, c, err)
}

// arityError reports how many components were supplied versus required.
func arityError(got, want int) error {
	return fmt.Errorf("%w: got %d components, want %d", ErrArity, got, want)
}
