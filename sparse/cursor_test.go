// Package sparse_test contains unit tests for the chained index protocol.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsegrid/coord"
	"github.com/katalvlaran/sparsegrid/sparse"
	"github.com/stretchr/testify/require"
)

// TestChainAssign writes through a two-step chain and reads it back.
func TestChainAssign(t *testing.T) {
	m := mustStore(t, 2, defaultValue)

	m.Index(100).Index(100).Set(314)
	require.Equal(t, 314, m.Index(100).Index(100).Get())
	require.Equal(t, 314, m.Get(coord.Of(100, 100))) // chain and direct access agree
	require.Equal(t, 1, m.Len())

	m.Index(100).Index(100).Set(defaultValue) // default through the chain erases
	require.Equal(t, 0, m.Len())
}

// TestChainedReassignment checks that Set returns the same cell and each
// write is applied in order, observable between steps.
func TestChainedReassignment(t *testing.T) {
	m, err := sparse.NewZero[int](2)
	require.NoError(t, err)

	cell := m.Index(100).Index(100).Cell()
	cell.Set(314).Set(0).Set(217)
	require.Equal(t, 217, m.Index(100).Index(100).Get()) // final write wins

	step := cell.Set(314)
	require.Equal(t, 314, m.Get(coord.Of(100, 100))) // first write visible
	require.True(t, step.Stored())

	step = step.Set(0)
	require.Equal(t, 0, m.Len()) // second write erased (0 is the default)
	require.False(t, step.Stored())

	step.Set(217)
	require.Equal(t, 217, cell.Get()) // third write visible through any copy of the cell
}

// TestDim1CollapsesChain verifies that with N=1 the first Index is terminal.
func TestDim1CollapsesChain(t *testing.T) {
	m := mustStore(t, 1, defaultValue)

	require.True(t, m.Index(1000).Complete())
	require.Equal(t, defaultValue, m.Index(1000).Get())
	require.Equal(t, 0, m.Len())

	m.Index(100).Set(314)
	require.Equal(t, 314, m.Index(100).Get())
	require.Equal(t, defaultValue, m.Index(1000).Get())
	require.Equal(t, 1, m.Len())

	m.Index(100).Set(defaultValue)
	require.Equal(t, defaultValue, m.Index(100).Get())
	require.Equal(t, 0, m.Len())

	requirePanicIs(t, sparse.ErrArity, func() { m.Index(1).Index(2) }) // no second step
}

// TestDim3Chain exercises a three-step chain.
func TestDim3Chain(t *testing.T) {
	m := mustStore(t, 3, defaultValue)

	require.Equal(t, defaultValue, m.Index(1000).Index(2000).Index(3000).Get())
	require.Equal(t, 0, m.Len())

	m.Index(1000).Index(2000).Index(3000).Set(314)
	require.Equal(t, 314, m.Index(1000).Index(2000).Index(3000).Get())
	require.Equal(t, defaultValue, m.Index(1000).Index(2000).Index(30000).Get())
	require.Equal(t, 1, m.Len())

	m.Index(1000).Index(2000).Index(3000).Set(defaultValue)
	require.Equal(t, defaultValue, m.Index(1000).Index(2000).Index(3000).Get())
	require.Equal(t, 0, m.Len())
}

// TestIncompleteChainFailsLoudly ensures reads and writes before the last
// component panic with ErrArity and never touch the store.
func TestIncompleteChainFailsLoudly(t *testing.T) {
	m := mustStore(t, 3, defaultValue)
	partial := m.Index(1).Index(2)

	require.False(t, partial.Complete())
	require.Equal(t, 2, partial.Depth())

	requirePanicIs(t, sparse.ErrArity, func() { partial.Get() })
	requirePanicIs(t, sparse.ErrArity, func() { partial.Set(5) })
	requirePanicIs(t, sparse.ErrArity, func() { partial.Cell() })
	require.Equal(t, 0, m.Len()) // no write happened

	_, err := partial.Resolve()
	require.ErrorIs(t, err, sparse.ErrArity) // non-panicking form reports it
}

// TestOverlongChainFailsLoudly ensures supplying more than N components panics.
func TestOverlongChainFailsLoudly(t *testing.T) {
	m := mustStore(t, 2, defaultValue)
	full := m.Index(1).Index(2)

	requirePanicIs(t, sparse.ErrArity, func() { full.Index(3) })
}

// TestZeroCursorAndCell checks the zero values report ErrNilStore.
func TestZeroCursorAndCell(t *testing.T) {
	var cur sparse.Cursor[int]
	var cell sparse.Cell[int]

	_, err := cur.Resolve()
	require.ErrorIs(t, err, sparse.ErrNilStore)
	require.False(t, cur.Complete())

	require.PanicsWithValue(t, sparse.ErrNilStore, func() { cur.Index(1) })
	require.PanicsWithValue(t, sparse.ErrNilStore, func() { cell.Get() })
	require.PanicsWithValue(t, sparse.ErrNilStore, func() { cell.Set(1) })
}

// TestBranchingFromSharedPrefix verifies stages are immutable: extending the
// same prefix twice addresses two distinct cells.
func TestBranchingFromSharedPrefix(t *testing.T) {
	m := mustStore(t, 3, 0)
	row := m.Index(5).Index(6)

	row.Index(1).Set(10)
	row.Index(2).Set(20)

	require.Equal(t, 10, m.Get(coord.Of(5, 6, 1)))
	require.Equal(t, 20, m.Get(coord.Of(5, 6, 2)))
	require.Equal(t, 2, row.Depth()) // prefix stage unchanged
}

// TestAtVariadic covers the single-call surface.
func TestAtVariadic(t *testing.T) {
	m := mustStore(t, 2, defaultValue)

	m.At(10, 100).Set(11)
	require.Equal(t, 11, m.Index(10).Index(100).Get()) // both surfaces address the same cell
	require.Equal(t, coord.Coord{10, 100}, m.At(10, 100).Coord())

	m.At(10, 100).Erase()
	require.Equal(t, 0, m.Len())

	requirePanicIs(t, sparse.ErrArity, func() { m.At(1) })
	requirePanicIs(t, sparse.ErrArity, func() { m.At(1, 2, 3) })
}

// TestCellCoordIsCopy ensures Coord() cannot be used to mutate a stored key.
func TestCellCoordIsCopy(t *testing.T) {
	m := mustStore(t, 2, 0)
	cell := m.At(1, 2).Set(7)

	c := cell.Coord()
	c[0] = 9 // mutate the returned copy

	require.Equal(t, 7, m.Get(coord.Of(1, 2)))
	require.Equal(t, coord.Coord{1, 2}, cell.Coord())
}

// TestCursorStoredShortcut checks Cursor.Stored resolves like Cursor.Get/Set.
func TestCursorStoredShortcut(t *testing.T) {
	m := mustStore(t, 2, defaultValue)
	require.False(t, m.Index(1).Index(2).Stored())

	m.Index(1).Index(2).Set(5)
	require.True(t, m.Index(1).Index(2).Stored())
	require.Equal(t, m.At(1, 2).Stored(), m.Index(1).Index(2).Stored()) // same answer as the Cell

	m.Index(1).Index(2).Set(defaultValue) // erase
	require.False(t, m.Index(1).Index(2).Stored())

	requirePanicIs(t, sparse.ErrArity, func() { m.Index(1).Stored() }) // incomplete chain
}
