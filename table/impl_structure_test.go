// SPDX-License-Identifier: MIT
// Package table_test contains unit tests for structural mutation.
package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/table"
)

// TestSwapRowsColumns covers swaps, no-op swaps and bounds.
func TestSwapRowsColumns(t *testing.T) {
	tb := seqTable(t, 3, 2) // [0 1; 2 3; 4 5]
	require.NoError(t, tb.SwapRows(0, 2))
	require.Equal(t, []int{4, 5, 2, 3, 0, 1}, tb.Data())

	require.NoError(t, tb.SwapColumns(0, 1))
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, tb.Data())

	before := tb.Clone()
	require.NoError(t, tb.SwapRows(1, 1))
	require.NoError(t, tb.SwapColumns(0, 0))
	require.True(t, before.Equal(tb))

	require.ErrorIs(t, tb.SwapRows(0, 3), table.ErrOutOfBounds)
	require.ErrorIs(t, tb.SwapColumns(-1, 0), table.ErrOutOfBounds)
}

// TestPermuteRows moves row k to perm[k].
func TestPermuteRows(t *testing.T) {
	tb := seqTable(t, 3, 2) // rows r0=[0 1], r1=[2 3], r2=[4 5]
	require.NoError(t, tb.PermuteRows([]int{2, 0, 1}))
	// r0 -> 2, r1 -> 0, r2 -> 1
	require.Equal(t, []int{2, 3, 4, 5, 0, 1}, tb.Data())
}

// TestPermuteColumns moves column k to perm[k].
func TestPermuteColumns(t *testing.T) {
	tb := seqTable(t, 2, 3) // [0 1 2; 3 4 5]
	require.NoError(t, tb.PermuteColumns([]int{1, 2, 0}))
	require.Equal(t, []int{2, 0, 1, 5, 3, 4}, tb.Data())
}

// TestPermuteInvalid rejects malformed permutations without touching the table.
func TestPermuteInvalid(t *testing.T) {
	tb := seqTable(t, 3, 3)
	before := tb.Clone()
	cases := [][]int{
		{0, 1},
		{0, 1, 1},
		{0, 1, 3},
		{-1, 0, 1},
	}
	for _, p := range cases {
		require.ErrorIs(t, tb.PermuteRows(p), table.ErrInvalidPermutation)
		require.ErrorIs(t, tb.PermuteColumns(p), table.ErrInvalidPermutation)
	}
	require.True(t, before.Equal(tb))
}

// TestPermuteKeepsIterators verifies the buffer identity survives a permutation.
func TestPermuteKeepsIterators(t *testing.T) {
	tb := seqTable(t, 2, 2)
	it := tb.Begin()
	require.NoError(t, tb.PermuteRows([]int{1, 0}))
	v, err := it.Get()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

// TestApplyPermutationMap relabels 1-based values.
func TestApplyPermutationMap(t *testing.T) {
	tb := mustTable(t, [][]int{{1, 2, 3}, {3, 2, 1}})
	require.NoError(t, tb.ApplyPermutationMap([]int{3, 1, 2}))
	require.Equal(t, []int{3, 1, 2, 2, 1, 3}, tb.Data())

	bad := mustTable(t, [][]int{{1, 4}})
	require.ErrorIs(t, bad.ApplyPermutationMap([]int{2, 1, 3}), table.ErrOutOfBounds)
	require.Equal(t, []int{1, 4}, bad.Data())

	zero := mustTable(t, [][]int{{0}})
	require.ErrorIs(t, zero.ApplyPermutationMap([]int{1}), table.ErrOutOfBounds)

	frac := mustTable(t, [][]float64{{1.5}})
	require.ErrorIs(t, frac.ApplyPermutationMap([]float64{1, 2}), table.ErrOutOfBounds)
}

// TestInsert writes along flat, row and column iterators.
func TestInsert(t *testing.T) {
	tb, err := table.New[int](3, 3)
	require.NoError(t, err)

	require.NoError(t, tb.Insert([]int{1, 2, 3, 4}, tb.Begin().Add(1)))
	require.Equal(t, []int{0, 1, 2, 3, 4, 0, 0, 0, 0}, tb.Data())

	col, err := tb.BeginColumn(2)
	require.NoError(t, err)
	require.NoError(t, tb.Insert([]int{7, 8}, col.Next()))
	require.Equal(t, []int{0, 1, 2, 3, 4, 7, 0, 0, 8}, tb.Data())

	row, err := tb.BeginRow(2)
	require.NoError(t, err)
	require.ErrorIs(t, tb.Insert([]int{5, 5, 5, 5}, row), table.ErrOutOfBounds)
	require.Equal(t, []int{0, 1, 2, 3, 4, 7, 0, 0, 8}, tb.Data())

	other := seqTable(t, 3, 3)
	require.ErrorIs(t, tb.Insert([]int{1}, other.Begin()), table.ErrForeignIterator)
	require.NoError(t, tb.Insert(nil, tb.End()))
}
