// SPDX-License-Identifier: MIT
package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/table"
)

func TestDoVisitsRowMajorAndStops(t *testing.T) {
	tb := seqTable(t, 2, 3)
	var seen []int
	tb.Do(func(i, j int, v int) bool {
		require.Equal(t, i*3+j, v)
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{0, 1, 2, 3}, seen) // stopped after 3
}

func TestApplyUsesCoordinates(t *testing.T) {
	tb := seqTable(t, 2, 2)
	tb.Apply(func(i, j int, v int) int { return v*10 + i - j })
	require.Equal(t, []int{0, 9, 21, 30}, tb.Data())
}

func TestZipInPlace(t *testing.T) {
	a := mustTable(t, [][]int{{1, 2}, {3, 4}})
	b := mustTable(t, [][]int{{10, 20}, {30, 40}})
	require.NoError(t, a.ZipInPlace(b, func(x, y int) int { return x + y }))
	require.Equal(t, []int{11, 22, 33, 44}, a.Data())

	// self-aliasing doubles every cell
	require.NoError(t, b.ZipInPlace(b, func(x, y int) int { return x + y }))
	require.Equal(t, []int{20, 40, 60, 80}, b.Data())

	c := seqTable(t, 2, 3)
	before := a.Clone()
	err := a.ZipInPlace(c, func(x, y int) int { return x - y })
	require.ErrorIs(t, err, table.ErrDimensionMismatch)
	require.True(t, table.Equal(before, a)) // untouched
}
