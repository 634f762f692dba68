// SPDX-License-Identifier: MIT
// Package table_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by unit, property and benchmark tests.

package table_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/table"
)

// mustTable builds a table from nested rows or fails the test.
func mustTable[V table.Value](tb testing.TB, rows [][]V) *table.Table[V] {
	tb.Helper()
	t, err := table.FromRows[V](rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}
	return t
}

// seqTable returns an r×c table holding 0,1,2,... in row-major order.
func seqTable(tb testing.TB, r, c int) *table.Table[int] {
	tb.Helper()
	t, err := table.New[int](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	it := t.Begin()
	for k := 0; k < r*c; k++ {
		if err = it.Set(k); err != nil {
			tb.Fatalf("Set: %v", err)
		}
		it = it.Next()
	}
	return t
}

// randTable fills an r×c table with small integers from a seeded source.
func randTable(tb testing.TB, r, c int, seed int64) *table.Table[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	t, err := table.New[int](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = t.Set(i, j, rng.Intn(19)-9)
		}
	}
	return t
}

// randPerm returns a seeded permutation of [0,n).
func randPerm(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// invert returns the inverse permutation.
func invert(p []int) []int {
	inv := make([]int, len(p))
	for k, v := range p {
		inv[v] = k
	}
	return inv
}
