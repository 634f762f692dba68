// SPDX-License-Identifier: MIT

package table

import "fmt"

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (t *Table[V]) Do(f func(i, j int, v V) bool) {
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			if !f(i, j, t.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
func (t *Table[V]) Apply(f func(i, j int, v V) V) {
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			t.data[base+j] = f(i, j, t.data[base+j])
		}
	}
}

// ZipInPlace sets t[i,j] = f(t[i,j], other[i,j]) for every cell.
// MAIN DESCRIPTION:
//   - Shared kernel for element-wise binary updates (+=, -=, ...).
//
// Behavior highlights:
//   - Shapes are checked before the first write; on mismatch t is untouched.
//   - other may be t itself.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (t *Table[V]) ZipInPlace(other *Table[V], f func(a, b V) V) error {
	if t.r != other.r || t.c != other.c {
		return fmt.Errorf("Table.%s(%dx%d vs %dx%d): %w", ctxZip, t.r, t.c, other.r, other.c, ErrDimensionMismatch)
	}
	for k := range t.data {
		t.data[k] = f(t.data[k], other.data[k])
	}

	return nil
}
