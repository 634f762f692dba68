// SPDX-License-Identifier: MIT

// Package table - structural mutation (swap, permute, relabel, insert).
//
// Determinism & Policy:
//   - Every mutator validates all of its input before the first write, so a
//     failed call leaves the table unchanged.
//   - Permutations go through a full scratch copy that is then copied back into
//     the existing buffer. The buffer identity survives, so views and iterators
//     stay valid; the in-place cycle-walking variant is intentionally not used.

package table

import "fmt"

// SwapRows exchanges rows i and j element-wise. i == j is a no-op.
// Errors: ErrOutOfBounds for an invalid index.
// Complexity: O(cols).
func (t *Table[V]) SwapRows(i, j int) error {
	if err := validateIndex(i, t.r); err != nil {
		return cellErrorf(ctxSwapRows, i, j, err)
	}
	if err := validateIndex(j, t.r); err != nil {
		return cellErrorf(ctxSwapRows, i, j, err)
	}
	if i == j {
		return nil
	}
	a, b := i*t.c, j*t.c
	for k := 0; k < t.c; k++ {
		t.data[a+k], t.data[b+k] = t.data[b+k], t.data[a+k]
	}

	return nil
}

// SwapColumns exchanges columns i and j element-wise. i == j is a no-op.
// Errors: ErrOutOfBounds for an invalid index.
// Complexity: O(rows).
func (t *Table[V]) SwapColumns(i, j int) error {
	if err := validateIndex(i, t.c); err != nil {
		return cellErrorf(ctxSwapCols, i, j, err)
	}
	if err := validateIndex(j, t.c); err != nil {
		return cellErrorf(ctxSwapCols, i, j, err)
	}
	if i == j {
		return nil
	}
	var base int
	for r := 0; r < t.r; r++ {
		base = r * t.c
		t.data[base+i], t.data[base+j] = t.data[base+j], t.data[base+i]
	}

	return nil
}

// PermuteRows moves the row at index k to index perm[k].
// MAIN DESCRIPTION:
//   - perm must be a 0-based permutation of [0, Rows()).
//
// Implementation:
//   - Stage 1: validate perm.
//   - Stage 2: copy each row into its destination slot of a scratch buffer.
//   - Stage 3: copy the scratch buffer back.
//
// Errors:
//   - ErrInvalidPermutation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (t *Table[V]) PermuteRows(perm []int) error {
	if err := validatePermutation(perm, t.r); err != nil {
		return tableErrorf(ctxPermuteRows, err)
	}
	if len(t.data) == 0 {
		return nil
	}
	scratch := make([]V, len(t.data))
	for k, dst := range perm {
		copy(scratch[dst*t.c:(dst+1)*t.c], t.data[k*t.c:(k+1)*t.c])
	}
	copy(t.data, scratch)

	return nil
}

// PermuteColumns moves the column at index k to index perm[k].
// perm must be a 0-based permutation of [0, Cols()).
// Complexity: Time O(r*c), Space O(r*c).
func (t *Table[V]) PermuteColumns(perm []int) error {
	if err := validatePermutation(perm, t.c); err != nil {
		return tableErrorf(ctxPermuteCols, err)
	}
	if len(t.data) == 0 {
		return nil
	}
	scratch := make([]V, len(t.data))
	var base int
	for r := 0; r < t.r; r++ {
		base = r * t.c
		for k, dst := range perm {
			scratch[base+dst] = t.data[base+k]
		}
	}
	copy(t.data, scratch)

	return nil
}

// ApplyPermutationMap relabels values: every element e, read as a 1-based label
// in [1, len(m)], is replaced with m[e-1]. Shape is unchanged.
//
// Errors:
//   - ErrOutOfBounds when some element is not an integral label in range;
//     nothing is written in that case.
//
// Complexity: O(r*c).
func (t *Table[V]) ApplyPermutationMap(m []V) error {
	var idx int
	for k, e := range t.data {
		idx = int(e) - 1
		if idx < 0 || idx >= len(m) || V(idx+1) != e {
			return cellErrorf(ctxApplyMap, k/t.c, k%t.c, fmt.Errorf("label %v: %w", e, ErrOutOfBounds))
		}
	}
	for k, e := range t.data {
		t.data[k] = m[int(e)-1]
	}

	return nil
}

// Insert copies seq into the table starting at position at, walking at's view
// (flat, row or column) for exactly len(seq) elements.
//
// Errors:
//   - ErrForeignIterator when at does not belong to t.
//   - ErrOutOfBounds when seq does not fit between at and the end of its view.
//
// Complexity: O(len(seq)).
func (t *Table[V]) Insert(seq []V, at Iterator[V]) error {
	if at.view.t != t {
		return tableErrorf(ctxInsert, ErrForeignIterator)
	}
	if len(seq) == 0 {
		return nil
	}
	if _, ok := at.view.offset(at.pos); !ok {
		return tableErrorf(ctxInsert, ErrOutOfBounds)
	}
	if _, ok := at.view.offset(at.pos + len(seq) - 1); !ok {
		return tableErrorf(ctxInsert, ErrOutOfBounds)
	}
	for k, x := range seq {
		t.data[at.view.origin+(at.pos+k)*at.view.stride] = x
	}

	return nil
}
