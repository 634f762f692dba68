// SPDX-License-Identifier: MIT
// Package: table
//
// Purpose:
//   - Single source of truth for index and permutation checks used by the
//     structural mutators. Validators return plain sentinels; call sites wrap.

package table

// validatePermutation checks that perm is a 0-based permutation of [0,n).
// Complexity: O(n) time, O(n) space for the seen set.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrInvalidPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return ErrInvalidPermutation
		}
		seen[p] = true
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfBounds
	}

	return nil
}
