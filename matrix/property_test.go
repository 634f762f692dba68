// SPDX-License-Identifier: MIT
// Package matrix_test contains property-based tests for algebraic identities.
package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/numkit/matrix"
)

func TestAlgebraicProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("transposing twice restores the matrix", prop.ForAll(
		func(r, c int, seed int64) bool {
			m := randInt(t, r, c, seed)
			before := m.Clone()
			if m.Transpose() != nil || m.Transpose() != nil {
				return false
			}
			return m.Equal(before)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("(A+B)-B equals A on integers", prop.ForAll(
		func(r, c int, seed int64) bool {
			a := randInt(t, r, c, seed)
			b := randInt(t, r, c, seed+1)
			sum, err := matrix.Add(a, b)
			if err != nil {
				return false
			}
			back, err := matrix.Sub(sum, b)
			return err == nil && back.Equal(a)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("A·I equals A", prop.ForAll(
		func(r, c int, seed int64) bool {
			a := randInt(t, r, c, seed)
			id, err := matrix.Identity[int, float64](c)
			if err != nil {
				return false
			}
			p, err := matrix.Mul(a, id)
			return err == nil && p.Equal(a)
		},
		gen.IntRange(1, 6), gen.IntRange(1, 6), gen.Int64(),
	))

	properties.Property("(AB)ᵀ equals BᵀAᵀ on integers", prop.ForAll(
		func(r, k, c int, seed int64) bool {
			a := randInt(t, r, k, seed)
			b := randInt(t, k, c, seed^0x9e3779b9)
			ab, err := matrix.Mul(a, b)
			if err != nil || ab.Transpose() != nil {
				return false
			}
			at, err1 := matrix.Transposed(a)
			bt, err2 := matrix.Transposed(b)
			if err1 != nil || err2 != nil {
				return false
			}
			btat, err := matrix.Mul(bt, at)
			return err == nil && btat.Equal(ab)
		},
		gen.IntRange(1, 5), gen.IntRange(1, 5), gen.IntRange(1, 5), gen.Int64(),
	))

	properties.TestingRun(t)
}
