// SPDX-License-Identifier: MIT

package table

import "golang.org/x/exp/constraints"

// Value is the set of element types a Table may hold.
type Value interface {
	constraints.Integer | constraints.Float
}

// Float is the set of working-precision types used for accumulation
// (sums, norms, inner products).
type Float interface {
	constraints.Float
}

// Table is a row-major rows×cols container.
//   - r,c hold dimensions (>= 0).
//   - data has length r*c and is nil iff r*c == 0.
type Table[V Value] struct {
	r, c int
	data []V
}
