// SPDX-License-Identifier: MIT

// Package table - owned row-major storage & safe accessors.
//
// Purpose:
//   - Provide a single owned flat buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep ownership explicit: Clone deep-copies, Move transfers and empties, Swap exchanges.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Move/Swap: O(1).

package table

import (
	"runtime"
)

// allocate returns a zeroed buffer of rows*cols elements.
// MAIN DESCRIPTION:
//   - Single allocation point for every constructor.
//
// Implementation:
//   - Stage 1: reject negative dimensions.
//   - Stage 2: zero-area shapes return a nil buffer (no allocation).
//   - Stage 3: detect rows*cols overflow before calling make.
//   - Stage 4: convert a runtime makeslice failure into ErrOutOfMemory.
//
// Behavior highlights:
//   - The caller receives either a complete buffer or an error, never a partial one.
//   - Only runtime.Error panics are converted; anything else is re-raised.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func allocate[V Value](rows, cols int) (buf []V, err error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return nil, nil
	}
	n := rows * cols
	if n/rows != cols {
		return nil, ErrOutOfMemory // product overflowed int
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, ErrOutOfMemory
		}
	}()

	return make([]V, n), nil
}

// New creates a rows×cols table filled with the zero value of V.
// Zero rows or zero columns yield an empty table without storage.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//   - ErrOutOfMemory when the buffer cannot be allocated.
func New[V Value](rows, cols int) (*Table[V], error) {
	buf, err := allocate[V](rows, cols)
	if err != nil {
		return nil, cellErrorf(ctxNew, rows, cols, err)
	}

	return &Table[V]{r: rows, c: cols, data: buf}, nil
}

// NewFilled creates a rows×cols table with every element set to fill.
// Complexity: O(r*c).
func NewFilled[V Value](rows, cols int, fill V) (*Table[V], error) {
	t, err := New[V](rows, cols)
	if err != nil {
		return nil, err
	}
	t.Fill(fill)

	return t, nil
}

// FromRows builds a table from a nested slice, converting every element to V.
// MAIN DESCRIPTION:
//   - rows = len(src), cols = len(src[0]); the first row is authoritative.
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 table with no allocation.
//   - Inner rows longer than cols are truncated to cols.
//   - An inner row shorter than cols fails with ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[V Value, S Value](src [][]S) (*Table[V], error) {
	if len(src) == 0 {
		return &Table[V]{}, nil
	}
	rows, cols := len(src), len(src[0])
	for i := 1; i < rows; i++ {
		if len(src[i]) < cols {
			return nil, cellErrorf(ctxFromRows, i, len(src[i]), ErrDimensionMismatch)
		}
	}

	t, err := New[V](rows, cols)
	if err != nil {
		return nil, tableErrorf(ctxFromRows, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			t.data[base+j] = V(src[i][j])
		}
	}

	return t, nil
}

// FromSlice reshapes a flat row-major slice into a table with the given column count.
// rows = ceil(len(src)/cols) and exactly rows*cols elements are copied, so the
// source must be pre-sized to a whole number of rows.
//
// Errors:
//   - ErrInvalidDimensions when cols <= 0 and src is not empty.
//   - ErrDimensionMismatch when len(src) is not a multiple of cols.
func FromSlice[V Value](src []V, cols int) (*Table[V], error) {
	if len(src) == 0 {
		return &Table[V]{}, nil
	}
	if cols <= 0 {
		return nil, tableErrorf(ctxFromSlice, ErrInvalidDimensions)
	}
	rows := (len(src) + cols - 1) / cols
	if len(src) < rows*cols {
		return nil, tableErrorf(ctxFromSlice, ErrDimensionMismatch)
	}

	t, err := New[V](rows, cols)
	if err != nil {
		return nil, tableErrorf(ctxFromSlice, err)
	}
	copy(t.data, src)

	return t, nil
}

// FromRange builds a table from the iterator range [begin, end) of any view.
// rows = ceil(count/cols); rows*cols elements are read starting at begin, so a
// partial last row must still be backed by begin's view.
//
// Errors:
//   - ErrForeignIterator when begin and end do not share a view.
//   - ErrInvalidDimensions when cols <= 0 for a non-empty range.
//   - ErrOutOfBounds when the view cannot supply rows*cols elements.
func FromRange[V Value](begin, end Iterator[V], cols int) (*Table[V], error) {
	count, err := end.Distance(begin)
	if err != nil {
		return nil, tableErrorf(ctxFromRange, err)
	}
	if count <= 0 {
		return &Table[V]{}, nil
	}
	if cols <= 0 {
		return nil, tableErrorf(ctxFromRange, ErrInvalidDimensions)
	}
	rows := (count + cols - 1) / cols
	need := rows * cols
	src := begin.view
	if _, ok := src.offset(begin.pos); !ok {
		return nil, tableErrorf(ctxFromRange, ErrOutOfBounds)
	}
	if _, ok := src.offset(begin.pos + need - 1); !ok {
		return nil, tableErrorf(ctxFromRange, ErrOutOfBounds)
	}

	t, err := New[V](rows, cols)
	if err != nil {
		return nil, tableErrorf(ctxFromRange, err)
	}
	for k := 0; k < need; k++ {
		t.data[k] = src.t.data[src.origin+(begin.pos+k)*src.stride]
	}

	return t, nil
}

// Rows returns the row count.
func (t *Table[V]) Rows() int { return t.r }

// Cols returns the column count.
func (t *Table[V]) Cols() int { return t.c }

// Dims packs Rows() and Cols() into a single call.
func (t *Table[V]) Dims() (rows, cols int) { return t.r, t.c }

// Len returns rows*cols.
func (t *Table[V]) Len() int { return len(t.data) }

// IsEmpty reports whether the table holds no elements.
func (t *Table[V]) IsEmpty() bool { return len(t.data) == 0 }

// indexOf bounds-checks (row,col) and returns the row-major offset.
func (t *Table[V]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, ErrOutOfBounds
	}

	return row*t.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfBounds. Never clamps.
// Complexity: O(1).
func (t *Table[V]) At(row, col int) (V, error) {
	off, err := t.indexOf(row, col)
	if err != nil {
		var zero V
		return zero, cellErrorf(ctxAt, row, col, err)
	}

	return t.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds.
// Complexity: O(1).
func (t *Table[V]) Set(row, col int, v V) error {
	off, err := t.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	t.data[off] = v

	return nil
}

// Fill overwrites every element with v.
func (t *Table[V]) Fill(v V) {
	for k := range t.data {
		t.data[k] = v
	}
}

// IsZero reports whether every element equals the zero value of V.
// An empty table is zero.
func (t *Table[V]) IsZero() bool {
	var zero V
	for _, v := range t.data {
		if v != zero {
			return false
		}
	}

	return true
}

// Data returns a copy of the flat row-major buffer.
func (t *Table[V]) Data() []V {
	if len(t.data) == 0 {
		return nil
	}
	out := make([]V, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy; mutations of either table never affect the other.
// Complexity: O(r*c).
func (t *Table[V]) Clone() *Table[V] {
	out := &Table[V]{r: t.r, c: t.c}
	if len(t.data) > 0 {
		out.data = make([]V, len(t.data))
		copy(out.data, t.data)
	}

	return out
}

// Move transfers ownership of the buffer into a new table and leaves the
// receiver empty (0×0, no storage). Iterators over the receiver are invalidated.
// Complexity: O(1).
func (t *Table[V]) Move() *Table[V] {
	out := &Table[V]{r: t.r, c: t.c, data: t.data}
	t.r, t.c, t.data = 0, 0, nil

	return out
}

// Swap exchanges dimensions and buffers of t and other in O(1).
// It is the primitive behind copy-and-swap updates (build into scratch, then Swap).
func (t *Table[V]) Swap(other *Table[V]) {
	t.r, other.r = other.r, t.r
	t.c, other.c = other.c, t.c
	t.data, other.data = other.data, t.data
}

// Equal reports whether t and other have identical dimensions and elements.
func (t *Table[V]) Equal(other *Table[V]) bool { return Equal(t, other) }

// Equal reports whether a and b have identical dimensions and every pair of
// corresponding elements compares equal. Two nil tables are equal.
func Equal[V Value](a, b *Table[V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}
