// SPDX-License-Identifier: MIT

// Package table - strided views and random-access iterators.
//
// Purpose:
//   - One generic window (origin, stride, length) over a Table's buffer serves all
//     three traversal shapes:
//     flat    : origin 0,      stride 1,    length rows*cols
//     row i   : origin i*cols, stride 1,    length cols
//     column j: origin j,      stride cols, length rows
//   - Iterator is (view, position) with the usual random-access arithmetic.
//
// Lifetime:
//   - Views and iterators hold a non-owning *Table. They observe later cell writes,
//     and are invalidated by Move, Swap or a transpose. Every dereference is
//     bounds-checked against the current buffer, so a stale iterator reports
//     ErrOutOfBounds instead of reading foreign memory.

package table

import (
	"fmt"
	"iter"
	"sort"
)

// View is a bounded strided window over a Table's buffer.
// The zero View is empty.
type View[V Value] struct {
	t      *Table[V]
	origin int
	stride int
	length int
}

// Compile-time check: views plug into sort.Sort and friends.
var _ sort.Interface = View[int]{}

// Flat returns the row-major view over every element.
func (t *Table[V]) Flat() View[V] {
	return View[V]{t: t, origin: 0, stride: 1, length: len(t.data)}
}

// Row returns the view over row i.
// Errors: ErrOutOfBounds unless 0 <= i < Rows().
func (t *Table[V]) Row(i int) (View[V], error) {
	if i < 0 || i >= t.r {
		return View[V]{}, cellErrorf(ctxRow, i, 0, ErrOutOfBounds)
	}

	return View[V]{t: t, origin: i * t.c, stride: 1, length: t.c}, nil
}

// Column returns the view over column j.
// Errors: ErrOutOfBounds unless 0 <= j < Cols().
func (t *Table[V]) Column(j int) (View[V], error) {
	if j < 0 || j >= t.c {
		return View[V]{}, cellErrorf(ctxColumn, 0, j, ErrOutOfBounds)
	}

	return View[V]{t: t, origin: j, stride: t.c, length: t.r}, nil
}

// Begin returns the flat iterator at the first element.
func (t *Table[V]) Begin() Iterator[V] { return t.Flat().Begin() }

// End returns the flat iterator one past the last element.
func (t *Table[V]) End() Iterator[V] { return t.Flat().End() }

// BeginRow returns the iterator at the first element of row i.
func (t *Table[V]) BeginRow(i int) (Iterator[V], error) {
	v, err := t.Row(i)
	if err != nil {
		return Iterator[V]{}, err
	}

	return v.Begin(), nil
}

// EndRow returns the iterator one past the last element of row i.
func (t *Table[V]) EndRow(i int) (Iterator[V], error) {
	v, err := t.Row(i)
	if err != nil {
		return Iterator[V]{}, err
	}

	return v.End(), nil
}

// BeginColumn returns the iterator at the first element of column j.
func (t *Table[V]) BeginColumn(j int) (Iterator[V], error) {
	v, err := t.Column(j)
	if err != nil {
		return Iterator[V]{}, err
	}

	return v.Begin(), nil
}

// EndColumn returns the iterator one past the last element of column j.
func (t *Table[V]) EndColumn(j int) (Iterator[V], error) {
	v, err := t.Column(j)
	if err != nil {
		return Iterator[V]{}, err
	}

	return v.End(), nil
}

// offset translates position k into a buffer offset, or reports false when k is
// outside the view or the owner's buffer no longer covers it.
func (v View[V]) offset(k int) (int, bool) {
	if v.t == nil || k < 0 || k >= v.length {
		return 0, false
	}
	off := v.origin + k*v.stride
	if off >= len(v.t.data) {
		return 0, false
	}

	return off, true
}

// same reports whether v and o address the same window of the same table.
func (v View[V]) same(o View[V]) bool {
	return v.t == o.t && v.origin == o.origin && v.stride == o.stride && v.length == o.length
}

// Len returns the number of positions in the view.
func (v View[V]) Len() int { return v.length }

// At returns the element at position k.
func (v View[V]) At(k int) (V, error) {
	off, ok := v.offset(k)
	if !ok {
		var zero V
		return zero, fmt.Errorf("View.At(%d): %w", k, ErrOutOfBounds)
	}

	return v.t.data[off], nil
}

// Set writes x at position k.
func (v View[V]) Set(k int, x V) error {
	off, ok := v.offset(k)
	if !ok {
		return fmt.Errorf("View.Set(%d): %w", k, ErrOutOfBounds)
	}
	v.t.data[off] = x

	return nil
}

// Less compares positions i and j; part of sort.Interface.
// Indices must be in range, as sort guarantees.
func (v View[V]) Less(i, j int) bool {
	return v.t.data[v.origin+i*v.stride] < v.t.data[v.origin+j*v.stride]
}

// Swap exchanges positions i and j; part of sort.Interface.
// Indices must be in range, as sort guarantees.
func (v View[V]) Swap(i, j int) {
	a, b := v.origin+i*v.stride, v.origin+j*v.stride
	v.t.data[a], v.t.data[b] = v.t.data[b], v.t.data[a]
}

// SortView sorts the elements of v in ascending order, in place.
// Cells outside the view are not touched.
func SortView[V Value](v View[V]) error {
	if v.length == 0 {
		return nil
	}
	if _, ok := v.offset(v.length - 1); !ok {
		return fmt.Errorf("SortView(len=%d): %w", v.length, ErrOutOfBounds)
	}
	sort.Sort(v)

	return nil
}

// Begin returns the iterator at position 0.
func (v View[V]) Begin() Iterator[V] { return Iterator[V]{view: v, pos: 0} }

// End returns the iterator one past the last position.
func (v View[V]) End() Iterator[V] { return Iterator[V]{view: v, pos: v.length} }

// All yields (position, value) pairs in view order.
func (v View[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for k := 0; k < v.length; k++ {
			off, ok := v.offset(k)
			if !ok || !yield(k, v.t.data[off]) {
				return
			}
		}
	}
}

// Values returns a copy of the view's elements in order.
func (v View[V]) Values() []V {
	out := make([]V, 0, v.length)
	for _, x := range v.All() {
		out = append(out, x)
	}

	return out
}

// Assign overwrites the view element-by-element from src and returns the number
// of elements written, min(Len(), len(src)). A shorter src leaves the tail of the
// view untouched; compare the result with Len() to detect truncation, or use
// AssignExact.
func (v View[V]) Assign(src []V) int {
	n := min(v.length, len(src))
	for k := 0; k < n; k++ {
		off, ok := v.offset(k)
		if !ok {
			return k
		}
		v.t.data[off] = src[k]
	}

	return n
}

// AssignExact overwrites the view from src, failing with ErrDimensionMismatch
// (and writing nothing) unless len(src) == Len().
func (v View[V]) AssignExact(src []V) error {
	if len(src) != v.length {
		return fmt.Errorf("View.AssignExact(len=%d, want %d): %w", len(src), v.length, ErrDimensionMismatch)
	}
	v.Assign(src)

	return nil
}

// Iterator is a random-access position inside a View.
// It is a small value; arithmetic returns new iterators.
type Iterator[V Value] struct {
	view View[V]
	pos  int
}

// View returns the view the iterator walks.
func (it Iterator[V]) View() View[V] { return it.view }

// Pos returns the position within the view.
func (it Iterator[V]) Pos() int { return it.pos }

// Next returns it + 1.
func (it Iterator[V]) Next() Iterator[V] {
	it.pos++
	return it
}

// Prev returns it - 1.
func (it Iterator[V]) Prev() Iterator[V] {
	it.pos--
	return it
}

// Add returns it + k (k may be negative).
func (it Iterator[V]) Add(k int) Iterator[V] {
	it.pos += k
	return it
}

// Distance returns it - from. Both iterators must come from the same view of
// the same table; otherwise ErrForeignIterator.
func (it Iterator[V]) Distance(from Iterator[V]) (int, error) {
	if !it.view.same(from.view) {
		return 0, fmt.Errorf("Iterator.Distance: %w", ErrForeignIterator)
	}

	return it.pos - from.pos, nil
}

// Compare returns -1, 0 or +1 ordering it against o within their common view.
func (it Iterator[V]) Compare(o Iterator[V]) (int, error) {
	d, err := it.Distance(o)
	if err != nil {
		return 0, err
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}

	return 0, nil
}

// Equal reports whether it and o address the same position of the same view.
func (it Iterator[V]) Equal(o Iterator[V]) bool {
	return it.view.same(o.view) && it.pos == o.pos
}

// Less reports whether it precedes o in the same view. Iterators of different
// views are unordered and Less reports false.
func (it Iterator[V]) Less(o Iterator[V]) bool {
	return it.view.same(o.view) && it.pos < o.pos
}

// Valid reports whether the iterator can be dereferenced.
func (it Iterator[V]) Valid() bool {
	_, ok := it.view.offset(it.pos)
	return ok
}

// Get dereferences the iterator. End() and stale iterators fail with ErrOutOfBounds.
func (it Iterator[V]) Get() (V, error) {
	off, ok := it.view.offset(it.pos)
	if !ok {
		var zero V
		return zero, fmt.Errorf("Iterator.Get(%d): %w", it.pos, ErrOutOfBounds)
	}

	return it.view.t.data[off], nil
}

// Set writes x through the iterator.
func (it Iterator[V]) Set(x V) error {
	off, ok := it.view.offset(it.pos)
	if !ok {
		return fmt.Errorf("Iterator.Set(%d): %w", it.pos, ErrOutOfBounds)
	}
	it.view.t.data[off] = x

	return nil
}
