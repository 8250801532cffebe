// SPDX-License-Identifier: MIT

// Package dense - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep iteration deterministic (fixed row order, no map iteration).
//   - Hand out row views (Row, AllRows) so serializers never copy a row.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; FromSlice: O(1); At/Set/Row: O(1); Clone/Equal: O(r*c).

package dense

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxFromSlice = "FromSlice" // ctor tag
	ctxFromRows  = "FromRows"  // ctor tag
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <err>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major array of scalars.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Scalar] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates a rows×cols zero-filled array.
//
// Implementation:
//   - Stage 1: validate shape (non-negative, at most MaxCells cells).
//   - Stage 2: allocate a zero-filled buffer; make() zero-fills deterministically.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Scalar](rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice wraps data as a rows×cols array without copying.
// Ownership of data transfers to the returned Dense; callers must not keep
// mutating it through another alias.
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(1).
func FromSlice[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len %d for shape %dx%d: %w", ctxFromSlice, len(data), rows, cols, ErrDimensionMismatch)
	}
	if data == nil {
		data = []T{} // keep Data() non-nil for zero-sized arrays
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRows copies a rectangular [][]T into a new array.
// The column count is taken from rows[0]; an empty input yields 0×0.
//
// Errors:
//   - ErrDimensionMismatch when any row width differs from rows[0].
//
// Complexity: O(r*c).
func FromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{data: []T{}}, nil
	}
	cols := len(rows[0])
	buf := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if err := ValidateRowLen(len(row), cols); err != nil {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), cols, err)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Len returns the number of cells (Rows*Cols).
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a no-copy view of row i: the cols cells starting at i*cols.
// Writes through the view are visible in m. The view's capacity is clipped
// so appends can never spill into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.row(i), nil
}

// row is the unchecked form of Row used by iterators.
func (m *Dense[T]) row(i int) []T {
	lo := i * m.c
	hi := lo + m.c

	return m.data[lo:hi:hi]
}

// AllRows iterates the outer dimension in index order 0..Rows()-1, yielding
// each row index with a no-copy view of that row.
//
// Determinism: fixed i order; stops early when the consumer breaks.
// Complexity: O(r) views, no allocations.
func (m *Dense[T]) AllRows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.r; i++ {
			if !yield(i, m.row(i)) {
				return
			}
		}
	}
}

// Data returns the flat row-major buffer (shared, not copied).
func (m *Dense[T]) Data() []T { return m.data }

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same shape and identical cells.
// Two nil arrays are equal; a nil and a non-nil array are not.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return slices.Equal(m.data, o.data)
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for logs and debugging; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
