// Package dense_test contains unit tests for the generic Dense array.
package dense_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridcsv/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBadShape ensures New rejects negative and overflowing dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := dense.New[int](-1, 3)
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.New[int](3, -1)
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.New[int](math.MaxInt, 2) // rows*cols overflows int
	require.ErrorIs(t, err, dense.ErrBadShape)

	// Fits in an int, but the buffer would exceed the allocator's limit.
	_, err = dense.New[int64](math.MaxInt>>23, 1<<20)
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestShapeMaxCells checks the boundary of the cell-count bound.
func TestShapeMaxCells(t *testing.T) {
	require.NoError(t, dense.Shape{Rows: dense.MaxCells, Cols: 1}.Validate())
	require.NoError(t, dense.Shape{Rows: 1, Cols: dense.MaxCells}.Validate())
	require.ErrorIs(t, dense.Shape{Rows: dense.MaxCells + 1, Cols: 1}.Validate(), dense.ErrBadShape)
	require.ErrorIs(t, dense.Shape{Rows: dense.MaxCells/2 + 1, Cols: 2}.Validate(), dense.ErrBadShape)
	require.ErrorIs(t, dense.ValidateShape(dense.MaxCells, 2), dense.ErrBadShape)
}

// TestNewZeroSized verifies that empty shapes are legal and well-formed.
func TestNewZeroSized(t *testing.T) {
	for _, s := range []dense.Shape{{0, 0}, {0, 3}, {4, 0}} {
		m, err := dense.New[float64](s.Rows, s.Cols)
		require.NoError(t, err, "shape %v", s)
		assert.Equal(t, s, m.Shape())
		assert.Equal(t, 0, m.Len())
		assert.NotNil(t, m.Data())
	}
}

// TestNewZeroFilled checks that every cell starts at the zero value.
func TestNewZeroFilled(t *testing.T) {
	m, err := dense.New[int32](2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0, 0, 0, 0}, m.Data())
}

// TestFromSlice covers ownership transfer and length validation.
func TestFromSlice(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	m, err := dense.FromSlice(2, 3, buf)
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	buf[0] = 9 // no copy: the array observes the caller's buffer
	v, _ = m.At(0, 0)
	assert.Equal(t, 9, v)

	_, err = dense.FromSlice(2, 2, buf)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.FromSlice(-2, 2, []int{})
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestFromRows verifies copying construction and the ragged-input guard.
func TestFromRows(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{Rows: 2, Cols: 3}, m.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err = dense.FromRows([][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	empty, err := dense.FromRows[int](nil)
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{}, empty.Shape())
}

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange instead of panicking.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := dense.New[int](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), dense.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), dense.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestRowView checks that Row is a clipped, write-through view.
func TestRowView(t *testing.T) {
	m, err := dense.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, row)
	assert.Equal(t, 2, cap(row), "capacity must stop at the row boundary")

	row[1] = 20
	v, _ := m.At(0, 1)
	assert.Equal(t, 20, v)

	row = append(row, 99) // must reallocate, never touch row 1
	_ = row
	v, _ = m.At(1, 0)
	assert.Equal(t, 3, v)
}

// TestAllRowsOrder verifies outer iteration in index order with early stop.
func TestAllRowsOrder(t *testing.T) {
	m, err := dense.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	var got [][]int
	for i, row := range m.AllRows() {
		assert.Len(t, got, i)
		got = append(got, append([]int(nil), row...))
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, got)

	seen := 0
	for range m.AllRows() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

// TestCloneEqual ensures Clone is independent and Equal compares shape and cells.
func TestCloneEqual(t *testing.T) {
	m, err := dense.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	c := m.Clone()
	assert.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 7))
	assert.False(t, m.Equal(c))

	flat, err := dense.FromSlice(3, 2, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.False(t, m.Equal(flat), "same cells, different shape")

	var nilA, nilB *dense.Dense[int]
	assert.True(t, nilA.Equal(nilB))
	assert.False(t, m.Equal(nil))
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

// TestValidators covers the exported validation helpers.
func TestValidators(t *testing.T) {
	require.NoError(t, dense.ValidateShape(0, 0))
	require.ErrorIs(t, dense.ValidateShape(-1, 0), dense.ErrBadShape)

	var m *dense.Dense[int]
	require.ErrorIs(t, dense.ValidateNotNil(m), dense.ErrNilMatrix)

	require.NoError(t, dense.ValidateRowLen(3, 3))
	require.ErrorIs(t, dense.ValidateRowLen(2, 3), dense.ErrDimensionMismatch)

	assert.Equal(t, "2x3", dense.Shape{Rows: 2, Cols: 3}.String())
	assert.Equal(t, 6, dense.Shape{Rows: 2, Cols: 3}.Len())
}
