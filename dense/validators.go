// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Single source of truth for shape and nil checks used by constructors
//    and by the csvarray readers before they allocate.
//  - Return sentinel errors wrapped with a validator tag so call sites stay uniform.

package dense

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks that (rows, cols) is a legal, allocatable shape.
//
// Returns ErrBadShape for negative dimensions or rows*cols above MaxCells.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return validatorErrorf("ValidateShape", err)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step before reading shape from a caller-supplied array.
func ValidateNotNil[T Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRowLen ensures a row of width n fits the matrix column count.
// Complexity: O(1).
func ValidateRowLen(n, cols int) error {
	if n != cols {
		return validatorErrorf("ValidateRowLen", ErrDimensionMismatch)
	}

	return nil
}
