// SPDX-License-Identifier: MIT

// Package dense: domain types shared by constructors, readers and writers.
package dense

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint of a Dense: any integer or floating kind.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Shape is the (rows, cols) pair of a rectangular array.
// A Shape is a value: once handed to a reader it is frozen for that read.
type Shape struct {
	Rows int // row count (outer dimension)
	Cols int // column count (inner dimension)
}

// MaxCells bounds Rows*Cols so that a buffer of the widest Scalar (8 bytes)
// stays below the runtime's allocation limit on every platform.
const MaxCells = min(math.MaxInt, 1<<47) / 8

// Validate reports ErrBadShape for negative dimensions or a cell count
// above MaxCells.
// Complexity: O(1).
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("Shape(%d,%d): %w", s.Rows, s.Cols, ErrBadShape)
	}
	if s.Cols != 0 && s.Rows > MaxCells/s.Cols {
		return fmt.Errorf("Shape(%d,%d): cell count exceeds %d: %w", s.Rows, s.Cols, MaxCells, ErrBadShape)
	}

	return nil
}

// Len returns Rows*Cols. Call Validate first for untrusted shapes.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
