// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Every message is prefixed with "dense: ..." for easy grepping across logs.
// Callers match these with errors.Is; methods wrap them with call-site
// context (method name, coordinates) via fmt.Errorf("...: %w").

package dense

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimension or rows*cols overflowing int).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates that a buffer length or row width does not
	// agree with the declared shape (FromSlice, FromRows, Equal inputs).
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a value is required.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
