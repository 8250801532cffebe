// SPDX-License-Identifier: MIT

// Package dense provides a generic, row-major, rectangular array of numeric
// scalars: the in-memory side of every gridcsv conversion.
//
// The package provides:
//
//   - Dense[T], a flat buffer of length rows*cols addressed as i*cols + j.
//   - Shape, the immutable (rows, cols) pair used to size and validate reads.
//   - Safe accessors (At/Set return ErrOutOfRange instead of panicking) and
//     no-copy row views for serializers (Row, AllRows).
//
// Zero-sized shapes (0×C, R×0, 0×0) are legal: a CSV stream with no records
// still produces a well-formed array.
//
// Every Dense handed out by this package is fully initialized; constructors
// either zero-fill or take ownership of a buffer whose length already matches
// the shape.
package dense
