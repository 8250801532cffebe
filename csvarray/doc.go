// SPDX-License-Identifier: MIT

// Package csvarray converts between a stream of homogeneous CSV records and a
// dense, row-major numeric array.
//
// Three operations make up the package:
//
//	ReadFixed   fill a caller-declared (rows, cols) array; bounded: it stops
//	            at the first surplus row or surplus field without draining
//	            the source.
//	ReadDynamic infer the shape from the stream: the first record freezes
//	            the column count, the row count is whatever was observed.
//	Write       serialize an array back into records in row-major order,
//	            then flush the sink exactly once.
//
// Every read returns either a fully populated *dense.Dense or an error, never
// both: arrays under construction are zero-initialized (fixed mode) or staged
// in a growable buffer that is only frozen into a Dense once the whole stream
// validated (dynamic mode).
//
// Error reporting policy:
//
//   - Fixed mode is bounded. TooManyRows and TooManyColumns do not report an
//     actual count: counting would require draining the oversized stream or row.
//   - Dynamic mode is exact. NColumns reports the observed width, because the
//     whole record is decoded anyway.
//
// Errors are matched with errors.Is against ErrDecode, ErrTooFewRows,
// ErrTooManyRows, ErrTooFewColumns, ErrTooManyColumns, ErrNColumns and ErrSink;
// details are available through errors.As on *ReadError and *WriteError.
// Write refuses arrays with rows but no columns (ErrZeroWidth), since those
// rows would come back as nothing.
//
// Dynamic mode has no internal bound. Pair it with an external length cap
// (see stream.WithMaxBytes) when reading untrusted input.
//
// Quick example:
//
//	r := csvarray.NewReader(csvio.NewReader(f), fields.For[int64]())
//	a, err := r.ReadFixed(dense.Shape{Rows: 2, Cols: 3})
//	if errors.Is(err, csvarray.ErrTooFewRows) { ... }
package csvarray
