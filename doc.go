// Package gridcsv bridges CSV record streams and dense, row-major numeric
// arrays: read a grid of numbers into one contiguous buffer, or write one out.
//
// What is gridcsv?
//
//	A small, typed toolkit that brings together:
//		• Dense arrays: Dense[T] over any integer or float kind, row-major, zero-copy row views
//		• Field codecs: strconv-backed Parse/Format per element type, optional finite-only floats
//		• A streaming RFC 4180 reader and writer (csvio)
//		• Fixed-shape reads: exactly R×C, bounded, with precise shape errors
//		• Dynamic-shape reads: width from the first record, rows until end of stream
//		• Array writes: one record per row, one flush, sink failures surfaced
//
// Why gridcsv?
//
//   - Typed errors: every failure is a *ReadError or *WriteError with a kind,
//     a row index and expected/actual counts; errors.Is and errors.As just work
//   - No partial results: an array is returned only when the whole read succeeded
//   - Pluggable: any RecordReader (including encoding/csv) and RecordWriter
//   - Observable: zap logging and Prometheus counters through options
//
// Packages:
//
//	dense/        Dense[T], Shape and validators
//	fields/       element kinds and scalar codecs
//	csvio/        streaming CSV record reader and writer
//	csvarray/     fixed and dynamic readers, array writer, error taxonomy
//	stream/       files, stdio, gzip/zstd/s2/lz4, byte caps
//	metrics/      Prometheus observer for csvarray
//	cmd/gridcsv/  the command-line tool (read, convert, version)
//
// Quick example:
//
//	1,2,3
//	4,5,6
//
//	src := csvio.NewReader(f)
//	a, err := csvarray.ReadFixed(src, dense.Shape{Rows: 2, Cols: 3}, fields.For[float64]())
//
// represents a 2×3 array stored as [1 2 3 4 5 6].
//
//	go get github.com/katalvlaran/gridcsv
package gridcsv
