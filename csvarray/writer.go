// SPDX-License-Identifier: MIT

package csvarray

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
)

// Writer serializes dense arrays into a RecordWriter.
// It borrows the sink and never closes it. Not safe for concurrent use.
type Writer[T dense.Scalar] struct {
	dst    RecordWriter
	format func(T) string
	opts   options
	record []string // scratch record reused across rows
}

// NewWriter wraps dst. A zero Codec selects fields.For[T]().
// Panics if dst is nil.
func NewWriter[T dense.Scalar](dst RecordWriter, codec fields.Codec[T], opts ...Option) *Writer[T] {
	if dst == nil {
		panic("csvarray: NewWriter: sink must not be nil")
	}
	if codec.Format == nil {
		codec = fields.For[T]()
	}

	return &Writer[T]{dst: dst, format: codec.Format, opts: gatherOptions(opts...)}
}

// Write emits a's rows in index order, one record per row, then flushes once.
//
// Implementation:
//   - Stage 1: iterate rows via AllRows (no-copy views).
//   - Stage 2: format the row's cells into the scratch record and hand it to the sink.
//   - Stage 3: flush the sink exactly once after the last row.
//
// Behavior highlights:
//   - The first sink failure aborts the write without retry; rows before it
//     may already be in the sink (torn write).
//   - No reordering or transposition; the array is never modified.
//
// Errors:
//   - dense.ErrNilMatrix for a nil array.
//   - ErrZeroWidth for an R×0 array with R > 0; 0×C and 0×0 write nothing.
//   - *WriteError (errors.Is ErrSink) for write or flush failures.
//
// Complexity:
//   - Time O(R*C), Space O(C) for the scratch record.
func (w *Writer[T]) Write(a *dense.Dense[T]) error {
	if err := dense.ValidateNotNil(a); err != nil {
		return err
	}
	if a.Rows() > 0 && a.Cols() == 0 {
		return ErrZeroWidth
	}
	rows, err := w.write(a)
	w.finishWrite(a.Shape(), rows, err)

	return err
}

// write returns the number of rows accepted by the sink.
func (w *Writer[T]) write(a *dense.Dense[T]) (int, error) {
	record := w.scratch(a.Cols())
	for i, row := range a.AllRows() {
		for j, v := range row {
			record[j] = w.format(v)
		}
		if err := w.dst.Write(record); err != nil {
			return i, &WriteError{Row: i, Err: err}
		}
	}
	if err := w.dst.Flush(); err != nil {
		return a.Rows(), &WriteError{Row: -1, Err: err}
	}

	return a.Rows(), nil
}

// scratch returns a record of n fields, reusing the previous allocation.
func (w *Writer[T]) scratch(n int) []string {
	if cap(w.record) < n {
		w.record = make([]string, n)
	}
	w.record = w.record[:n]

	return w.record
}

// finishWrite logs and reports the outcome of one write.
func (w *Writer[T]) finishWrite(shape dense.Shape, rows int, err error) {
	w.opts.observer.ObserveWrite(shape, rows, err)
	if err == nil {
		w.opts.logger.Debug("csv write",
			zap.Int("rows", shape.Rows),
			zap.Int("cols", shape.Cols))
		return
	}
	w.opts.logger.Warn("csv write failed",
		zap.Int("rows_written", rows),
		zap.Int("rows", shape.Rows),
		zap.Error(err))
}

// Write is the one-shot form of Writer.Write.
func Write[T dense.Scalar](dst RecordWriter, a *dense.Dense[T], codec fields.Codec[T], opts ...Option) error {
	return NewWriter(dst, codec, opts...).Write(a)
}
