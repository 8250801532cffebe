// SPDX-License-Identifier: MIT

package csvarray

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
)

// Reader decodes a record stream into dense arrays of T.
// It borrows the RecordReader; it never closes it and holds no state across
// reads except whether the header has been skipped.
// A Reader is not safe for concurrent use.
type Reader[T dense.Scalar] struct {
	src        RecordReader
	parse      func(string) (T, error)
	opts       options
	headerDone bool
}

// NewReader wraps src. A zero Codec selects fields.For[T]().
// Panics if src is nil.
func NewReader[T dense.Scalar](src RecordReader, codec fields.Codec[T], opts ...Option) *Reader[T] {
	if src == nil {
		panic("csvarray: NewReader: source must not be nil")
	}
	if codec.Parse == nil {
		codec = fields.For[T]()
	}

	return &Reader[T]{src: src, parse: codec.Parse, opts: gatherOptions(opts...)}
}

// ReadFixed reads exactly shape.Rows records of shape.Cols fields each.
//
// Implementation:
//   - Stage 1: validate the shape and allocate exactly Rows*Cols zero cells.
//   - Stage 2: a failing record source fails with Decode, even past the
//     last expected row. For each record that arrives, fail with TooManyRows
//     if Rows rows were already filled (the record is not decoded and the
//     source is not drained further), else decode fields into the row's cells:
//     a field beyond Cols fails with TooManyColumns immediately, a field that
//     does not parse fails with Decode, a short record fails with TooFewColumns.
//   - Stage 3: at end of stream, fewer than Rows rows fails with TooFewRows.
//
// Behavior highlights:
//   - Decode errors win over column-count errors for fields within the first
//     Cols: a malformed field is reported before a short record.
//   - On error the buffer is dropped; no partially filled array escapes.
//
// Errors:
//   - dense.ErrBadShape for an invalid shape (before any record is read).
//   - *ReadError of kind Decode, TooFewRows, TooManyRows, TooFewColumns, TooManyColumns.
//
// Complexity:
//   - Time O(Rows*Cols), Space O(Rows*Cols); reads at most Rows+1 records.
func (r *Reader[T]) ReadFixed(shape dense.Shape) (*dense.Dense[T], error) {
	if err := dense.ValidateShape(shape.Rows, shape.Cols); err != nil {
		return nil, err
	}
	a, err := r.readFixed(shape)
	r.finishRead(ModeFixed, shape, err)

	return a, err
}

func (r *Reader[T]) readFixed(shape dense.Shape) (*dense.Dense[T], error) {
	if err := r.skipHeader(); err != nil {
		return nil, err
	}

	rows, cols := shape.Rows, shape.Cols
	buf := make([]T, shape.Len())
	n := 0 // rows filled so far
	for {
		rec, err := r.src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, decodeError(n, err)
		}
		if n >= rows {
			return nil, tooManyRows(rows)
		}
		if err = r.decodeRow(buf[n*cols:(n+1)*cols], rec, n); err != nil {
			return nil, err
		}
		n++
	}
	if n < rows {
		return nil, tooFewRows(rows, n)
	}

	return dense.FromSlice(rows, cols, buf)
}

// decodeRow parses rec into dst, enforcing len(rec) == len(dst).
func (r *Reader[T]) decodeRow(dst []T, rec []string, row int) error {
	cols := len(dst)
	for j, field := range rec {
		if j == cols {
			return tooManyColumns(row, cols)
		}
		v, err := r.parseField(field, row, j)
		if err != nil {
			return err
		}
		dst[j] = v
	}
	if len(rec) < cols {
		return tooFewColumns(row, cols, len(rec))
	}

	return nil
}

// ReadDynamic reads the whole stream, inferring the shape from it.
//
// Implementation:
//   - Stage 1: the first record freezes the column count C.
//   - Stage 2: every record is decoded and appended to a growable staging
//     buffer; a record whose width differs from C fails with NColumns.
//   - Stage 3: at end of stream the staging buffer is frozen into a
//     (rows observed)×C array. An empty stream yields 0×0.
//
// Behavior highlights:
//   - Decode errors win over width errors for the same record.
//   - The stream is consumed to its end on success; there is no row bound.
//
// Errors:
//   - *ReadError of kind Decode or NColumns.
//
// Complexity:
//   - Time O(R*C), Space O(R*C) amortized.
func (r *Reader[T]) ReadDynamic() (*dense.Dense[T], error) {
	a, observed, err := r.readDynamic()
	r.finishRead(ModeDynamic, observed, err)

	return a, err
}

func (r *Reader[T]) readDynamic() (*dense.Dense[T], dense.Shape, error) {
	var seen dense.Shape
	if err := r.skipHeader(); err != nil {
		return nil, seen, err
	}

	var staging []T
	for {
		rec, err := r.src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, seen, decodeError(seen.Rows, err)
		}
		if seen.Rows == 0 {
			seen.Cols = len(rec)
			staging = make([]T, 0, seen.Cols*stagingRowsHint)
		}
		for j, field := range rec {
			v, err := r.parseField(field, seen.Rows, j)
			if err != nil {
				return nil, seen, err
			}
			staging = append(staging, v)
		}
		if len(rec) != seen.Cols {
			return nil, seen, nColumns(seen.Rows, seen.Cols, len(rec))
		}
		seen.Rows++
	}

	a, err := dense.FromSlice(seen.Rows, seen.Cols, staging)

	return a, seen, err
}

// skipHeader discards one leading record once per Reader when configured.
func (r *Reader[T]) skipHeader() error {
	if !r.opts.skipHeader || r.headerDone {
		return nil
	}
	r.headerDone = true
	if _, err := r.src.Read(); err != nil && !errors.Is(err, io.EOF) {
		return decodeError(notReported, err)
	}

	return nil
}

// parseField applies trimming and the codec, locating failures.
func (r *Reader[T]) parseField(field string, row, col int) (T, error) {
	if r.opts.trimSpace {
		field = strings.TrimSpace(field)
	}
	v, err := r.parse(field)
	if err != nil {
		return v, decodeError(row, &FieldError{Row: row, Column: col, Err: err})
	}

	return v, nil
}

// finishRead logs and reports the outcome of one read.
func (r *Reader[T]) finishRead(mode Mode, shape dense.Shape, err error) {
	r.opts.observer.ObserveRead(mode, shape, err)
	if err == nil {
		r.opts.logger.Debug("csv read",
			zap.Stringer("mode", mode),
			zap.Int("rows", shape.Rows),
			zap.Int("cols", shape.Cols))
		return
	}

	fs := []zap.Field{zap.Stringer("mode", mode), zap.Error(err)}
	var re *ReadError
	if errors.As(err, &re) {
		fs = append(fs,
			zap.Stringer("kind", re.Kind),
			zap.Int("row", re.Row),
			zap.Int("expected", re.Expected),
			zap.Int("actual", re.Actual))
	}
	r.opts.logger.Warn("csv read failed", fs...)
}

// ReadFixed is the one-shot form of Reader.ReadFixed.
func ReadFixed[T dense.Scalar](src RecordReader, shape dense.Shape, codec fields.Codec[T], opts ...Option) (*dense.Dense[T], error) {
	return NewReader(src, codec, opts...).ReadFixed(shape)
}

// ReadDynamic is the one-shot form of Reader.ReadDynamic.
func ReadDynamic[T dense.Scalar](src RecordReader, codec fields.Codec[T], opts ...Option) (*dense.Dense[T], error) {
	return NewReader(src, codec, opts...).ReadDynamic()
}
