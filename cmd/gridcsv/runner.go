// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
	"github.com/katalvlaran/gridcsv/internal/report"
	"github.com/katalvlaran/gridcsv/stream"
)

// source locates the input and its declared shape; negative dimensions
// select dynamic mode.
type source struct {
	path  string
	rows  int
	cols  int
	stdin io.Reader
}

func (s source) fixed() bool { return s.rows >= 0 && s.cols >= 0 }

// sink locates the output of convert.
type sink struct {
	path   string
	opts   []csvio.Option
	stream []stream.Option // output codec override
	stdout io.Writer
}

// runner executes commands for one element type.
type runner interface {
	read(a *app, src source, values bool) (report.Report, error)
	convert(a *app, src source, dst sink) error
}

// typed is the runner for element type T.
type typed[T dense.Scalar] struct {
	codec fields.Codec[T]
}

// runnerFor maps an element kind to its runner.
func runnerFor(kind fields.Kind) (runner, error) {
	switch kind {
	case fields.Int:
		return typed[int]{fields.For[int]()}, nil
	case fields.Int8:
		return typed[int8]{fields.For[int8]()}, nil
	case fields.Int16:
		return typed[int16]{fields.For[int16]()}, nil
	case fields.Int32:
		return typed[int32]{fields.For[int32]()}, nil
	case fields.Int64:
		return typed[int64]{fields.For[int64]()}, nil
	case fields.Uint:
		return typed[uint]{fields.For[uint]()}, nil
	case fields.Uint8:
		return typed[uint8]{fields.For[uint8]()}, nil
	case fields.Uint16:
		return typed[uint16]{fields.For[uint16]()}, nil
	case fields.Uint32:
		return typed[uint32]{fields.For[uint32]()}, nil
	case fields.Uint64:
		return typed[uint64]{fields.For[uint64]()}, nil
	case fields.Float32:
		return typed[float32]{fields.For[float32]()}, nil
	case fields.Float64:
		return typed[float64]{fields.For[float64]()}, nil
	}
	return nil, fmt.Errorf("no runner for %s: %w", kind, fields.ErrUnknownKind)
}

// load decodes the source in fixed or dynamic mode.
func (t typed[T]) load(a *app, src source) (arr *dense.Dense[T], err error) {
	rc, err := stream.Open(src.path, stream.WithMaxBytes(a.cfg.MaxBytes), stream.WithStdin(src.stdin))
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(rc))

	r := csvarray.NewReader(csvio.NewReader(rc, a.cfg.CSV.ReaderOptions()...), t.codec, a.arrayOptions()...)
	if src.fixed() {
		arr, err = r.ReadFixed(dense.Shape{Rows: src.rows, Cols: src.cols})
	} else {
		arr, err = r.ReadDynamic()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.path, err)
	}

	return arr, nil
}

func (t typed[T]) read(a *app, src source, values bool) (report.Report, error) {
	arr, err := t.load(a, src)
	if err != nil {
		return report.Report{}, err
	}

	mode := csvarray.ModeDynamic
	if src.fixed() {
		mode = csvarray.ModeFixed
	}
	rep := report.Report{
		Source:  src.path,
		Element: t.codec.Kind.String(),
		Mode:    mode.String(),
		Rows:    arr.Rows(),
		Cols:    arr.Cols(),
		Cells:   arr.Len(),
	}
	if values {
		rep.Values = make([][]string, 0, arr.Rows())
		for _, row := range arr.AllRows() {
			rec := make([]string, len(row))
			for j, v := range row {
				rec[j] = t.codec.Format(v)
			}
			rep.Values = append(rep.Values, rec)
		}
	}

	return rep, nil
}

func (t typed[T]) convert(a *app, src source, dst sink) (err error) {
	arr, err := t.load(a, src)
	if err != nil {
		return err
	}

	wc, err := stream.Create(dst.path, append(dst.stream, stream.WithStdout(dst.stdout))...)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(wc))

	w := csvio.NewWriter(wc, dst.opts...)
	if err = csvarray.Write(w, arr, t.codec, a.arrayOptions()...); err != nil {
		return fmt.Errorf("%s: %w", dst.path, err)
	}

	return nil
}
