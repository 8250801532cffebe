// SPDX-License-Identifier: MIT

// Package csvarray: collaborator interfaces and domain types.
// This file contains ONLY the boundary types; logic lives in reader.go and writer.go.
package csvarray

import "github.com/katalvlaran/gridcsv/dense"

// RecordReader is the record source: a single-pass sequence of records.
// Read returns io.EOF (exactly, or wrapped) once the stream is exhausted; any
// other error is a decode failure of the record codec.
//
// *csvio.Reader and *encoding/csv.Reader satisfy it. The reader should not
// enforce record widths itself: csvarray reports width mismatches with row
// indices and expected counts.
type RecordReader interface {
	Read() ([]string, error)
}

// RecordWriter is the record sink: it encodes one record per Write call and
// buffers output until Flush. Write must not retain the record slice.
//
// *csvio.Writer satisfies it.
type RecordWriter interface {
	Write(record []string) error
	Flush() error
}

// Mode distinguishes the two read strategies.
type Mode int

const (
	// ModeFixed reads into a caller-declared shape.
	ModeFixed Mode = iota + 1
	// ModeDynamic infers the shape from the stream.
	ModeDynamic
)

// String returns "fixed" or "dynamic".
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeDynamic:
		return "dynamic"
	}
	return "unknown"
}

// Observer receives one callback per completed operation.
// For reads, shape is the resulting shape on success and the target (fixed)
// or partial observation (dynamic) on failure. For writes, rows is the number
// of rows handed to the sink before success or failure.
type Observer interface {
	ObserveRead(mode Mode, shape dense.Shape, err error)
	ObserveWrite(shape dense.Shape, rows int, err error)
}

// nopObserver is the default Observer.
type nopObserver struct{}

func (nopObserver) ObserveRead(Mode, dense.Shape, error)  {}
func (nopObserver) ObserveWrite(dense.Shape, int, error) {}
