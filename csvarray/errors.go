// SPDX-License-Identifier: MIT
// Package csvarray: error taxonomy.
//
// Every shape or decode failure is a *ReadError carrying a Kind; every sink
// failure is a *WriteError. Both match their kind sentinel via errors.Is and
// unwrap to the collaborator's own error, which is never inspected or altered.
//
// A decode error is never reported as a shape error and vice versa.

package csvarray

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a read or write failure.
type ErrorKind int

// Error kinds. Fixed-mode kinds: Decode, TooFewRows, TooManyRows,
// TooFewColumns, TooManyColumns. Dynamic-mode kinds: Decode, NColumns.
// Write kind: Sink.
const (
	KindDecode ErrorKind = iota + 1
	KindTooFewRows
	KindTooManyRows
	KindTooFewColumns
	KindTooManyColumns
	KindNColumns
	KindSink
)

// Sentinels matched by errors.Is; one per kind.
var (
	ErrDecode         = errors.New("csvarray: decode failed")
	ErrTooFewRows     = errors.New("csvarray: too few rows")
	ErrTooManyRows    = errors.New("csvarray: too many rows")
	ErrTooFewColumns  = errors.New("csvarray: too few columns")
	ErrTooManyColumns = errors.New("csvarray: too many columns")
	ErrNColumns       = errors.New("csvarray: wrong number of columns")
	ErrSink           = errors.New("csvarray: sink failed")
)

// ErrZeroWidth is returned by Write for an array with rows but no columns.
// Such rows would serialize as empty lines, which no reader gives back.
var ErrZeroWidth = errors.New("csvarray: cannot write rows with zero columns")

var kindInfo = map[ErrorKind]struct {
	name     string
	sentinel error
}{
	KindDecode:         {"decode", ErrDecode},
	KindTooFewRows:     {"too_few_rows", ErrTooFewRows},
	KindTooManyRows:    {"too_many_rows", ErrTooManyRows},
	KindTooFewColumns:  {"too_few_columns", ErrTooFewColumns},
	KindTooManyColumns: {"too_many_columns", ErrTooManyColumns},
	KindNColumns:       {"n_columns", ErrNColumns},
	KindSink:           {"sink", ErrSink},
}

// String returns a snake_case name suitable for log fields and metric labels.
func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel returns the errors.Is target of the kind (nil for unknown kinds).
func (k ErrorKind) Sentinel() error { return kindInfo[k].sentinel }

// notReported marks a ReadError field the kind does not carry.
const notReported = -1

// ReadError describes a failed read.
//
// Field usage per kind (-1 means not reported):
//
//	Decode          Row (index of the failing data row), Err
//	TooFewRows      Expected, Actual
//	TooManyRows     Expected
//	TooFewColumns   Row, Expected, Actual
//	TooManyColumns  Row, Expected
//	NColumns        Row, Expected, Actual
type ReadError struct {
	Kind     ErrorKind
	Row      int   // zero-based data row index (header excluded)
	Expected int   // expected rows or columns
	Actual   int   // observed rows or columns
	Err      error // wrapped source error (Decode only)
}

// Error renders a message specific to the kind.
func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindDecode:
		if e.Row < 0 {
			return fmt.Sprintf("csvarray: decode header: %v", e.Err)
		}
		return fmt.Sprintf("csvarray: decode row %d: %v", e.Row, e.Err)
	case KindTooFewRows:
		return fmt.Sprintf("csvarray: expected %d rows but got %d rows", e.Expected, e.Actual)
	case KindTooManyRows:
		return fmt.Sprintf("csvarray: expected %d rows but got more", e.Expected)
	case KindTooFewColumns:
		return fmt.Sprintf("csvarray: on row %d, expected %d columns but got %d columns", e.Row, e.Expected, e.Actual)
	case KindTooManyColumns:
		return fmt.Sprintf("csvarray: on row %d, expected %d columns but got more", e.Row, e.Expected)
	case KindNColumns:
		return fmt.Sprintf("csvarray: on row %d, expected %d columns but got %d columns", e.Row, e.Expected, e.Actual)
	}
	return fmt.Sprintf("csvarray: read failed (%s)", e.Kind)
}

// Is matches the sentinel of the error's kind.
func (e *ReadError) Is(target error) bool {
	return e != nil && target != nil && target == e.Kind.Sentinel()
}

// Unwrap returns the wrapped source error (nil for shape errors).
func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError describes a sink failure during Write.
// Rows before Row may already be visible in the sink (torn write).
type WriteError struct {
	Row int   // index of the row being written; -1 when the final flush failed
	Err error // sink error
}

// Error renders the failing row (or flush) and the sink error.
func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Row < 0 {
		return fmt.Sprintf("csvarray: flush: %v", e.Err)
	}
	return fmt.Sprintf("csvarray: write row %d: %v", e.Row, e.Err)
}

// Is matches ErrSink.
func (e *WriteError) Is(target error) bool { return e != nil && target == ErrSink }

// Unwrap returns the sink error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldError locates a field that failed to parse. It is the Err of a
// Decode ReadError raised by the field codec (as opposed to the record codec).
type FieldError struct {
	Row    int   // zero-based data row index
	Column int   // zero-based column index
	Err    error // codec error, e.g. *fields.ParseError
}

// Error renders the cell coordinates and the codec error.
func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("field (%d,%d): %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the codec error.
func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf extracts the ErrorKind of a *ReadError or *WriteError anywhere in
// err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var re *ReadError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	var we *WriteError
	if errors.As(err, &we) {
		return KindSink, true
	}
	return 0, false
}

// ---------- constructors (single source of truth for notReported fields) ----------

func decodeError(row int, err error) *ReadError {
	return &ReadError{Kind: KindDecode, Row: row, Expected: notReported, Actual: notReported, Err: err}
}

func tooFewRows(expected, actual int) *ReadError {
	return &ReadError{Kind: KindTooFewRows, Row: notReported, Expected: expected, Actual: actual}
}

func tooManyRows(expected int) *ReadError {
	return &ReadError{Kind: KindTooManyRows, Row: notReported, Expected: expected, Actual: notReported}
}

func tooFewColumns(row, expected, actual int) *ReadError {
	return &ReadError{Kind: KindTooFewColumns, Row: row, Expected: expected, Actual: actual}
}

func tooManyColumns(row, expected int) *ReadError {
	return &ReadError{Kind: KindTooManyColumns, Row: row, Expected: expected, Actual: notReported}
}

func nColumns(row, expected, actual int) *ReadError {
	return &ReadError{Kind: KindNColumns, Row: row, Expected: expected, Actual: actual}
}
