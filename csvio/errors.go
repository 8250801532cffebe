// SPDX-License-Identifier: MIT

package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("csvio: bare quote in non-quoted field")

	// ErrUnterminatedQuote is returned when a quoted field is not closed before EOF.
	ErrUnterminatedQuote = errors.New("csvio: unterminated quoted field")

	// ErrFieldCount is returned when a record width differs from the enforced width.
	ErrFieldCount = errors.New("csvio: wrong number of fields")

	// ErrNilWriter is returned by methods called on a nil *Writer.
	ErrNilWriter = errors.New("csvio: writer is nil")
)

// ParseError contains location information for CSV parsing errors.
type ParseError struct {
	Line   int   // 1-based line where the error was detected
	Column int   // 1-based byte column within Line
	Err    error // one of the sentinels above
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvio: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
