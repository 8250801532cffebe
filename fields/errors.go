// SPDX-License-Identifier: MIT

package fields

import (
	"errors"
	"fmt"
)

var (
	// ErrNaNInf signals a NaN or ±Inf value rejected by a Finite codec.
	ErrNaNInf = errors.New("fields: NaN or Inf encountered")

	// ErrUnknownKind is returned by Lookup for an unsupported element type name.
	ErrUnknownKind = errors.New("fields: unknown element kind")
)

// ParseError records the field text and target kind of a failed conversion.
type ParseError struct {
	Value string // raw field text
	Kind  Kind   // target element kind
	Err   error  // strconv error or ErrNaNInf
}

// Error formats the parse error with the quoted field value and target kind.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fields: cannot parse %q as %s: %v", e.Value, e.Kind, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
