// SPDX-License-Identifier: MIT

package fields

import (
	"fmt"
	"strings"
)

// Kind names a supported element type.
type Kind int

// Supported element kinds. The zero value is invalid.
const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// Lookup resolves a case-insensitive type name ("int64", "float32", ...).
// "float" and "double" are accepted as aliases of float64.
func Lookup(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "float", "double":
		return Float64, nil
	}
	for k := Int; k <= Float64; k++ {
		if kindNames[k] == n {
			return k, nil
		}
	}

	return Invalid, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownKind)
}
