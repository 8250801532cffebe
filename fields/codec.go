// SPDX-License-Identifier: MIT

package fields

import (
	"math"
	"reflect"
	"strconv"

	"github.com/katalvlaran/gridcsv/dense"
)

// Codec converts between one CSV field and one scalar of type T.
type Codec[T dense.Scalar] struct {
	Kind   Kind                    // element kind of T
	Parse  func(string) (T, error) // field text -> scalar; errors are *ParseError
	Format func(T) string          // scalar -> field text
}

// For returns the base-10 codec of T, sized by the bit width of T.
//
// Implementation:
//   - Stage 1: classify T by its reflect kind (named types use their underlying kind).
//   - Stage 2: pick strconv.ParseInt/ParseUint/ParseFloat with bitSize = bits(T),
//     so out-of-range text fails instead of truncating.
//
// Complexity: O(1) to build; O(len(field)) per call.
func For[T dense.Scalar]() Codec[T] {
	typ := reflect.TypeFor[T]()
	kind := kindOfReflect(typ.Kind())
	bits := typ.Bits()

	c := Codec[T]{Kind: kind}
	switch {
	case kind.IsFloat():
		c.Parse = func(s string) (T, error) {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return 0, &ParseError{Value: s, Kind: kind, Err: err}
			}
			return T(f), nil
		}
		c.Format = func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) }
	case kind >= Int && kind <= Int64:
		c.Parse = func(s string) (T, error) {
			i, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return 0, &ParseError{Value: s, Kind: kind, Err: err}
			}
			return T(i), nil
		}
		c.Format = func(v T) string { return strconv.FormatInt(int64(v), 10) }
	default:
		c.Parse = func(s string) (T, error) {
			u, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return 0, &ParseError{Value: s, Kind: kind, Err: err}
			}
			return T(u), nil
		}
		c.Format = func(v T) string { return strconv.FormatUint(uint64(v), 10) }
	}

	return c
}

// Finite wraps a codec so that parsed NaN and ±Inf are rejected with ErrNaNInf.
// Integer codecs are returned unchanged since they cannot hold such values.
func Finite[T dense.Scalar](c Codec[T]) Codec[T] {
	if !c.Kind.IsFloat() {
		return c
	}
	parse := c.Parse
	kind := c.Kind
	c.Parse = func(s string) (T, error) {
		v, err := parse(s)
		if err != nil {
			return v, err
		}
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &ParseError{Value: s, Kind: kind, Err: ErrNaNInf}
		}
		return v, nil
	}

	return c
}

// kindOfReflect maps a reflect.Kind to the package Kind.
func kindOfReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint, reflect.Uintptr:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	default:
		return Float64
	}
}
