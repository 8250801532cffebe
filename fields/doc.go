// SPDX-License-Identifier: MIT

// Package fields converts single CSV fields to and from numeric scalars.
//
// A Codec[T] pairs a Parse and a Format function. Readers in csvarray call
// Parse once per field; writers call Format once per cell. Constructors exist
// for every integer and float kind, sized by the bit width of T, so an int8
// codec rejects "300" with a range error instead of silently truncating.
//
// Floats are formatted with the shortest representation that round-trips
// ('g', -1): 1.0 is written as "1", which keeps integer-valued float data
// byte-identical across a read/write cycle.
package fields
