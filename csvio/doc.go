// SPDX-License-Identifier: MIT

// Package csvio is the record codec of gridcsv: a streaming RFC 4180 reader
// that turns bytes into records of string fields, and a buffered writer that
// turns records back into bytes.
//
// Reader handles quoted fields, doubled quotes, embedded newlines, LF, CRLF
// and bare CR terminators, and a final record without a terminator. Empty
// lines are skipped. Errors carry line and column via *ParseError.
//
// Unlike encoding/csv, the Reader does not enforce a record width by default
// (WithFieldsPerRecord(-1)): shape validation belongs to csvarray, which
// reports mismatches with row indices and expected counts.
//
// Writer quotes a field only when it contains the delimiter, the quote
// character, CR or LF (or always, with WithAlwaysQuote), and never retains
// the record slice passed to Write, so callers may reuse it between rows.
package csvio
