// SPDX-License-Identifier: MIT

package csvio

import (
	"bufio"
	"io"
)

// Reader parses CSV records from a byte stream, one record per Read call.
// A Reader is not safe for concurrent use.
type Reader struct {
	src  *bufio.Reader
	opts options

	record      []string // last returned record (reused when opts.reuseRecord)
	dataBuf     []byte   // unescaped bytes of the current record
	fieldBounds []int    // [start,end) pairs into dataBuf, one pair per field
	finished    bool     // EOF or a terminal error was reached
	line        int      // current 1-based line
	recordLine  int      // line the current record started on
}

// NewReader creates a Reader that consumes CSV data from r, panicking if r is nil.
func NewReader(r io.Reader, opts ...Option) *Reader {
	if r == nil {
		panic("csvio: reader source cannot be nil")
	}

	return &Reader{
		src:         bufio.NewReaderSize(r, defaultBufferSize),
		opts:        gatherOptions(opts...),
		dataBuf:     make([]byte, 0, 512),
		fieldBounds: make([]int, 0, 32),
		line:        1,
	}
}

// Line returns the 1-based line the next record starts on.
func (r *Reader) Line() int { return r.line }

// Read parses the next record. It returns io.EOF once no records remain.
//
// On ErrFieldCount the record is returned alongside the error, matching
// encoding/csv. Any other error returns a nil record.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.finished {
		return nil, io.EOF
	}

	comma, quote := r.opts.comma, r.opts.quote
	r.dataBuf = r.dataBuf[:0]
	r.fieldBounds = r.fieldBounds[:0]

	inQuotes := false
	sawQuotedField := false
	started := false
	column := 1
	fieldStart := 0

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if err != io.EOF {
				r.finished = true
				return nil, err
			}
			r.finished = true
			// Unterminated quotes at EOF are invalid.
			if inQuotes {
				return nil, r.wrapError(column, ErrUnterminatedQuote)
			}
			// Flush a trailing record if data ended without a newline.
			if started {
				r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
				return r.buildRecord()
			}
			return nil, io.EOF
		}
		if !started {
			r.recordLine = r.line
		}
		started = true

		if inQuotes {
			switch b {
			case quote:
				// Doubled quote inside quotes is an escaped quote.
				next, err := r.src.ReadByte()
				if err == nil && next == quote {
					r.dataBuf = append(r.dataBuf, quote)
					column += 2
					continue
				}
				if err == nil {
					_ = r.src.UnreadByte()
				} else if err != io.EOF {
					r.finished = true
					return nil, err
				}
				inQuotes = false
				column++
			case '\n':
				// Track logical line numbers for embedded newlines.
				r.dataBuf = append(r.dataBuf, b)
				r.line++
				column = 1
			default:
				r.dataBuf = append(r.dataBuf, b)
				column++
			}
			continue
		}

		switch b {
		case comma:
			r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
			fieldStart = len(r.dataBuf)
			sawQuotedField = false
			column++
		case '\n', '\r':
			if b == '\r' {
				// Support CRLF by peeking ahead for '\n' and consuming it together.
				next, err := r.src.ReadByte()
				if err == nil && next != '\n' {
					_ = r.src.UnreadByte()
				} else if err != nil && err != io.EOF {
					r.finished = true
					return nil, err
				}
			}
			r.line++
			if len(r.fieldBounds) == 0 && len(r.dataBuf) == 0 && !sawQuotedField {
				// Empty line: skip it and keep scanning for the next record.
				started = false
				column = 1
				continue
			}
			r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
			return r.buildRecord()
		case quote:
			// A quote starts a quoted field only if nothing was buffered for this field yet.
			if len(r.dataBuf) == fieldStart && !sawQuotedField {
				inQuotes = true
				sawQuotedField = true
				column++
				continue
			}
			return nil, r.wrapError(column, ErrBareQuote)
		default:
			r.dataBuf = append(r.dataBuf, b)
			column++
		}
	}
}

// ReadAll exhausts the reader and returns every remaining record,
// or the first non-EOF error encountered.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if r.opts.reuseRecord {
			record = append([]string(nil), record...)
		}
		records = append(records, record)
	}
}

// buildRecord maps the accumulated fieldBounds onto the data buffer and
// applies width enforcement.
func (r *Reader) buildRecord() ([]string, error) {
	fieldCount := len(r.fieldBounds) / 2
	recordStr := string(r.dataBuf) // one allocation shared by every field

	if r.opts.reuseRecord && cap(r.record) >= fieldCount {
		r.record = r.record[:fieldCount]
	} else {
		r.record = make([]string, fieldCount)
	}
	for i := 0; i < fieldCount; i++ {
		r.record[i] = recordStr[r.fieldBounds[2*i]:r.fieldBounds[2*i+1]]
	}

	switch want := r.opts.fieldsPerRecord; {
	case want == 0:
		r.opts.fieldsPerRecord = fieldCount
	case want > 0 && fieldCount != want:
		return r.record, &ParseError{Line: r.recordLine, Column: 1, Err: ErrFieldCount}
	}

	return r.record, nil
}

// wrapError attaches the current line and supplied column to err.
func (r *Reader) wrapError(column int, err error) error {
	return &ParseError{Line: r.line, Column: column, Err: err}
}
