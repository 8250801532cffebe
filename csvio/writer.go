// SPDX-License-Identifier: MIT

package csvio

import (
	"bufio"
	"io"
)

// Writer emits CSV records through an internal buffer.
// The first write or flush error is sticky: every later call returns it.
type Writer struct {
	dst  *bufio.Writer
	opts options
	err  error
}

// NewWriter creates a Writer over w, panicking if w is nil.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	if w == nil {
		panic("csvio: writer destination cannot be nil")
	}

	return &Writer{
		dst:  bufio.NewWriterSize(w, defaultBufferSize),
		opts: gatherOptions(opts...),
	}
}

// Write encodes a single record terminated by the configured newline.
// The record slice is not retained.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return ErrNilWriter
	}
	if w.err != nil {
		return w.err
	}

	for i, field := range record {
		if i > 0 {
			if err := w.dst.WriteByte(w.opts.comma); err != nil {
				return w.fail(err)
			}
		}
		if err := w.writeField(field); err != nil {
			return w.fail(err)
		}
	}

	var err error
	if w.opts.crlf {
		_, err = w.dst.WriteString("\r\n")
	} else {
		err = w.dst.WriteByte('\n')
	}
	if err != nil {
		return w.fail(err)
	}

	return nil
}

// WriteAll writes multiple records then flushes, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return ErrNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return ErrNilWriter
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		return w.fail(err)
	}

	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return ErrNilWriter
	}
	return w.err
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

func (w *Writer) writeField(field string) error {
	quote := w.opts.quote
	if !w.opts.alwaysQuote && !fieldNeedsQuote(field, w.opts.comma, quote) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte(quote); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] != quote {
			continue
		}
		// Write the run up to and including the quote, then double it.
		if _, err := w.dst.WriteString(field[start : i+1]); err != nil {
			return err
		}
		if err := w.dst.WriteByte(quote); err != nil {
			return err
		}
		start = i + 1
	}
	if _, err := w.dst.WriteString(field[start:]); err != nil {
		return err
	}

	return w.dst.WriteByte(quote)
}

func fieldNeedsQuote(field string, comma, quote byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote, comma, '\n', '\r':
			return true
		}
	}
	return false
}
