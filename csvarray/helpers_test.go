// SPDX-License-Identifier: MIT
// Package csvarray_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic record sources and sinks with
//     injectable failures and read counters.

package csvarray_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
)

// testInput is the 2×3 fixture used by most scenarios.
const testInput = "1,2,3\n4,5,6\n"

// inMemory returns a csvio reader over content.
func inMemory(content string) *csvio.Reader {
	return csvio.NewReader(strings.NewReader(content))
}

// step is one Read outcome of a scriptedSource.
type step struct {
	rec []string
	err error
}

// scriptedSource yields preset steps then io.EOF, counting Read calls.
type scriptedSource struct {
	steps []step
	reads int
}

func rows(recs ...[]string) *scriptedSource {
	s := &scriptedSource{}
	for _, r := range recs {
		s.steps = append(s.steps, step{rec: r})
	}
	return s
}

func (s *scriptedSource) Read() ([]string, error) {
	i := s.reads
	s.reads++
	if i >= len(s.steps) {
		return nil, io.EOF
	}
	return s.steps[i].rec, s.steps[i].err
}

// failingSink accepts failAt rows then fails; failFlush fails the final flush.
type failingSink struct {
	failAt    int // -1 disables write failures
	failFlush bool
	err       error
	written   [][]string
	flushes   int
}

func (s *failingSink) Write(record []string) error {
	if s.failAt >= 0 && len(s.written) == s.failAt {
		return s.err
	}
	s.written = append(s.written, append([]string(nil), record...))
	return nil
}

func (s *failingSink) Flush() error {
	s.flushes++
	if s.failFlush {
		return s.err
	}
	return nil
}

// observation records one Observer callback.
type observation struct {
	op    string
	mode  csvarray.Mode
	shape dense.Shape
	rows  int
	err   error
}

// recorder is an Observer that keeps every callback.
type recorder struct{ seen []observation }

func (r *recorder) ObserveRead(mode csvarray.Mode, shape dense.Shape, err error) {
	r.seen = append(r.seen, observation{op: "read", mode: mode, shape: shape, err: err})
}

func (r *recorder) ObserveWrite(shape dense.Shape, rows int, err error) {
	r.seen = append(r.seen, observation{op: "write", shape: shape, rows: rows, err: err})
}

// mustDense builds a Dense from rows or fails the test.
func mustDense[T dense.Scalar](t *testing.T, rows [][]T) *dense.Dense[T] {
	t.Helper()
	m, err := dense.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// writeString serializes a with a default csvio writer and returns the text.
func writeString[T dense.Scalar](t *testing.T, a *dense.Dense[T]) string {
	t.Helper()
	var buf bytes.Buffer
	w := csvio.NewWriter(&buf)
	if err := csvarray.NewWriter(w, fields.For[T]()).Write(a); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.String()
}
