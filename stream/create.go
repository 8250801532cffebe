// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Create creates (or truncates) path for writing, compressing by extension.
// StdioPath writes standard output, which Close leaves open.
//
// Close must be called: it finishes the compressed frame, then closes the
// file, and reports every failure of both steps.
func Create(path string, opts ...Option) (io.WriteCloser, error) {
	o := gatherOptions(opts...)

	var (
		dst    io.Writer
		closer io.Closer = nopCloser{}
	)
	if path == StdioPath {
		dst = o.stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("stream: create %s: %w", path, err)
		}
		dst, closer = f, f
	}

	wc, err := newWriter(dst, o.codecFor(path))
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("stream: create %s: %w", path, err)
	}
	wc.closers = append([]io.Closer{closer}, wc.closers...)

	return wc, nil
}

// NewWriter wraps an open stream with compression.
// Closing the result finishes the compressed frame but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	return newWriter(w, c)
}

func newWriter(w io.Writer, c Compression) (*writeCloser, error) {
	wc := &writeCloser{}
	switch c {
	case None:
		wc.Writer = w
	case Gzip:
		zw := gzip.NewWriter(w)
		wc.Writer, wc.closers = zw, []io.Closer{zw}
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		wc.Writer, wc.closers = zw, []io.Closer{zw}
	case S2:
		zw := s2.NewWriter(w)
		wc.Writer, wc.closers = zw, []io.Closer{zw}
	case LZ4:
		zw := lz4.NewWriter(w)
		wc.Writer, wc.closers = zw, []io.Closer{zw}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	return wc, nil
}

type writeCloser struct {
	io.Writer
	closers []io.Closer // outermost (file) first
}

func (w *writeCloser) Close() error { return closeAll(w.closers) }
