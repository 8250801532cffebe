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
	"go.uber.org/multierr"
)

// Open opens path for reading, decompressing by extension. StdioPath reads
// standard input, which Close leaves open.
//
// Errors:
//   - the os.Open error, wrapped with the path.
//   - codec header errors (gzip) wrapped with the path.
//   - ErrLimitExceeded from Read once WithMaxBytes is exceeded.
func Open(path string, opts ...Option) (io.ReadCloser, error) {
	o := gatherOptions(opts...)

	var (
		src    io.Reader
		closer io.Closer = nopCloser{}
	)
	if path == StdioPath {
		src = o.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("stream: open %s: %w", path, err)
		}
		src, closer = f, f
	}

	rc, err := newReader(src, o.codecFor(path), o)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("stream: open %s: %w", path, err), closer.Close())
	}
	rc.closers = append([]io.Closer{closer}, rc.closers...)

	return rc, nil
}

// NewReader wraps an open stream with decompression and the byte cap.
// Closing the result releases the decoder but not r.
func NewReader(r io.Reader, c Compression, opts ...Option) (io.ReadCloser, error) {
	return newReader(r, c, gatherOptions(opts...))
}

func newReader(r io.Reader, c Compression, o options) (*readCloser, error) {
	rc := &readCloser{}
	switch c {
	case None:
		rc.Reader = r
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		rc.Reader = zr
		rc.closers = append(rc.closers, zr)
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		dec := zr.IOReadCloser()
		rc.Reader = dec
		rc.closers = append(rc.closers, dec)
	case S2:
		rc.Reader = s2.NewReader(r)
	case LZ4:
		rc.Reader = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if o.maxBytes > 0 {
		rc.Reader = &limitReader{r: rc.Reader, n: o.maxBytes}
	}

	return rc, nil
}

// readCloser closes its layers innermost first.
type readCloser struct {
	io.Reader
	closers []io.Closer // outermost (file) first
}

func (r *readCloser) Close() error { return closeAll(r.closers) }

// closeAll closes cs in reverse order and combines every failure.
func closeAll(cs []io.Closer) error {
	var err error
	for i := len(cs) - 1; i >= 0; i-- {
		err = multierr.Append(err, cs[i].Close())
	}

	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
