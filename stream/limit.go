// SPDX-License-Identifier: MIT

package stream

import "io"

// limitReader delivers at most n bytes and fails with ErrLimitExceeded if
// the underlying stream holds more. Unlike io.LimitReader it does not
// silently truncate.
type limitReader struct {
	r io.Reader
	n int64 // bytes still allowed
}

func (l *limitReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.n <= 0 {
		var peek [1]byte
		n, err := l.r.Read(peek[:])
		if n > 0 {
			return 0, ErrLimitExceeded
		}
		return 0, err
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)

	return n, err
}
