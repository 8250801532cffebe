// SPDX-License-Identifier: MIT

package stream

import (
	"io"
	"os"
)

// StdioPath names standard input for Open and standard output for Create.
const StdioPath = "-"

const panicNegativeLimit = "stream: WithMaxBytes: limit must be >= 0"

// Option configures Open, Create and NewReader.
type Option func(*options)

type options struct {
	maxBytes    int64 // 0 means unlimited
	compression Compression
	detect      bool
	stdin       io.Reader
	stdout      io.Writer
}

func gatherOptions(opts ...Option) options {
	o := options{detect: true, stdin: os.Stdin, stdout: os.Stdout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxBytes caps the decompressed bytes a reader delivers; 0 disables the cap.
// Panics if n is negative.
func WithMaxBytes(n int64) Option {
	if n < 0 {
		panic(panicNegativeLimit)
	}
	return func(o *options) { o.maxBytes = n }
}

// WithCompression forces codec c instead of detecting it from the path.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.detect = false
	}
}

// WithStdin replaces os.Stdin as the source behind StdioPath.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithStdout replaces os.Stdout as the destination behind StdioPath.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

func (o options) codecFor(path string) Compression {
	if !o.detect {
		return o.compression
	}
	return DetectCompression(path)
}
