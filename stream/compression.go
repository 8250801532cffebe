// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Compression identifies a stream codec.
type Compression int

const (
	// None passes bytes through unchanged.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is Zstandard.
	Zstd
	// S2 is the Snappy-compatible S2 stream format.
	S2
	// LZ4 is the LZ4 frame format.
	LZ4
)

var compressionNames = [...]string{
	None: "none",
	Gzip: "gzip",
	Zstd: "zstd",
	S2:   "s2",
	LZ4:  "lz4",
}

var extensions = map[string]Compression{
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".s2":   S2,
	".lz4":  LZ4,
}

// String returns the lowercase codec name.
func (c Compression) String() string {
	if c >= 0 && int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// DetectCompression picks the codec from the extension of path.
// Unknown extensions and "-" select None.
func DetectCompression(path string) Compression {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// ParseCompression resolves a codec name as accepted by String, case-insensitively.
func ParseCompression(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range compressionNames {
		if n == name {
			return Compression(c), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}
