// SPDX-License-Identifier: MIT

package stream

import "errors"

var (
	// ErrLimitExceeded is returned by a capped reader once the stream holds
	// more bytes than the configured maximum.
	ErrLimitExceeded = errors.New("stream: input exceeds byte limit")

	// ErrUnknownCompression is returned for unsupported compression names or values.
	ErrUnknownCompression = errors.New("stream: unknown compression")
)
