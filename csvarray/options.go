// SPDX-License-Identifier: MIT

// Package csvarray: functional configuration shared by Reader and Writer.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: constructors panic only on nil arguments (programmer error).
package csvarray

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSkipHeader keeps the first record as data.
	DefaultSkipHeader = false

	// DefaultTrimSpace parses fields verbatim.
	DefaultTrimSpace = false

	// stagingRowsHint sizes the first growth step of the dynamic staging buffer.
	stagingRowsHint = 64
)

const (
	panicNilLogger   = "csvarray: WithLogger: logger must not be nil"
	panicNilObserver = "csvarray: WithObserver: observer must not be nil"
)

// Option mutates internal options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	skipHeader bool
	trimSpace  bool
	logger     *zap.Logger
	observer   Observer
}

func gatherOptions(opts ...Option) options {
	o := options{
		skipHeader: DefaultSkipHeader,
		trimSpace:  DefaultTrimSpace,
		logger:     zap.NewNop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSkipHeader consumes and discards one leading record before row 0.
// Row indices in errors count data rows only. Ignored by Writer.
func WithSkipHeader() Option {
	return func(o *options) { o.skipHeader = true }
}

// WithTrimSpace trims leading and trailing white space from every field
// before it is parsed. Ignored by Writer.
func WithTrimSpace() Option {
	return func(o *options) { o.trimSpace = true }
}

// WithLogger routes outcome logging (debug on success, warn on failure) to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithObserver registers an Observer called once per completed operation.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}
	return func(o *options) { o.observer = obs }
}
