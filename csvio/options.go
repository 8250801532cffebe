// SPDX-License-Identifier: MIT

package csvio

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultComma is the field delimiter.
	DefaultComma = ','

	// DefaultQuote is the quote character.
	DefaultQuote = '"'

	// DefaultFieldsPerRecord disables width enforcement in Reader.
	DefaultFieldsPerRecord = -1

	defaultBufferSize = 4 << 10
)

const (
	panicDelimiterInvalid = "csvio: delimiter and quote must differ and must not be CR or LF"
)

// Option configures a Reader or a Writer. Options that do not apply to the
// receiving side are ignored (WithCRLF on a Reader, WithReuseRecord on a Writer).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	comma           byte
	quote           byte
	reuseRecord     bool
	fieldsPerRecord int
	crlf            bool
	alwaysQuote     bool
}

func defaultOptions() options {
	return options{
		comma:           DefaultComma,
		quote:           DefaultQuote,
		fieldsPerRecord: DefaultFieldsPerRecord,
	}
}

// gatherOptions applies opts over the defaults and enforces delimiter invariants.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.comma == o.quote || isLineBreak(o.comma) || isLineBreak(o.quote) {
		panic(panicDelimiterInvalid)
	}

	return o
}

func isLineBreak(b byte) bool { return b == '\n' || b == '\r' }

// WithComma sets the field delimiter.
func WithComma(c byte) Option {
	return func(o *options) { o.comma = c }
}

// WithQuote sets the quote character.
func WithQuote(q byte) Option {
	return func(o *options) { o.quote = q }
}

// WithReuseRecord lets Reader.Read reuse the backing array of the returned
// slice between calls. Field strings themselves are never shared.
func WithReuseRecord() Option {
	return func(o *options) { o.reuseRecord = true }
}

// WithFieldsPerRecord sets Reader width enforcement:
// n < 0 disables it, n == 0 captures the width of the first record,
// n > 0 requires exactly n fields.
func WithFieldsPerRecord(n int) Option {
	return func(o *options) { o.fieldsPerRecord = n }
}

// WithCRLF makes the Writer terminate records with \r\n.
func WithCRLF() Option {
	return func(o *options) { o.crlf = true }
}

// WithAlwaysQuote makes the Writer quote every field.
func WithAlwaysQuote() Option {
	return func(o *options) { o.alwaysQuote = true }
}
