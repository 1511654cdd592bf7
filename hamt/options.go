package hamt

import (
	"log/slog"

	"github.com/aglyzov/go-hamt/bitcount"
)

type options struct {
	count  bitcount.Func
	logger *slog.Logger
}

// Option configures a Trie at construction time.
type Option func(*options)

// WithBitCounter sets the population count strategy used to locate children in the
// compacted arrays.
//
// If nil is passed, bitcount.Default is used.
func WithBitCounter(fn bitcount.Func) Option {
	return func(o *options) {
		if fn == nil {
			fn = bitcount.Default
		}
		o.count = fn
	}
}

// WithLogger sets a logger for diagnostic records (hash collisions are logged at the
// Debug level). By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{
		count: bitcount.Default,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
