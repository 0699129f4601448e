package bitset

import (
	"io"
	"log/slog"
)

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a BitSet at construction time.
type Option func(*options)

// WithLogger sets the logger used for debug events (page allocation, clears).
//
// If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPageCapacity pre-allocates the page table for keys below n*8192.
func WithPageCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}
