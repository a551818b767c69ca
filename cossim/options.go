// Package cossim: functional configuration for AwesomeCossim. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants/vars),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals mirror the teacher's matrix package: deterministic
// behavior (no hidden global state beyond the immutable vocabulary), no
// dead switches (every flag changes observable behavior and is covered
// by tests), Options fields unexported (public APIs consume ...Option).
package cossim

import "runtime"

// DefaultNormalize controls whether AwesomeCossim row-normalizes before
// computing cosine similarity when WithNormalize is not supplied.
const DefaultNormalize = false

// DefaultParallelizeLeft controls whether AwesomeCossim uses the exact
// left-partitioned strategy (true) or the approximate right-partitioned
// one (false) when WithParallelizeLeft is not supplied.
const DefaultParallelizeLeft = true

// Options holds AwesomeCossim's resolved configuration. The zero value is
// not meaningful on its own; use gatherOptions to build one with defaults
// applied.
type Options struct {
	threads         int
	normalize       bool
	parallelizeLeft bool
}

// Option configures an AwesomeCossim call.
type Option func(*Options)

// WithThreads overrides the number of worker goroutines. Defaults to
// runtime.GOMAXPROCS(0) when not supplied. Panics if n <= 0, since a
// non-positive worker count is a programmer error, not a recoverable
// runtime condition.
func WithThreads(n int) Option {
	if n <= 0 {
		panic("cossim: WithThreads requires n > 0")
	}

	return func(o *Options) {
		o.threads = n
	}
}

// WithNormalize toggles row L2-normalization before the dot-product
// kernel runs, switching the vectorizer's output (and the kernel's value
// type) between count mode (uint16) and normalized mode (float32).
func WithNormalize(normalize bool) Option {
	return func(o *Options) {
		o.normalize = normalize
	}
}

// WithParallelizeLeft toggles between the exact left-partitioned strategy
// (true) and the faster, approximate right-partitioned strategy (false).
func WithParallelizeLeft(parallelizeLeft bool) Option {
	return func(o *Options) {
		o.parallelizeLeft = parallelizeLeft
	}
}

// gatherOptions applies defaults and then every supplied Option, in
// order, so later options win over earlier ones.
func gatherOptions(opts ...Option) Options {
	o := Options{
		threads:         runtime.GOMAXPROCS(0),
		normalize:       DefaultNormalize,
		parallelizeLeft: DefaultParallelizeLeft,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
