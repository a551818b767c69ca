// Package cossim: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// cossim package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is.

package cossim

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cossim: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrSchema is returned when a requested column is missing from a
	// Table, or a Table row index is out of range.
	ErrSchema = errors.New("cossim: schema error")

	// ErrDimensionMismatch is returned when the left and right vectorized
	// matrices are not compatible for the dot-product kernel (column
	// counts must agree: both are the trigram vocabulary width).
	ErrDimensionMismatch = errors.New("cossim: dimension mismatch")

	// ErrNumeric is returned when a NaN is encountered while comparing
	// candidate scores during partial selection; a NaN is never silently
	// ordered.
	ErrNumeric = errors.New("cossim: numeric error")

	// ErrInvariantViolation marks a structural invariant failure in an
	// intermediate CSR batch (e.g. mismatched row counts across batches
	// handed to the reducer).
	ErrInvariantViolation = errors.New("cossim: invariant violation")

	// ErrInvalidOption is returned when a host-level configuration value
	// (ntop) is rejected before any work begins. A non-positive thread
	// count is not reported through it: WithThreads panics instead.
	ErrInvalidOption = errors.New("cossim: invalid option")
)
