// Package csr: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the csr
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions.

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows < 0 or cols < 0).
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrOutOfRange indicates that an index (row, column, or slice bound)
	// is outside valid bounds.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between indptr,
	// indices, and data, or a rows/cols mismatch between operands.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrInvariantViolation marks a structural invariant failure: indptr
	// not monotonic non-decreasing, indptr[0] != 0, or indptr's last entry
	// differing from nnz. A column index outside [0, cols) is reported as
	// ErrOutOfRange.
	ErrInvariantViolation = errors.New("csr: invariant violation")
)
