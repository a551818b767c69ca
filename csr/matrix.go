// Package csr implements a generic compressed-sparse-row matrix: the
// shared container that the vectorizer builds into and the cossim kernel
// reads out of.
//
// A Matrix[T] stores its nonzero entries row-major as three parallel
// slices — Indptr (row boundary offsets, length Rows+1), Indices (column
// index per nonzero), and Data (value per nonzero) — plus the logical
// shape (Rows, Cols). Indptr and Indices are monomorphized to uint32:
// this module's matrices are bounded by the 17 576-wide trigram
// vocabulary, so 32 bits of row/column/nnz addressing is never a limit,
// and fixing the width keeps Transpose's counting sort branch-free. The
// nonzero value type T stays a real type parameter, because it carries
// the one axis that actually changes behavior between the count-mode and
// normalized-mode matrices the vectorizer produces.
package csr

import "fmt"

// Weight is the set of nonzero value types a Matrix may hold: small
// unsigned counts (trigram hit counts) or floating-point weights
// (row-normalized similarities).
type Weight interface {
	~uint16 | ~uint32 | ~float32 | ~float64
}

// Float narrows Weight to the floating-point members, the ones
// NormalizeRows requires.
type Float interface {
	~float32 | ~float64
}

// Matrix is a compressed-sparse-row matrix over nonzero value type T.
//
// The zero Matrix is not valid; construct one with New.
type Matrix[T Weight] struct {
	Indptr  []uint32
	Indices []uint32
	Data    []T
	Rows    int
	Cols    int
}

// New builds a Matrix from its three parallel arrays and logical shape.
// New trusts its inputs are already internally consistent (this is the
// hot construction path, called once per vectorized row-batch); callers
// that need a correctness check should call Validate explicitly.
func New[T Weight](indptr, indices []uint32, data []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		Indptr:  indptr,
		Indices: indices,
		Data:    data,
		Rows:    rows,
		Cols:    cols,
	}
}

// NNZ returns the number of stored nonzero entries.
func (m *Matrix[T]) NNZ() int {
	return len(m.Data)
}

// Slice returns the contiguous row range [start, start+length) as a new,
// independent Matrix sharing no backing storage with m.
func (m *Matrix[T]) Slice(start, length int) (*Matrix[T], error) {
	if start < 0 || length < 0 || start+length > m.Rows {
		return nil, fmt.Errorf("csr: slice [%d,%d) of %d rows: %w", start, start+length, m.Rows, ErrOutOfRange)
	}

	indptr := make([]uint32, 0, length+1)
	indptr = append(indptr, 0)
	var indices []uint32
	var data []T

	for i := start; i < start+length; i++ {
		rowStart := m.Indptr[i]
		rowEnd := m.Indptr[i+1]
		indices = append(indices, m.Indices[rowStart:rowEnd]...)
		data = append(data, m.Data[rowStart:rowEnd]...)
		indptr = append(indptr, indptr[len(indptr)-1]+(rowEnd-rowStart))
	}

	return New(indptr, indices, data, length, m.Cols), nil
}

// Transpose returns the transpose of m, computed with a two-pass counting
// sort: first tally each output row's (i.e. m's column's) nonzero count to
// build the new Indptr via prefix sum, then scatter entries into place
// using a running cursor per output row.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	indptr := make([]uint32, m.Cols+1)
	indices := make([]uint32, m.NNZ())
	data := make([]T, m.NNZ())

	for row := 0; row < m.Rows; row++ {
		for idx := m.Indptr[row]; idx < m.Indptr[row+1]; idx++ {
			col := m.Indices[idx]
			indptr[col]++
		}
	}

	var cumsum uint32
	for col := 0; col <= m.Cols; col++ {
		count := indptr[col]
		indptr[col] = cumsum
		cumsum += count
	}

	cursor := make([]uint32, m.Cols)
	copy(cursor, indptr[:m.Cols])

	for row := 0; row < m.Rows; row++ {
		for idx := m.Indptr[row]; idx < m.Indptr[row+1]; idx++ {
			col := m.Indices[idx]
			dest := cursor[col]
			indices[dest] = uint32(row)
			data[dest] = m.Data[idx]
			cursor[col]++
		}
	}

	return New(indptr, indices, data, m.Cols, m.Rows)
}

// Validate checks the structural invariants New otherwise trusts:
// Indptr has length Rows+1, starts at 0, is non-decreasing, and ends at
// NNZ; every Indices entry is within [0, Cols); Indices and Data have
// equal length.
func (m *Matrix[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("csr: rows=%d cols=%d: %w", m.Rows, m.Cols, ErrBadShape)
	}
	if len(m.Indptr) != m.Rows+1 {
		return fmt.Errorf("csr: indptr length %d, want %d: %w", len(m.Indptr), m.Rows+1, ErrDimensionMismatch)
	}
	if len(m.Indices) != len(m.Data) {
		return fmt.Errorf("csr: indices length %d, data length %d: %w", len(m.Indices), len(m.Data), ErrDimensionMismatch)
	}
	if m.Rows > 0 && m.Indptr[0] != 0 {
		return fmt.Errorf("csr: indptr[0]=%d, want 0: %w", m.Indptr[0], ErrInvariantViolation)
	}
	for i := 1; i < len(m.Indptr); i++ {
		if m.Indptr[i] < m.Indptr[i-1] {
			return fmt.Errorf("csr: indptr not non-decreasing at %d: %w", i, ErrInvariantViolation)
		}
	}
	if len(m.Indptr) > 0 && int(m.Indptr[len(m.Indptr)-1]) != len(m.Data) {
		return fmt.Errorf("csr: indptr[last]=%d, nnz=%d: %w", m.Indptr[len(m.Indptr)-1], len(m.Data), ErrInvariantViolation)
	}
	for _, col := range m.Indices {
		if int(col) >= m.Cols {
			return fmt.Errorf("csr: column index %d out of %d: %w", col, m.Cols, ErrOutOfRange)
		}
	}

	return nil
}

// NormalizeRows L2-normalizes every row of m in place. A row whose norm
// is zero (no nonzero entries) is left untouched rather than divided by
// zero, matching the original CSR engine's behavior.
func NormalizeRows[T Float](m *Matrix[T]) {
	for row := 0; row < m.Rows; row++ {
		start := m.Indptr[row]
		end := m.Indptr[row+1]

		var sumSq T
		for idx := start; idx < end; idx++ {
			sumSq += m.Data[idx] * m.Data[idx]
		}
		if sumSq == 0 {
			continue
		}

		norm := sqrt(sumSq)
		for idx := start; idx < end; idx++ {
			m.Data[idx] /= norm
		}
	}
}
