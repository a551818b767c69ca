package cossim

import (
	"fmt"

	"github.com/gotrigram/cossim/csr"
)

// reduceBatches merges several row-aligned CSR batches — each already
// the ntop best matches against one slice of the right-hand side — into
// a single Matrix holding the overall ntop best matches per row. This is
// the right-partitioned strategy's second pass: every batch already
// carries at most ntop candidates per row, so the merge only ever
// compares batches.len() * ntop candidates per row, never the full
// right-hand width.
//
// Every batch must report the same row count and the same column count
// (the shared, already-shifted right-hand row index space); a mismatch
// is an invariant violation, not a recoverable input error, since
// batches are produced internally by the driver, never supplied by a
// caller.
func reduceBatches[T csr.Weight](batches []*csr.Matrix[T], ntop int) (*csr.Matrix[T], error) {
	if len(batches) == 0 {
		return nil, fmt.Errorf("cossim: reduceBatches called with no batches: %w", ErrInvariantViolation)
	}

	rows := batches[0].Rows
	cols := batches[0].Cols
	for _, b := range batches[1:] {
		if b.Rows != rows {
			return nil, fmt.Errorf("cossim: batch row count %d != %d: %w", b.Rows, rows, ErrInvariantViolation)
		}
		if b.Cols != cols {
			return nil, fmt.Errorf("cossim: batch col count %d != %d: %w", b.Cols, cols, ErrInvariantViolation)
		}
	}

	indptr := make([]uint32, 0, rows+1)
	indptr = append(indptr, 0)
	var indices []uint32
	var data []T

	for i := 0; i < rows; i++ {
		var candidates []candidate
		for _, b := range batches {
			for jj := b.Indptr[i]; jj < b.Indptr[i+1]; jj++ {
				candidates = append(candidates, candidate{col: b.Indices[jj], score: float64(b.Data[jj])})
			}
		}

		top, err := selectTopN(candidates, ntop)
		if err != nil {
			return nil, err
		}

		for _, c := range top {
			indices = append(indices, c.col)
			data = append(data, T(c.score))
		}
		indptr = append(indptr, indptr[len(indptr)-1]+uint32(len(top)))
	}

	return csr.New(indptr, indices, data, rows, cols), nil
}
