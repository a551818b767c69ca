package cossim

import (
	"fmt"

	"github.com/gotrigram/cossim/csr"
)

// isCandidate reports whether v is a nonzero score and therefore worth
// keeping as a top-N candidate. Count-mode (unsigned) matrices use a
// plain nonzero test; normalized (floating-point) matrices require a
// strictly positive score, since cosine similarity over non-negative
// vectors is never negative and a zero score carries no information.
func isCandidate[T csr.Weight](v T) bool {
	switch any(v).(type) {
	case float32, float64:
		return v > 0
	default:
		return v != 0
	}
}

// SparseDotTopN computes, for every row of a, the dot product against
// every column of b, keeping only the ntop highest-scoring nonzero
// results per row. b is expected already transposed so that b.Rows ==
// a.Cols (both equal to the shared trigram vocabulary width).
//
// The sweep uses a dense accumulator sized b.Cols per row rather than a
// sparse merge, trading O(b.Cols) memory per row for a branch-free inner
// loop — the standard sparse-dot-top-n shape, viable here because
// b.Cols is the number of right-hand rows handed to this call (the whole
// right-hand side in the left-partitioned strategy, one batch of it in
// the right-partitioned one), not the vocabulary width.
func SparseDotTopN[T csr.Weight](a, b *csr.Matrix[T], ntop int) (*csr.Matrix[T], error) {
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("cossim: a.Cols=%d b.Rows=%d: %w", a.Cols, b.Rows, ErrDimensionMismatch)
	}

	indptr := make([]uint32, 0, a.Rows+1)
	indptr = append(indptr, 0)
	var indices []uint32
	var data []T

	sums := make([]T, b.Cols)
	candidates := make([]candidate, 0, ntop)

	for i := 0; i < a.Rows; i++ {
		for k := range sums {
			sums[k] = 0
		}
		candidates = candidates[:0]

		for jj := a.Indptr[i]; jj < a.Indptr[i+1]; jj++ {
			j := a.Indices[jj]
			v := a.Data[jj]

			for kk := b.Indptr[j]; kk < b.Indptr[j+1]; kk++ {
				k := b.Indices[kk]
				w := b.Data[kk]
				sums[k] += v * w
			}
		}

		for col, score := range sums {
			if isCandidate(score) {
				candidates = append(candidates, candidate{col: uint32(col), score: float64(score)})
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

	return csr.New(indptr, indices, data, a.Rows, b.Cols), nil
}
