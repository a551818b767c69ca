package cossim

import (
	"fmt"
	"math"
)

// candidate is one (column, score) pair competing for a row's top-N slot.
type candidate struct {
	col   uint32
	score float64
}

// selectTopN returns, unsorted, the n candidates with the highest score,
// using a Lomuto-partition quickselect (partial selection, not a full
// sort): O(len(candidates)) expected time rather than
// O(len(candidates) * log(len(candidates))). If n >= len(candidates),
// candidates is returned unchanged.
//
// A NaN score surfaces ErrNumeric immediately rather than being silently
// placed by an arbitrary comparator outcome — sort.Slice-style
// comparators that don't handle NaN explicitly would otherwise produce a
// non-deterministic ordering.
func selectTopN(candidates []candidate, n int) ([]candidate, error) {
	for _, c := range candidates {
		if math.IsNaN(c.score) {
			return nil, fmt.Errorf("cossim: NaN score at column %d: %w", c.col, ErrNumeric)
		}
	}

	if n >= len(candidates) {
		return candidates, nil
	}
	if n <= 0 {
		return candidates[:0], nil
	}

	quickselect(candidates, n)

	return candidates[:n], nil
}

// quickselect partitions candidates in place so that the k highest-score
// elements occupy candidates[0:k], in no particular order within that
// prefix. It operates on the descending-score ordering (highest scores
// first), mirroring the original engine's
// "select_nth_unstable_by(ntop, |a, b| b.score.cmp(a.score))" selection.
func quickselect(candidates []candidate, k int) {
	lo, hi := 0, len(candidates)-1
	for lo < hi {
		p := lomutoPartition(candidates, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// lomutoPartition partitions candidates[lo:hi+1] around a pivot score,
// using descending order (higher scores sort first), and returns the
// pivot's final index.
func lomutoPartition(candidates []candidate, lo, hi int) int {
	pivot := candidates[hi].score
	i := lo
	for j := lo; j < hi; j++ {
		if candidates[j].score > pivot {
			candidates[i], candidates[j] = candidates[j], candidates[i]
			i++
		}
	}
	candidates[i], candidates[hi] = candidates[hi], candidates[i]

	return i
}
