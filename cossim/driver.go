package cossim

import (
	"fmt"
	"sync"

	"github.com/gotrigram/cossim/csr"
	"github.com/gotrigram/cossim/vectorizer"
)

// offset pairs a batch's starting row with its row count, the unit
// splitOffsets divides a row range into.
type offset struct {
	start int
	len   int
}

// splitOffsets divides [0, n) into at most workers contiguous,
// near-equal chunks. A chunk is never empty; if n < workers, fewer than
// workers chunks are returned rather than padding with empty ones.
func splitOffsets(n, workers int) []offset {
	if workers <= 0 {
		workers = 1
	}
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	base := n / workers
	remainder := n % workers

	offsets := make([]offset, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		length := base
		if i < remainder {
			length++
		}
		offsets = append(offsets, offset{start: start, len: length})
		start += length
	}

	return offsets
}

// errRecorder captures the first error reported by any worker, under a
// mutex, since result slots are written lock-free but an error must be
// visible to the caller even if later workers still run to completion.
type errRecorder struct {
	mu  sync.Mutex
	err error
}

func (r *errRecorder) record(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

func (r *errRecorder) get() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// AwesomeCossim matches every row of left's colLeft column against every
// row of right's colRight column by character-trigram cosine similarity,
// keeping the ntop best matches per left-hand row.
//
// By default the left-hand side is partitioned across worker goroutines
// (the exact strategy); WithParallelizeLeft(false) instead partitions the
// right-hand side and reduces per-batch top-N results afterward (an
// approximate strategy, since the N-th best match is chosen among only
// ntop*threads candidates rather than the true right-hand width, but
// typically faster when the right-hand side is much larger than the
// left).
func AwesomeCossim(left, right Table, colLeft, colRight string, ntop int, opts ...Option) (*Result, error) {
	if ntop <= 0 {
		return nil, fmt.Errorf("cossim: ntop=%d: %w", ntop, ErrInvalidOption)
	}

	o := gatherOptions(opts...)

	sa, err := columnStrings(left, colLeft)
	if err != nil {
		return nil, err
	}
	sb, err := columnStrings(right, colRight)
	if err != nil {
		return nil, err
	}

	if o.normalize {
		return computeNormalized(sa, sb, ntop, o)
	}

	return computeUnnormalized(sa, sb, ntop, o)
}

func computeUnnormalized(sa, sb []string, ntop int, o Options) (*Result, error) {
	a := vectorizer.Vectorize(sa)
	b := vectorizer.Vectorize(sb)
	if o.parallelizeLeft {
		return runLeftPartitioned(a, b, ntop, o.threads)
	}

	return runRightPartitioned(a, b, ntop, o.threads)
}

func computeNormalized(sa, sb []string, ntop int, o Options) (*Result, error) {
	a := vectorizer.VectorizeNormalized(sa)
	b := vectorizer.VectorizeNormalized(sb)
	if o.parallelizeLeft {
		return runLeftPartitioned(a, b, ntop, o.threads)
	}

	return runRightPartitioned(a, b, ntop, o.threads)
}

// runLeftPartitioned splits a's rows across threads workers, transposes
// b once up front (shared, read-only, across every worker), and runs one
// kernel call per batch. Each batch's result is already complete — no
// cross-batch reduction is needed, since every worker computed against
// the full right-hand side.
func runLeftPartitioned[T csr.Weight](a, b *csr.Matrix[T], ntop, threads int) (*Result, error) {
	bT := b.Transpose()
	offsets := splitOffsets(a.Rows, threads)

	batches := make([]offsetBatch[T], len(offsets))
	rec := &errRecorder{}

	var wg sync.WaitGroup
	for i, off := range offsets {
		wg.Add(1)
		go func(i int, off offset) {
			defer wg.Done()

			aBatch, err := a.Slice(off.start, off.len)
			if err != nil {
				rec.record(err)
				return
			}

			c, err := SparseDotTopN(aBatch, bT, ntop)
			if err != nil {
				rec.record(err)
				return
			}

			batches[i] = offsetBatch[T]{offset: off.start, matrix: c}
		}(i, off)
	}
	wg.Wait()

	if err := rec.get(); err != nil {
		return nil, err
	}

	return assemble(batches), nil
}

// runRightPartitioned splits b's rows across threads workers, runs one
// kernel call per batch against the full left-hand side, shifts each
// batch's column indices by its row offset into b (so they address
// b's global row space rather than the batch-local one), and reduces
// the per-batch top-N results down to the overall top-N per row.
func runRightPartitioned[T csr.Weight](a, b *csr.Matrix[T], ntop, threads int) (*Result, error) {
	offsets := splitOffsets(b.Rows, threads)
	if len(offsets) == 0 {
		// An empty right-hand side yields no batches and no matches.
		return &Result{}, nil
	}

	batches := make([]*csr.Matrix[T], len(offsets))
	rec := &errRecorder{}

	var wg sync.WaitGroup
	for i, off := range offsets {
		wg.Add(1)
		go func(i int, off offset) {
			defer wg.Done()

			bBatch, err := b.Slice(off.start, off.len)
			if err != nil {
				rec.record(err)
				return
			}
			bBatchT := bBatch.Transpose()

			c, err := SparseDotTopN(a, bBatchT, ntop)
			if err != nil {
				rec.record(err)
				return
			}

			shiftColumns(c, off.start, b.Rows)
			batches[i] = c
		}(i, off)
	}
	wg.Wait()

	if err := rec.get(); err != nil {
		return nil, err
	}

	reduced, err := reduceBatches(batches, ntop)
	if err != nil {
		return nil, err
	}

	return assemble([]offsetBatch[T]{{offset: 0, matrix: reduced}}), nil
}

// shiftColumns adds delta to every column index of m in place and resets
// m's logical column count to globalCols. Used by runRightPartitioned to
// translate a batch's locally-numbered right-hand row indices (0..batch
// length) into b's global row space before the batches are handed to the
// reducer — the column-index shift the original right-partitioned
// prototype omitted — and to make every batch report the same column
// count regardless of its own (possibly unequal) length.
func shiftColumns[T csr.Weight](m *csr.Matrix[T], delta, globalCols int) {
	for i, col := range m.Indices {
		m.Indices[i] = col + uint32(delta)
	}
	m.Cols = globalCols
}
