package cossim

import "github.com/gotrigram/cossim/csr"

// Result is the flattened, row-major match list AwesomeCossim returns:
// Row[i], Col[i], Sim[i] together describe one match, ascending by Row.
type Result struct {
	Row []int64
	Col []int64
	Sim []float64
}

// toF64 widens a Weight value to float64 regardless of its underlying
// type, so Result.Sim always carries a uniform type independent of
// whether the kernel ran in count mode (uint16) or normalized mode
// (float32).
func toF64[T csr.Weight](v T) float64 {
	return float64(v)
}

// offsetBatch pairs a kernel output batch with the row offset it should
// be assembled at (its first row's index in the final Result).
type offsetBatch[T csr.Weight] struct {
	offset int
	matrix *csr.Matrix[T]
}

// assemble flattens one or more offset batches into a single Result,
// ascending by row. Batches are expected to be non-overlapping and
// collectively covering every row exactly once (the left-partitioned
// strategy's shape); the right-partitioned strategy instead produces a
// single already-reduced batch at offset 0.
func assemble[T csr.Weight](batches []offsetBatch[T]) *Result {
	res := &Result{}

	for _, b := range batches {
		m := b.matrix
		for i := 0; i < m.Rows; i++ {
			row := int64(b.offset + i)
			for jj := m.Indptr[i]; jj < m.Indptr[i+1]; jj++ {
				res.Row = append(res.Row, row)
				res.Col = append(res.Col, int64(m.Indices[jj]))
				res.Sim = append(res.Sim, toF64(m.Data[jj]))
			}
		}
	}

	return res
}
