package csr

import "gonum.org/v1/gonum/mat"

// ToDense materializes m as a gonum dense matrix, widening every value to
// float64 regardless of T. Intended for debugging and test assertions on
// small matrices, not for the hot path.
func (m *Matrix[T]) ToDense() *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for row := 0; row < m.Rows; row++ {
		for idx := m.Indptr[row]; idx < m.Indptr[row+1]; idx++ {
			d.Set(row, int(m.Indices[idx]), float64(m.Data[idx]))
		}
	}

	return d
}
