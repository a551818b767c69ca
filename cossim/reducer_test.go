package cossim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrigram/cossim/csr"
)

func matFrom(rows, cols int, rowEntries [][]candidate) *csr.Matrix[float32] {
	indptr := []uint32{0}
	var indices []uint32
	var data []float32
	for _, entries := range rowEntries {
		for _, e := range entries {
			indices = append(indices, e.col)
			data = append(data, float32(e.score))
		}
		indptr = append(indptr, indptr[len(indptr)-1]+uint32(len(entries)))
	}

	return csr.New(indptr, indices, data, rows, cols)
}

func TestReduceBatchesMergesTopN(t *testing.T) {
	batchA := matFrom(1, 6, [][]candidate{{{col: 0, score: 0.9}, {col: 1, score: 0.1}}})
	batchB := matFrom(1, 6, [][]candidate{{{col: 2, score: 0.95}, {col: 3, score: 0.2}}})

	reduced, err := reduceBatches([]*csr.Matrix[float32]{batchA, batchB}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, reduced.NNZ())

	cols := map[uint32]bool{}
	for _, c := range reduced.Indices {
		cols[c] = true
	}
	assert.True(t, cols[0])
	assert.True(t, cols[2])
}

func TestReduceBatchesRejectsRowMismatch(t *testing.T) {
	batchA := matFrom(1, 4, [][]candidate{{{col: 0, score: 0.5}}})
	batchB := matFrom(2, 4, [][]candidate{{{col: 0, score: 0.5}}, {{col: 1, score: 0.3}}})

	_, err := reduceBatches([]*csr.Matrix[float32]{batchA, batchB}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
}

func TestReduceBatchesRejectsEmptyInput(t *testing.T) {
	_, err := reduceBatches([]*csr.Matrix[float32]{}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
}
