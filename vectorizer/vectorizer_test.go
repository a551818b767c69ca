package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizeSingleWordHasOneTrigram(t *testing.T) {
	m := Vectorize([]string{"cat"})
	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.NNZ())
}

func TestVectorizeCasefoldsUnconditionally(t *testing.T) {
	lower := Vectorize([]string{"cat"})
	upper := Vectorize([]string{"CAT"})

	assert.Equal(t, lower.Indices, upper.Indices)
	assert.Equal(t, lower.Data, upper.Data)
}

func TestVectorizeDedupesWithinRow(t *testing.T) {
	// "aaaa" contains the trigram "aaa" twice (positions 0 and 1) but
	// must only be counted once.
	m := Vectorize([]string{"aaaa"})
	assert.Equal(t, 1, m.NNZ())
	assert.Equal(t, []uint16{1}, m.Data)
}

func TestVectorizeSharesTrigramAcrossWordBoundary(t *testing.T) {
	m := Vectorize([]string{"abcd", "abce"})
	require.NoError(t, m.Validate())
	assert.Equal(t, 2, m.Rows)

	row0 := m.Indices[m.Indptr[0]:m.Indptr[1]]
	row1 := m.Indices[m.Indptr[1]:m.Indptr[2]]

	shared := false
	for _, a := range row0 {
		for _, b := range row1 {
			if a == b {
				shared = true
			}
		}
	}
	assert.True(t, shared, "abcd and abce should share the boundary trigram \"abc\"")
}

func TestVectorizeIgnoresNonAlphaRunes(t *testing.T) {
	plain := Vectorize([]string{"cat"})
	withDigits := Vectorize([]string{"c4t"})

	assert.Equal(t, 1, plain.NNZ())
	assert.Equal(t, 0, withDigits.NNZ())
}

func TestVectorizeNormalizedRowsHaveUnitNorm(t *testing.T) {
	m := VectorizeNormalized([]string{"trigram"})
	dense := m.ToDense()

	var sumSq float64
	_, c := dense.Dims()
	for j := 0; j < c; j++ {
		v := dense.At(0, j)
		sumSq += v * v
	}
	assert.InDelta(t, 1.0, sumSq, 1e-6)
}

func TestVectorizeEmptyStringHasNoTrigrams(t *testing.T) {
	m := Vectorize([]string{""})
	assert.Equal(t, 0, m.NNZ())
	require.NoError(t, m.Validate())
}
