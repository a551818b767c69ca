package csr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build is a small helper constructing the 2x3 matrix
//
//	[1 0 2]
//	[0 3 0]
func build() *Matrix[uint16] {
	indptr := []uint32{0, 2, 3}
	indices := []uint32{0, 2, 1}
	data := []uint16{1, 2, 3}

	return New(indptr, indices, data, 2, 3)
}

func TestNewAndNNZ(t *testing.T) {
	m := build()
	assert.Equal(t, 3, m.NNZ())
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 3, m.Cols)
}

func TestValidateOK(t *testing.T) {
	m := build()
	assert.NoError(t, m.Validate())
}

func TestValidateCatchesIndptrMismatch(t *testing.T) {
	m := build()
	m.Indptr = m.Indptr[:1]
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestValidateCatchesOutOfRangeColumn(t *testing.T) {
	m := build()
	m.Indices[0] = 99
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestValidateCatchesNonMonotonicIndptr(t *testing.T) {
	m := build()
	m.Indptr[1] = 5
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
}

func TestSlice(t *testing.T) {
	m := build()
	s, err := m.Slice(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Rows)
	assert.Equal(t, []uint32{0, 1}, s.Indptr)
	assert.Equal(t, []uint32{1}, s.Indices)
	assert.Equal(t, []uint16{3}, s.Data)
}

func TestSliceOutOfRange(t *testing.T) {
	m := build()
	_, err := m.Slice(1, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTransposeRoundTrip(t *testing.T) {
	m := build()
	tr := m.Transpose()
	assert.Equal(t, m.Cols, tr.Rows)
	assert.Equal(t, m.Rows, tr.Cols)
	assert.Equal(t, m.NNZ(), tr.NNZ())
	require.NoError(t, tr.Validate())

	back := tr.Transpose()
	assert.Equal(t, m.ToDense().RawMatrix().Data, back.ToDense().RawMatrix().Data)
}

func TestNormalizeRowsLeavesZeroRowAlone(t *testing.T) {
	indptr := []uint32{0, 0, 3}
	indices := []uint32{0, 1, 2}
	data := []float32{3, 4, 0}
	m := New(indptr, indices, data, 2, 3)

	NormalizeRows(m)

	assert.Equal(t, []uint32{0, 0, 3}, m.Indptr)

	dense := m.ToDense()
	assert.InDelta(t, 0.6, dense.At(1, 0), 1e-6)
	assert.InDelta(t, 0.8, dense.At(1, 1), 1e-6)
	assert.InDelta(t, 0.0, dense.At(1, 2), 1e-6)
}

func TestToDense(t *testing.T) {
	m := build()
	d := m.ToDense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 2.0, d.At(0, 2))
	assert.Equal(t, 3.0, d.At(1, 1))
	assert.Equal(t, 0.0, d.At(1, 0))
}
