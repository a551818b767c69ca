// Package vectorizer turns free-text strings into character-trigram
// frequency rows, stored as a csr.Matrix.
//
// Each input string is casefolded, padded with two sentinel runes on
// each side, and swept with a sliding window of three runes. Only
// windows composed entirely of lowercase ASCII letters are kept — the
// padding sentinels (and any punctuation, digit, or non-ASCII rune) can
// never complete a valid trigram, so every window that touches the
// padding is silently dropped. A trigram is counted at most once per
// row: repeats within the same string collapse to a single nonzero
// entry, matching how the CSR engine's normalization step expects its
// input.
package vectorizer

import (
	"golang.org/x/text/cases"

	"github.com/gotrigram/cossim/csr"
	"github.com/gotrigram/cossim/vocab"
)

// pad is the sentinel rune used to extend each string by two runes on
// either side. It is never a lowercase ASCII letter, so it can never
// itself complete a trigram and is always filtered out.
const pad = ' '

var caseFolder = cases.Fold()

// tokenize casefolds s and returns the set of distinct in-vocabulary
// trigram column indices it contains.
func tokenize(s string, v *vocab.Vocabulary) map[int]struct{} {
	folded := caseFolder.String(s)

	runes := make([]rune, 0, len(folded)+4)
	runes = append(runes, pad, pad)
	runes = append(runes, []rune(folded)...)
	runes = append(runes, pad, pad)

	seen := make(map[int]struct{})
	for i := 0; i+2 < len(runes); i++ {
		idx, ok := v.Index(runes[i], runes[i+1], runes[i+2])
		if !ok {
			continue
		}
		seen[idx] = struct{}{}
	}

	return seen
}

// vectorizeGeneric builds a Matrix[T] from strs, giving every kept
// trigram hit the value one (T(1)), regardless of T's underlying type.
func vectorizeGeneric[T csr.Weight](strs []string) *csr.Matrix[T] {
	v := vocab.Get()

	indptr := make([]uint32, 0, len(strs)+1)
	indptr = append(indptr, 0)
	var indices []uint32
	var data []T

	for _, s := range strs {
		hits := tokenize(s, v)
		for idx := range hits {
			indices = append(indices, uint32(idx))
			data = append(data, T(1))
		}
		indptr = append(indptr, indptr[len(indptr)-1]+uint32(len(hits)))
	}

	return csr.New(indptr, indices, data, len(strs), v.Size())
}

// Vectorize builds the count-mode matrix: one uint16 entry per distinct
// in-vocabulary trigram per row, unnormalized.
func Vectorize(strs []string) *csr.Matrix[uint16] {
	return vectorizeGeneric[uint16](strs)
}

// VectorizeNormalized builds the normalized-mode matrix: the same
// trigram hits as Vectorize, but as float32 and with every row L2
// normalized in place.
func VectorizeNormalized(strs []string) *csr.Matrix[float32] {
	m := vectorizeGeneric[float32](strs)
	csr.NormalizeRows(m)

	return m
}
