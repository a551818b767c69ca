// Package vocab defines the process-wide trigram vocabulary: the fixed
// mapping from three-letter lowercase-ASCII sequences to dense column
// indices in [0, Size).
package vocab

import "sync"

// Size is the cardinality of the vocabulary: 26 * 26 * 26 lowercase
// three-letter ASCII sequences.
const Size = 26 * 26 * 26

// letters is the alphabet the vocabulary is built over.
const letters = "abcdefghijklmnopqrstuvwxyz"

// Vocabulary is the immutable, process-wide trigram → index table.
//
// Forward lookup (Index) is pure base-26 arithmetic and needs no storage.
// The reverse table (used only by Trigram, mainly for debugging and
// tests) is built lazily behind a sync.Once the first time it's needed,
// since most callers never ask for it.
type Vocabulary struct {
	once    sync.Once
	reverse []string
}

var singleton Vocabulary

// Get returns the process-wide Vocabulary singleton. It is always the
// same value: the vocabulary is rebuilt never and is safe to share,
// unsynchronized, across goroutines once obtained.
func Get() *Vocabulary {
	return &singleton
}

// Size returns the number of columns in the vocabulary.
func (v *Vocabulary) Size() int {
	return Size
}

// letterIndex returns r's position in [0, 26) if r is a lowercase ASCII
// letter, and false otherwise.
func letterIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// Index returns the dense column index of the trigram (a, b, c), and
// false if any of the three runes is not a lowercase ASCII letter (this
// includes the padding sentinel and any uppercase, digit, punctuation, or
// non-ASCII code point — all silently rejected, per the vocabulary's
// closed lowercase-ASCII alphabet).
func (v *Vocabulary) Index(a, b, c rune) (int, bool) {
	ai, ok := letterIndex(a)
	if !ok {
		return 0, false
	}
	bi, ok := letterIndex(b)
	if !ok {
		return 0, false
	}
	ci, ok := letterIndex(c)
	if !ok {
		return 0, false
	}

	return ai*26*26 + bi*26 + ci, true
}

// buildReverse populates the reverse index → trigram table once.
func (v *Vocabulary) buildReverse() {
	v.reverse = make([]string, Size)
	for a := 0; a < 26; a++ {
		for b := 0; b < 26; b++ {
			for c := 0; c < 26; c++ {
				idx := a*26*26 + b*26 + c
				v.reverse[idx] = string([]byte{letters[a], letters[b], letters[c]})
			}
		}
	}
}

// Trigram returns the three-letter string at column index i, and false if
// i is out of [0, Size). Mainly useful for debugging and tests; the hot
// path never needs it.
func (v *Vocabulary) Trigram(i int) (string, bool) {
	if i < 0 || i >= Size {
		return "", false
	}
	v.once.Do(v.buildReverse)

	return v.reverse[i], true
}
