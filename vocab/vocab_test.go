package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	assert.Equal(t, 17576, Size)
	assert.Equal(t, Size, Get().Size())
}

func TestIndexRoundTrip(t *testing.T) {
	v := Get()

	idx, ok := v.Index('a', 'a', 'a')
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = v.Index('z', 'z', 'z')
	require.True(t, ok)
	assert.Equal(t, Size-1, idx)

	idx, ok = v.Index('c', 'a', 't')
	require.True(t, ok)

	tri, ok := v.Trigram(idx)
	require.True(t, ok)
	assert.Equal(t, "cat", tri)
}

func TestIndexRejectsNonLowercase(t *testing.T) {
	v := Get()

	cases := []struct {
		name    string
		a, b, c rune
	}{
		{"uppercase first", 'A', 'a', 'a'},
		{"digit", '1', 'a', 'a'},
		{"padding sentinel", ' ', 'a', 't'},
		{"space", 'c', ' ', 't'},
		{"non-ascii", 'c', 'a', 'é'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := v.Index(tc.a, tc.b, tc.c)
			assert.False(t, ok)
		})
	}
}

func TestIndexIsBijective(t *testing.T) {
	v := Get()
	seen := make(map[int]bool, Size)
	for a := 0; a < 26; a++ {
		for b := 0; b < 26; b++ {
			for c := 0; c < 26; c++ {
				idx, ok := v.Index(rune('a'+a), rune('a'+b), rune('a'+c))
				require.True(t, ok)
				assert.False(t, seen[idx], "index %d produced twice", idx)
				seen[idx] = true
			}
		}
	}
	assert.Len(t, seen, Size)
}

func TestTrigramOutOfRange(t *testing.T) {
	v := Get()
	_, ok := v.Trigram(-1)
	assert.False(t, ok)
	_, ok = v.Trigram(Size)
	assert.False(t, ok)
}
