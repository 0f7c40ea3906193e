package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.Strings(50, 2, 6)

	require.Len(t, s, 50)
	for _, str := range s {
		assert.GreaterOrEqual(t, len(str), 2)
		assert.LessOrEqual(t, len(str), 6)
		for _, c := range str {
			assert.Contains(t, alphabet, string(c))
		}
	}
}

func TestStringFixedLength(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.String(0), 0)
	assert.Len(t, rng.String(9), 9)
	for _, s := range rng.Strings(10, 4, 4) {
		assert.Len(t, s, 4)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Strings(5, 3, 8)

	rng.Reset()
	assert.Equal(t, first, rng.Strings(5, 3, 8))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for i := 0; i < 5000; i++ {
		k := rng.Zipf(10, 1.5)
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 10)
		counts[k]++
	}

	// Head dominates the tail.
	assert.Greater(t, counts[0], counts[9])
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestWords(t *testing.T) {
	rng := NewRNG(4711)
	vocab := []string{"a", "b", "c"}

	words := rng.Words(100, vocab, 1.0)

	require.Len(t, words, 100)
	for _, w := range words {
		assert.Contains(t, vocab, w)
	}
}
