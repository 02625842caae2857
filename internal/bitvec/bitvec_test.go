package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Run("MarkAndEliminate", func(t *testing.T) {
		v := New(10)
		assert.Equal(t, 0, v.Count())

		v.MarkCandidates(2, 10)
		assert.Equal(t, 9, v.Count())
		assert.True(t, v.Candidate(2))
		assert.False(t, v.Candidate(0))
		assert.False(t, v.Candidate(1))

		v.Eliminate(4)
		v.Eliminate(4) // eliminating twice is harmless
		assert.False(t, v.Candidate(4))
		assert.Equal(t, 8, v.Count())
	})

	t.Run("GrowBeyondInitialBound", func(t *testing.T) {
		v := New(10)
		v.MarkCandidates(2, 10)

		v.MarkCandidates(11, 20)
		assert.Equal(t, 20, v.Bound())
		assert.True(t, v.Candidate(20))
		assert.Equal(t, 19, v.Count())
	})

	t.Run("Scanning", func(t *testing.T) {
		v := New(20)
		v.MarkCandidates(2, 20)
		for _, n := range []int{4, 6, 8, 9, 10, 12, 14, 15, 16, 18, 20} {
			v.Eliminate(n)
		}

		n, ok := v.NextCandidate(4)
		require.True(t, ok)
		assert.Equal(t, 5, n)

		n, ok = v.NextCandidate(19)
		require.True(t, ok)
		assert.Equal(t, 19, n)

		_, ok = v.NextCandidate(20)
		assert.False(t, ok)

		n, ok = v.PrevCandidate(18)
		require.True(t, ok)
		assert.Equal(t, 17, n)

		n, ok = v.PrevCandidate(100) // clamped to the bound
		require.True(t, ok)
		assert.Equal(t, 19, n)

		_, ok = v.PrevCandidate(1)
		assert.False(t, ok)

		n, ok = v.NextComposite(3)
		require.True(t, ok)
		assert.Equal(t, 4, n)

		n, ok = v.NextComposite(17)
		require.True(t, ok)
		assert.Equal(t, 18, n)
	})

	t.Run("Highest", func(t *testing.T) {
		v := New(30)
		_, ok := v.Highest()
		assert.False(t, ok)

		v.MarkCandidates(2, 30)
		v.Eliminate(30)
		v.Eliminate(28)

		n, ok := v.Highest()
		require.True(t, ok)
		assert.Equal(t, 29, n)
	})
}
