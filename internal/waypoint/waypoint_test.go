package waypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// first 25 primes, the reference stream for every test.
var primes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

func TestIndex(t *testing.T) {
	t.Run("InitialStride", func(t *testing.T) {
		ix := New()
		assert.Equal(t, 1, ix.Stride())
		assert.Equal(t, 0, ix.Population())

		_, ok := ix.Last()
		assert.False(t, ok)
	})

	t.Run("AnchorInvariant", func(t *testing.T) {
		ix := New()
		for _, p := range primes {
			ix.Record(p)
		}

		// anchors[i] must hold the prime of rank i*stride.
		for i := 0; i < ix.Population(); i++ {
			assert.Equal(t, primes[i*ix.Stride()], ix.Anchor(i))
		}
	})

	t.Run("LocateEveryRank", func(t *testing.T) {
		ix := New()
		for _, p := range primes {
			ix.Record(p)
		}

		for rank := range primes {
			anchor, steps := ix.Locate(rank)
			assert.Equal(t, primes[rank-steps], anchor, "rank %d", rank)
			assert.Less(t, steps, ix.Stride())
		}
	})

	t.Run("GeometricDoubling", func(t *testing.T) {
		ix := New()

		// Recording 4 primes fills the initial capacity and doubles.
		for _, p := range primes[:4] {
			ix.Record(p)
		}
		assert.Equal(t, 2, ix.Stride())
		assert.Equal(t, 2, ix.Population())
		assert.Equal(t, 2, ix.Anchor(0))
		assert.Equal(t, 5, ix.Anchor(1))

		// Doubling keeps only even positions: survivors match the new stride.
		for _, p := range primes[4:] {
			ix.Record(p)
		}
		last, ok := ix.Last()
		require.True(t, ok)
		assert.LessOrEqual(t, last, primes[len(primes)-1])
	})

	t.Run("Reset", func(t *testing.T) {
		ix := New()
		for _, p := range primes {
			ix.Record(p)
		}
		ix.Reset()

		assert.Equal(t, 0, ix.Population())
		assert.Equal(t, 1, ix.Stride())

		ix.Record(2)
		anchor, steps := ix.Locate(0)
		assert.Equal(t, 2, anchor)
		assert.Equal(t, 0, steps)
	})
}
