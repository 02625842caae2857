package sievego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	t.Run("SamePrimesDifferentPaths", func(t *testing.T) {
		direct, err := New[int](100)
		require.NoError(t, err)

		stepped, err := New[int](7)
		require.NoError(t, err)
		require.NoError(t, stepped.ExtendTo(60))
		require.NoError(t, stepped.ExtendTo(100))

		assert.True(t, Equal[int](direct, stepped))
	})

	t.Run("DifferentSizes", func(t *testing.T) {
		a, err := New[int](30)
		require.NoError(t, err)
		b, err := New[int](100)
		require.NoError(t, err)

		assert.False(t, Equal[int](a, b))
	})

	t.Run("SieveAgainstWindow", func(t *testing.T) {
		s, err := New[int](30)
		require.NoError(t, err)

		whole, err := s.SubList(0, s.Size())
		require.NoError(t, err)
		assert.True(t, Equal[int](s, whole))

		partial, err := s.SubList(0, 5)
		require.NoError(t, err)
		assert.False(t, Equal[int](s, partial))
	})
}

func TestHashOf(t *testing.T) {
	t.Run("EqualContainersHashEqually", func(t *testing.T) {
		a, err := New[int](100)
		require.NoError(t, err)

		b, err := New[int](10)
		require.NoError(t, err)
		require.NoError(t, b.ExtendTo(100))

		assert.Equal(t, HashOf[int](a), HashOf[int](b))
	})

	t.Run("OrderSensitiveAccumulation", func(t *testing.T) {
		s, err := New[int](5) // primes 2, 3, 5
		require.NoError(t, err)

		// ((1*31+2)*31+3)*31+5
		assert.Equal(t, uint64(31811), HashOf[int](s))
	})

	t.Run("EmptyContainer", func(t *testing.T) {
		s, err := New[int](1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), HashOf[int](s))
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		bound int
		want  string
	}{
		{name: "Empty", bound: 1, want: "[]"},
		{name: "One", bound: 2, want: "[2]"},
		{name: "Two", bound: 4, want: "[2, 3]"},
		{name: "Three", bound: 6, want: "[2, 3, 5]"},
		{name: "Ellipsis", bound: 30, want: "[2, 3, ..., 23, 29]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New[int](tt.bound)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}

	t.Run("Window", func(t *testing.T) {
		s, err := New[int](30)
		require.NoError(t, err)

		w, err := s.SubList(2, 8)
		require.NoError(t, err)
		v, ok := w.(*View[int])
		require.True(t, ok)
		assert.Equal(t, "[5, 7, ..., 17, 19]", v.String())

		small, err := s.SubList(2, 4)
		require.NoError(t, err)
		sv, ok := small.(*View[int])
		require.True(t, ok)
		assert.Equal(t, "[5, 7]", sv.String())
	})
}
