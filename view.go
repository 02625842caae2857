package sievego

import "iter"

// View is a bounded window over a Sieve, addressed by a fixed pair of
// prime-value bounds pinned at construction. All queries delegate to the
// parent sieve and are filtered to the window; a View is never re-validated
// against later growth of its parent.
//
// Views cannot be mutated: ExtendTo and Clear fail with ErrUnsupported.
// A View of a View always windows the original underlying sieve.
type View[N Integer] struct {
	parent   *Sieve[N]
	first    N
	last     N
	fromRank int
	toRank   int
}

// inBounds reports whether n lies within the window's value bounds.
func (v *View[N]) inBounds(n N) bool {
	return n >= v.first && n <= v.last
}

// Size returns the number of primes in the window.
func (v *View[N]) Size() int {
	return v.toRank - v.fromRank
}

// IsEmpty always reports false: empty windows cannot be constructed.
func (v *View[N]) IsEmpty() bool {
	return false
}

// Contains reports whether value is a prime within the window.
func (v *View[N]) Contains(value N) bool {
	return v.parent.Contains(value) && v.inBounds(value)
}

// Get returns the prime of the given window-relative rank.
func (v *View[N]) Get(rank int) (N, error) {
	if rank < 0 || rank >= v.Size() {
		return 0, &ErrRankOutOfRange{Rank: rank, Size: v.Size()}
	}
	return v.parent.Get(rank + v.fromRank)
}

// GetIfPresent returns the prime of the given window-relative rank, or
// ok=false if rank is at or beyond the window size.
func (v *View[N]) GetIfPresent(rank int) (N, bool, error) {
	if rank < 0 {
		return 0, false, &ErrRankOutOfRange{Rank: rank, Size: v.Size()}
	}
	if rank >= v.Size() {
		return 0, false, nil
	}
	value, err := v.Get(rank)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// IndexOf returns the window-relative rank of value, or -1 if value is not
// a prime within the window.
func (v *View[N]) IndexOf(value N) int {
	idx := v.parent.IndexOf(value)
	if idx >= v.fromRank && idx < v.toRank {
		return idx - v.fromRank
	}
	return -1
}

// FirstPrime returns the window's pinned first value.
func (v *View[N]) FirstPrime() (N, error) {
	return v.first, nil
}

// LastPrime returns the window's pinned last value.
func (v *View[N]) LastPrime() (N, error) {
	return v.last, nil
}

// Bounds returns the window's pinned value bounds.
func (v *View[N]) Bounds() (N, N) {
	return v.first, v.last
}

// NextPrime returns the least prime in the window strictly greater than n,
// if n lies within the window's value bounds.
func (v *View[N]) NextPrime(n N) (N, bool) {
	if !v.inBounds(n) {
		return 0, false
	}
	p, ok := v.parent.NextPrime(n)
	if !ok || !v.inBounds(p) {
		return 0, false
	}
	return p, true
}

// PreviousPrime returns the greatest prime in the window strictly less than
// n, if n lies within the window's value bounds.
func (v *View[N]) PreviousPrime(n N) (N, bool) {
	if !v.inBounds(n) {
		return 0, false
	}
	p, ok := v.parent.PreviousPrime(n)
	if !ok || !v.inBounds(p) {
		return 0, false
	}
	return p, true
}

// Values returns a fail-fast forward iterator over the window's primes,
// walking values through the parent's next-prime query.
func (v *View[N]) Values() iter.Seq2[N, error] {
	expected := v.parent.generation
	return func(yield func(N, error) bool) {
		cur, ok := v.first, true
		for {
			// Generation first: after a parent mutation the next-prime
			// query runs against replaced state and must not be allowed
			// to end the stream silently.
			if v.parent.generation != expected {
				yield(0, ErrConcurrentModification)
				return
			}
			if !ok {
				return
			}
			if !yield(cur, nil) {
				return
			}
			cur, ok = v.NextPrime(cur)
		}
	}
}

// ListIterator returns a fail-fast bidirectional cursor over the window,
// positioned before the element of the given window-relative rank.
func (v *View[N]) ListIterator(rank int) (*ListIterator[N], error) {
	return newListIterator(v.parent, v.fromRank, v.toRank, rank)
}

// Composites returns the parent's composite stream filtered to the window's
// value bounds.
func (v *View[N]) Composites() iter.Seq2[N, error] {
	seq := v.parent.Composites()
	return func(yield func(N, error) bool) {
		for n, err := range seq {
			if err != nil {
				yield(0, err)
				return
			}
			if n < v.first {
				continue
			}
			if n > v.last {
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}

// SubList returns another window of the ORIGINAL sieve covering the given
// window-relative rank range; windows never nest.
func (v *View[N]) SubList(fromRank, toRank int) (Container[N], error) {
	size := v.Size()
	if fromRank < 0 || toRank > size || fromRank >= toRank {
		return nil, &ErrInvalidRange{From: fromRank, To: toRank, Size: size}
	}
	return v.parent.window(fromRank+v.fromRank, toRank+v.fromRank)
}

// ExtendTo always fails with ErrUnsupported: windows cannot be mutated.
func (v *View[N]) ExtendTo(N) error {
	return ErrUnsupported
}

// Clear always fails with ErrUnsupported: windows cannot be mutated.
func (v *View[N]) Clear() error {
	return ErrUnsupported
}

// InsertAt always fails with ErrUnsupported.
func (v *View[N]) InsertAt(int, N) error {
	return ErrUnsupported
}

// RemoveAt always fails with ErrUnsupported.
func (v *View[N]) RemoveAt(int) (N, error) {
	return 0, ErrUnsupported
}

// ReplaceAt always fails with ErrUnsupported.
func (v *View[N]) ReplaceAt(int, N) error {
	return ErrUnsupported
}

// String renders the window's primes.
func (v *View[N]) String() string {
	return formatElements[N](v)
}
