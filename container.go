package sievego

import (
	"fmt"
	"iter"
	"strings"
)

// Integer constrains the element types a prime container can hold. One
// concrete Sieve is instantiated per required width; every width can
// represent the full supported sieve range.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Container is the generic contract satisfied by every prime collection:
// an ordered, random-access, append-only sequence of the primes discovered
// so far. Both Sieve and View implement it.
//
// The only supported mutations are whole-collection growth (ExtendTo) and
// whole-collection reset (Clear). Per-element mutation always fails with
// ErrUnsupported. Iterators and lazy streams are fail-fast: they detect
// structural changes made through another reference and report them as
// ErrConcurrentModification, but nothing is ever blocked or serialized.
type Container[N Integer] interface {
	// Size returns the number of primes in the container.
	Size() int

	// IsEmpty reports whether the container holds no primes.
	IsEmpty() bool

	// Contains reports whether value is a prime known to the container.
	Contains(value N) bool

	// Get returns the prime of the given rank, the 0-based position within
	// the ascending prime sequence.
	Get(rank int) (N, error)

	// GetIfPresent returns the prime of the given rank if the rank is
	// within bounds, or ok=false if the rank is beyond the current size.
	// Negative ranks still fail with ErrRankOutOfRange.
	GetIfPresent(rank int) (value N, ok bool, err error)

	// IndexOf returns the rank of value, or -1 if value is not a prime
	// known to the container.
	IndexOf(value N) int

	// FirstPrime returns the smallest prime in the container.
	FirstPrime() (N, error)

	// LastPrime returns the greatest prime in the container.
	LastPrime() (N, error)

	// Bounds returns the closed interval of values the container addresses.
	Bounds() (lo, hi N)

	// NextPrime returns the least known prime strictly greater than n, if
	// n lies within the container's value bounds.
	NextPrime(n N) (N, bool)

	// PreviousPrime returns the greatest known prime strictly less than n,
	// if n lies within the container's value bounds.
	PreviousPrime(n N) (N, bool)

	// Values returns a fail-fast forward iterator over the primes in
	// ascending order. A structural change mid-iteration yields
	// ErrConcurrentModification as the final element.
	Values() iter.Seq2[N, error]

	// ListIterator returns a fail-fast bidirectional cursor positioned
	// before the element of the given rank. rank may equal Size(), placing
	// the cursor past the end for backward traversal.
	ListIterator(rank int) (*ListIterator[N], error)

	// Composites returns a fail-fast lazy stream of the composite integers
	// in [FirstPrime(), LastPrime()], in ascending order.
	Composites() iter.Seq2[N, error]

	// SubList returns a window over the ranks [fromRank, toRank). The
	// window pins its first and last values at construction; it is never
	// re-validated against later growth of the parent. A window of a
	// window addresses the original underlying sieve.
	SubList(fromRank, toRank int) (Container[N], error)

	// ExtendTo grows the container to cover all integers <= bound.
	ExtendTo(bound N) error

	// Clear resets the container to the trivial empty state.
	Clear() error

	// InsertAt always fails with ErrUnsupported.
	InsertAt(rank int, value N) error

	// RemoveAt always fails with ErrUnsupported.
	RemoveAt(rank int) (N, error)

	// ReplaceAt always fails with ErrUnsupported.
	ReplaceAt(rank int, value N) error
}

// Equal reports whether two containers hold the same primes: same size and
// pairwise-equal elements in iteration order.
func Equal[N Integer](a, b Container[N]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		av, err := a.Get(i)
		if err != nil {
			return false
		}
		bv, err := b.Get(i)
		if err != nil {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}

// hashMultiplier is fixed by the container contract; changing it changes
// observable hash values.
const hashMultiplier = 31

// HashOf returns an order-sensitive hash of the container's elements.
// Equal containers hash equally.
func HashOf[N Integer](c Container[N]) uint64 {
	h := uint64(1)
	for i := 0; i < c.Size(); i++ {
		v, err := c.Get(i)
		if err != nil {
			break
		}
		h = h*hashMultiplier + uint64(v)
	}
	return h
}

// formatElements renders a container: all elements when the size is at most
// three, otherwise the first two and last two separated by an ellipsis.
func formatElements[N Integer](c Container[N]) string {
	size := c.Size()
	switch {
	case size == 0:
		return "[]"
	case size <= 3:
		var sb strings.Builder
		sb.WriteByte('[')
		for i := 0; i < size; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			v, _ := c.Get(i)
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		a, _ := c.Get(0)
		b, _ := c.Get(1)
		y, _ := c.Get(size - 2)
		z, _ := c.Get(size - 1)
		return fmt.Sprintf("[%d, %d, ..., %d, %d]", a, b, y, z)
	}
}
