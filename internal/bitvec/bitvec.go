package bitvec

import (
	"github.com/bits-and-blooms/bitset"
)

// Vector is a growable per-integer candidate map over [0, Bound()].
//
// Flags move in one direction only: a position becomes a candidate when the
// vector grows over it and is cleared at most once, when a composite is
// eliminated. Positions 0 and 1 are never candidates.
type Vector struct {
	bits  *bitset.BitSet
	bound int
}

// New creates a vector covering [0, bound] with every flag clear.
func New(bound int) *Vector {
	if bound < 1 {
		bound = 1
	}
	return &Vector{
		bits:  bitset.New(uint(bound + 1)),
		bound: bound,
	}
}

// Bound returns the highest position the vector covers.
func (v *Vector) Bound() int {
	return v.bound
}

// MarkCandidates flags every position in [from, to] as candidate and extends
// the vector's coverage to include to. The region must not contain set flags.
func (v *Vector) MarkCandidates(from, to int) {
	if to < from {
		return
	}
	v.bits.FlipRange(uint(from), uint(to+1))
	if to > v.bound {
		v.bound = to
	}
}

// Eliminate clears the flag at n, marking it as known composite.
func (v *Vector) Eliminate(n int) {
	v.bits.Clear(uint(n))
}

// Candidate reports whether n is still flagged as a candidate.
func (v *Vector) Candidate(n int) bool {
	return n >= 0 && v.bits.Test(uint(n))
}

// NextCandidate returns the smallest candidate position >= n.
func (v *Vector) NextCandidate(n int) (int, bool) {
	if n < 0 {
		n = 0
	}
	if n > v.bound {
		return 0, false
	}
	i, ok := v.bits.NextSet(uint(n))
	return int(i), ok
}

// PrevCandidate returns the greatest candidate position <= n.
func (v *Vector) PrevCandidate(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	if n > v.bound {
		n = v.bound
	}
	i, ok := v.bits.PreviousSet(uint(n))
	return int(i), ok
}

// NextComposite returns the smallest non-candidate position >= n that lies
// within the vector's coverage.
func (v *Vector) NextComposite(n int) (int, bool) {
	if n < 0 {
		n = 0
	}
	if n > v.bound {
		return 0, false
	}
	i, ok := v.bits.NextClear(uint(n))
	if !ok || int(i) > v.bound {
		return 0, false
	}
	return int(i), true
}

// Count returns the number of candidate positions.
func (v *Vector) Count() int {
	return int(v.bits.Count())
}

// Highest returns the greatest candidate position, if any.
func (v *Vector) Highest() (int, bool) {
	return v.PrevCandidate(v.bound)
}
