package sievego

import (
	"iter"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/sievego/internal/bitvec"
	"github.com/hupe1980/sievego/internal/waypoint"
)

const (
	// FirstPrime is the smallest prime and the lower value bound of every
	// non-empty sieve.
	FirstPrime = 2

	// DefaultBound is the upper bound used by NewDefault.
	DefaultBound = 1 << 14

	// MaxBound is the largest integer a sieve can be extended to cover.
	MaxBound = 1 << 30
)

// Compile-time interface conformance checks.
var (
	_ Container[int] = (*Sieve[int])(nil)
	_ Container[int] = (*View[int])(nil)
)

// Sieve is a growable, queryable ordered collection of prime numbers built
// on an incremental Sieve of Eratosthenes. It holds every prime up to its
// current upper bound and can be extended any number of times without
// re-sieving covered ground.
//
// A Sieve is not safe for concurrent use. Mutation through one reference
// while another iterates is detected after the fact (fail-fast), never
// prevented. Read-only queries may run concurrently with each other.
type Sieve[N Integer] struct {
	vec        *bitvec.Vector
	wp         *waypoint.Index
	upperBound int
	generation uint64
	logger     *Logger
	metrics    MetricsCollector
}

// New creates a sieve covering all primes <= bound. bound must be positive
// and at most MaxBound; it may itself be prime or composite.
func New[N Integer](bound N, optFns ...Option) (*Sieve[N], error) {
	b, err := checkBound(bound)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	s := &Sieve[N]{
		vec:        bitvec.New(b),
		wp:         waypoint.New(),
		upperBound: 1,
		logger:     o.logger,
		metrics:    o.metricsCollector,
	}

	s.grow(b)

	return s, nil
}

// NewDefault creates a sieve covering all primes <= DefaultBound.
func NewDefault[N Integer](optFns ...Option) *Sieve[N] {
	s, err := New[N](DefaultBound, optFns...)
	if err != nil {
		// DefaultBound is always a valid bound.
		panic(err)
	}
	return s
}

// checkBound validates and narrows a requested bound.
func checkBound[N Integer](bound N) (int, error) {
	if bound < 1 {
		return 0, ErrInvalidBound
	}
	if uint64(bound) > MaxBound {
		return 0, &ErrCapacityExceeded{Bound: uint64(bound), Max: MaxBound}
	}
	return int(bound), nil
}

// toInt narrows a value for vector addressing. ok is false when the value
// cannot be a sieved integer at all.
func toInt[N Integer](value N) (int, bool) {
	if value < 1 {
		return 0, false
	}
	if uint64(value) > MaxBound {
		return 0, false
	}
	return int(value), true
}

func isqrt(n int) int {
	return int(math.Sqrt(float64(n)))
}

// ExtendTo grows the sieve to cover all integers <= bound. The work is
// proportional to the newly covered range and runs to completion
// synchronously.
//
// Extending to a bound at or below the current upper bound leaves the sieve
// unchanged and does NOT count as a structural change: live iterators stay
// valid. Only actual growth (and Clear) advances the generation observed by
// fail-fast iterators.
func (s *Sieve[N]) ExtendTo(bound N) error {
	start := time.Now()

	b, err := checkBound(bound)
	if err != nil {
		s.metrics.RecordExtend(0, time.Since(start), err)
		s.logger.Error("extend failed", "error", err)
		return err
	}

	if b <= s.upperBound {
		s.metrics.RecordExtend(0, time.Since(start), nil)
		s.logger.Debug("extend is a no-op", "bound", b, "upper_bound", s.upperBound)
		return nil
	}

	before := s.Size()
	s.grow(b)
	s.generation++

	newPrimes := s.Size() - before
	s.metrics.RecordExtend(newPrimes, time.Since(start), nil)
	s.logger.LogExtend(uint64(b), newPrimes, nil)

	return nil
}

// grow performs the incremental sieve step: the region (upperBound, bound]
// starts all-candidate, composites are eliminated by every relevant prime,
// and each newly discovered prime is recorded into the waypoint index.
func (s *Sieve[N]) grow(bound int) {
	if bound <= s.upperBound {
		return
	}

	limit := isqrt(bound)
	s.vec.MarkCandidates(s.upperBound+1, bound)

	for p, ok := FirstPrime, true; ok; p, ok = s.vec.NextCandidate(p + 1) {
		if p <= limit {
			// Eliminate multiples of p in the new region only: start at
			// whichever is larger, p*p or the first multiple of p above
			// the old upper bound.
			start := p * p
			if m := s.upperBound + p - s.upperBound%p; m > start {
				start = m
			}
			for i := start; i <= bound; i += p {
				s.vec.Eliminate(i)
			}
		}
		if p > s.upperBound {
			s.wp.Record(p)
		}
	}

	s.upperBound = bound
}

// Clear resets the sieve to the trivial empty state: upper bound 1, no
// primes, a fresh waypoint index. Clear is a structural change and
// invalidates live iterators.
func (s *Sieve[N]) Clear() error {
	start := time.Now()

	s.vec = bitvec.New(1)
	s.wp.Reset()
	s.upperBound = 1
	s.generation++

	s.metrics.RecordClear(time.Since(start))
	s.logger.LogClear()

	return nil
}

// Size returns the number of primes discovered so far.
func (s *Sieve[N]) Size() int {
	return s.vec.Count()
}

// IsEmpty reports whether no primes have been discovered.
func (s *Sieve[N]) IsEmpty() bool {
	return s.upperBound < FirstPrime
}

// Contains reports whether value is a prime within the sieved interval.
// Values outside the sieved interval are reported as not contained, never
// primality-tested.
func (s *Sieve[N]) Contains(value N) bool {
	p, ok := toInt(value)
	if !ok || p > s.upperBound {
		return false
	}
	return s.vec.Candidate(p)
}

// Get returns the prime of the given rank. The waypoint index supplies a
// nearby anchor; the residual distance is walked candidate by candidate.
func (s *Sieve[N]) Get(rank int) (N, error) {
	size := s.Size()
	if rank < 0 || rank >= size {
		return 0, &ErrRankOutOfRange{Rank: rank, Size: size}
	}

	p, steps := s.wp.Locate(rank)
	for i := 0; i < steps; i++ {
		p, _ = s.vec.NextCandidate(p + 1)
	}

	return N(p), nil
}

// GetIfPresent returns the prime of the given rank, or ok=false if rank is
// at or beyond the current size. Negative ranks fail.
func (s *Sieve[N]) GetIfPresent(rank int) (N, bool, error) {
	if rank < 0 {
		return 0, false, &ErrRankOutOfRange{Rank: rank, Size: s.Size()}
	}
	if rank >= s.Size() {
		return 0, false, nil
	}
	v, err := s.Get(rank)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// IndexOf returns the rank of value, or -1 if value is not a known prime.
func (s *Sieve[N]) IndexOf(value N) int {
	if !s.Contains(value) {
		return -1
	}
	p, _ := toInt(value)

	var rank, from int
	if last, ok := s.wp.Last(); ok && p > last {
		// Beyond the last anchor: scan backward from the last known prime.
		from, _ = s.vec.Highest()
		rank = s.Size() - 1
	} else {
		// Find the first anchor at or above the value, then walk back.
		for i := 0; i < s.wp.Population(); i++ {
			if a := s.wp.Anchor(i); a >= p {
				rank = i * s.wp.Stride()
				from = a
				break
			}
		}
	}

	for n := from; n > p; rank-- {
		n, _ = s.vec.PrevCandidate(n - 1)
	}

	return rank
}

// FirstPrime returns the smallest prime in the sieve.
func (s *Sieve[N]) FirstPrime() (N, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySieve
	}
	return N(FirstPrime), nil
}

// LastPrime returns the greatest prime in the sieve.
func (s *Sieve[N]) LastPrime() (N, error) {
	p, ok := s.vec.Highest()
	if !ok {
		return 0, ErrEmptySieve
	}
	return N(p), nil
}

// Bounds returns the closed interval of positive integers sieved so far.
func (s *Sieve[N]) Bounds() (N, N) {
	return 1, N(s.upperBound)
}

// NextPrime returns the least known prime strictly greater than n, or
// ok=false if n is at or beyond the sieved upper bound.
func (s *Sieve[N]) NextPrime(n N) (N, bool) {
	start := 0
	if n > 0 {
		w, ok := toInt(n)
		if !ok || w >= s.upperBound {
			return 0, false
		}
		start = w
	}
	p, ok := s.vec.NextCandidate(start + 1)
	if !ok {
		return 0, false
	}
	return N(p), true
}

// PreviousPrime returns the greatest known prime strictly less than n, or
// ok=false if n lies outside the sieved interval.
func (s *Sieve[N]) PreviousPrime(n N) (N, bool) {
	w, ok := toInt(n)
	if !ok || w > s.upperBound {
		return 0, false
	}
	p, ok := s.vec.PrevCandidate(w - 1)
	if !ok {
		return 0, false
	}
	return N(p), true
}

// Values returns a fail-fast forward iterator over the primes in ascending
// order. The generation is captured when Values is called; a structural
// change before or during iteration yields ErrConcurrentModification.
func (s *Sieve[N]) Values() iter.Seq2[N, error] {
	expected := s.generation
	return func(yield func(N, error) bool) {
		p, ok := s.vec.NextCandidate(FirstPrime)
		for {
			// The generation must be compared before the scan result is
			// trusted: after a structural change the vector is replaced
			// and its "no more candidates" answer would end the stream
			// silently.
			if s.generation != expected {
				yield(0, ErrConcurrentModification)
				return
			}
			if !ok {
				return
			}
			if !yield(N(p), nil) {
				return
			}
			p, ok = s.vec.NextCandidate(p + 1)
		}
	}
}

// ListIterator returns a fail-fast bidirectional cursor positioned before
// the element of the given rank. rank may equal Size().
func (s *Sieve[N]) ListIterator(rank int) (*ListIterator[N], error) {
	return newListIterator(s, 0, s.Size(), rank)
}

// Composites returns a lazy ascending stream of the composite integers in
// [FirstPrime(), LastPrime()]. The stream is fail-fast.
func (s *Sieve[N]) Composites() iter.Seq2[N, error] {
	expected := s.generation
	return func(yield func(N, error) bool) {
		if s.generation != expected {
			yield(0, ErrConcurrentModification)
			return
		}
		last, ok := s.vec.Highest()
		if !ok {
			return
		}
		n, ok := s.vec.NextComposite(FirstPrime + 1)
		for {
			// Same ordering as Values: generation first, scan result second.
			if s.generation != expected {
				yield(0, ErrConcurrentModification)
				return
			}
			if !ok || n > last {
				return
			}
			if !yield(N(n), nil) {
				return
			}
			n, ok = s.vec.NextComposite(n + 1)
		}
	}
}

// SubList returns a window over the ranks [fromRank, toRank), pinning the
// window's first and last values at construction.
func (s *Sieve[N]) SubList(fromRank, toRank int) (Container[N], error) {
	return s.window(fromRank, toRank)
}

func (s *Sieve[N]) window(fromRank, toRank int) (*View[N], error) {
	size := s.Size()
	if fromRank < 0 || toRank > size || fromRank >= toRank {
		return nil, &ErrInvalidRange{From: fromRank, To: toRank, Size: size}
	}

	first, err := s.Get(fromRank)
	if err != nil {
		return nil, err
	}
	last := first
	if toRank-fromRank > 1 {
		if last, err = s.Get(toRank - 1); err != nil {
			return nil, err
		}
	}

	return &View[N]{
		parent:   s,
		first:    first,
		last:     last,
		fromRank: fromRank,
		toRank:   toRank,
	}, nil
}

// Bitmap exports the current prime set as a Roaring bitmap, for use with
// bitmap-based filter pipelines. The export is a point-in-time copy and
// does not track later growth.
func (s *Sieve[N]) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for p, ok := s.vec.NextCandidate(FirstPrime); ok; p, ok = s.vec.NextCandidate(p + 1) {
		rb.Add(uint32(p))
	}
	return rb
}

// InsertAt always fails with ErrUnsupported.
func (s *Sieve[N]) InsertAt(int, N) error {
	return ErrUnsupported
}

// RemoveAt always fails with ErrUnsupported.
func (s *Sieve[N]) RemoveAt(int) (N, error) {
	return 0, ErrUnsupported
}

// ReplaceAt always fails with ErrUnsupported.
func (s *Sieve[N]) ReplaceAt(int, N) error {
	return ErrUnsupported
}

// String renders the sieve: all primes when there are at most three,
// otherwise the first two and last two separated by an ellipsis.
func (s *Sieve[N]) String() string {
	return formatElements[N](s)
}
