package sievego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBound is returned when a sieve bound is zero or negative.
	ErrInvalidBound = errors.New("bound must be a positive integer")

	// ErrEmptySieve is returned by first/last-prime queries on a container
	// that holds no primes.
	ErrEmptySieve = errors.New("sieve contains no primes")

	// ErrUnsupported is returned by every per-element mutation: prime
	// containers are append-only, the only mutations are ExtendTo and Clear.
	ErrUnsupported = errors.New("operation not supported: prime containers are append-only")

	// ErrConcurrentModification is returned by an iterator or lazy stream
	// that detects a structural change since its creation. The iteration is
	// dead; callers must re-acquire it.
	ErrConcurrentModification = errors.New("sieve structurally modified during iteration")

	// ErrIteratorExhausted is returned by Next/Previous past either end of
	// a list iterator.
	ErrIteratorExhausted = errors.New("iterator exhausted")
)

// ErrCapacityExceeded indicates a requested bound beyond the maximum
// representable sieve size. The call is not retryable except with a
// smaller bound.
type ErrCapacityExceeded struct {
	Bound uint64 // Requested bound
	Max   uint64 // Maximum supported bound
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("bound %d exceeds maximum sieve capacity %d", e.Bound, e.Max)
}

// ErrRankOutOfRange indicates a rank outside [0, Size()).
type ErrRankOutOfRange struct {
	Rank int // Requested rank
	Size int // Container size at the time of the call
}

func (e *ErrRankOutOfRange) Error() string {
	return fmt.Sprintf("rank %d out of range [0, %d)", e.Rank, e.Size)
}

// ErrInvalidRange indicates an empty or out-of-bounds window request.
type ErrInvalidRange struct {
	From int // Requested start rank (inclusive)
	To   int // Requested end rank (exclusive)
	Size int // Container size at the time of the call
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d) for container of size %d", e.From, e.To, e.Size)
}
