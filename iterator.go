package sievego

// ListIterator is a bidirectional cursor over a rank window of a sieve.
// The cursor sits between elements: Next returns the element at NextIndex
// and moves forward, Previous returns the element at PreviousIndex and
// moves back.
//
// The iterator captures the sieve's generation at creation and re-checks it
// on every step; a structural change made after creation surfaces as
// ErrConcurrentModification.
type ListIterator[N Integer] struct {
	sieve    *Sieve[N]
	lo, hi   int // absolute rank window [lo, hi)
	pos      int // absolute rank of the element Next would return
	cur      int // value at rank pos, or -1 when pos is past every prime
	expected uint64
}

// newListIterator builds a cursor over the absolute ranks [lo, hi) of s,
// positioned at window-relative rank. rank may equal hi-lo.
func newListIterator[N Integer](s *Sieve[N], lo, hi, rank int) (*ListIterator[N], error) {
	if size := hi - lo; rank < 0 || rank > size {
		return nil, &ErrRankOutOfRange{Rank: rank, Size: size}
	}

	it := &ListIterator[N]{
		sieve:    s,
		lo:       lo,
		hi:       hi,
		pos:      lo + rank,
		cur:      -1,
		expected: s.generation,
	}

	if it.pos < s.Size() {
		v, err := s.Get(it.pos)
		if err != nil {
			return nil, err
		}
		it.cur = int(v)
	}

	return it, nil
}

// HasNext reports whether a forward step stays inside the window.
func (it *ListIterator[N]) HasNext() bool {
	return it.pos < it.hi
}

// HasPrevious reports whether a backward step stays inside the window.
func (it *ListIterator[N]) HasPrevious() bool {
	return it.pos > it.lo
}

// Next returns the element at NextIndex and advances the cursor.
func (it *ListIterator[N]) Next() (N, error) {
	if !it.HasNext() {
		return 0, ErrIteratorExhausted
	}
	if err := it.check(); err != nil {
		return 0, err
	}

	v := it.cur
	if n, ok := it.sieve.vec.NextCandidate(v + 1); ok {
		it.cur = n
	} else {
		it.cur = -1
	}
	it.pos++

	return N(v), nil
}

// Previous returns the element at PreviousIndex and moves the cursor back.
func (it *ListIterator[N]) Previous() (N, error) {
	if !it.HasPrevious() {
		return 0, ErrIteratorExhausted
	}
	if err := it.check(); err != nil {
		return 0, err
	}

	var v int
	if it.cur >= 0 {
		v, _ = it.sieve.vec.PrevCandidate(it.cur - 1)
	} else {
		// Cursor is past the last prime of the sieve.
		v, _ = it.sieve.vec.Highest()
	}
	it.cur = v
	it.pos--

	return N(v), nil
}

// NextIndex returns the window-relative rank of the element Next would
// return.
func (it *ListIterator[N]) NextIndex() int {
	return it.pos - it.lo
}

// PreviousIndex returns the window-relative rank of the element Previous
// would return.
func (it *ListIterator[N]) PreviousIndex() int {
	return it.pos - it.lo - 1
}

func (it *ListIterator[N]) check() error {
	if it.sieve.generation != it.expected {
		return ErrConcurrentModification
	}
	return nil
}
