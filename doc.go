// Package sievego provides a growable, queryable ordered collection of
// prime numbers for Go.
//
// A Sieve maintains every prime up to its current upper bound using an
// incremental Sieve of Eratosthenes: extending the bound sieves only the
// newly covered range, never re-sieving covered ground. An amortized
// waypoint index keeps rank lookups (the i-th prime) and reverse lookups
// (the rank of a prime) cheap without storing the full prime list.
//
// # Quick Start
//
//	s, _ := sievego.New[int](30)
//	s.Size()          // 10
//	s.Get(9)          // 29
//	s.IndexOf(17)     // 6
//	s.Contains(21)    // false
//	s.NextPrime(7)    // 11, true
//
//	_ = s.ExtendTo(1_000_000) // grows incrementally
//
// # Container Contract
//
// Sieve and View both satisfy the generic Container interface: size, rank
// access, membership, reverse lookup, forward and bidirectional iteration,
// lazy composite enumeration, equality, hashing, string rendering, and
// sub-range windowing. The collection is append-only: the only mutations
// are whole-collection growth (ExtendTo) and whole-collection reset
// (Clear); per-element insert/remove/replace always fail.
//
// # Windows
//
//	w, _ := s.SubList(2, 5)  // primes of ranks 2, 3, 4
//	w.Get(0)                 // equals s.Get(2)
//
// A window pins its first and last values at construction and delegates
// every query to the underlying sieve. Windows of windows address the
// original sieve directly.
//
// # Iteration and Fail-Fast Behavior
//
// Iterators and lazy streams capture the sieve's generation at creation and
// re-check it on every step:
//
//	for p, err := range s.Values() {
//	    if err != nil {
//	        // the sieve was extended or cleared mid-iteration
//	        break
//	    }
//	    process(p)
//	}
//
// Mutation is detected, never prevented: the sieve performs no internal
// locking. Read-only queries may run concurrently with each other;
// read-while-mutate is unsafe and surfaces only through the fail-fast
// check.
package sievego
