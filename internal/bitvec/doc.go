// Package bitvec implements the candidate vector backing a prime sieve:
// one flag per integer, true while the integer is still a prime candidate,
// cleared permanently once it is known composite.
package bitvec
