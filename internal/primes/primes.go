// Package primes enumerates the primes up to a bound k, once per epoch.
// The sieve itself is the classic Sieve of Eratosthenes crossing off
// multiples starting at i*i, sized to an arbitrary, per-call bound rather
// than a fixed table.
package primes

import "math"

// Table is an ordered, ascending list of the primes <= the bound it was
// built for. It is immutable once returned.
type Table struct {
	p []uint32
}

// Upto sieves and returns the primes in [2, k]. For k < 2 it returns an
// empty table (k=1 has no primes <= 1; the caller handles that as a
// dedicated base case, not as a sieve edge case).
func Upto(k uint32) Table {
	if k < 2 {
		return Table{}
	}

	composite := make([]bool, k+1)
	for i := uint32(2); i*i <= k; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= k; j += i {
			composite[j] = true
		}
	}

	out := make([]uint32, 0, estimateCount(k))
	for i := uint32(2); i <= k; i++ {
		if !composite[i] {
			out = append(out, i)
		}
	}
	return Table{p: out}
}

// estimateCount gives a generous initial capacity for the prime list via
// the prime number theorem (n/ln n), avoiding most reallocation without
// tracking an exact count up front.
func estimateCount(k uint32) int {
	if k < 4 {
		return int(k)
	}
	n := float64(k)
	return int(n/math.Log(n)*1.3) + 8
}

// Primes returns the ascending slice of primes. Callers must not mutate it.
func (t Table) Primes() []uint32 { return t.p }

// Len returns the number of primes in the table.
func (t Table) Len() int { return len(t.p) }
