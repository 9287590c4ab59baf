// Package sieve implements the tiled, strided trial-division sieve: for a
// window of candidate block-starts, it strips every prime factor <= k from
// each covered integer using precomputed fast-modulus reciprocals, leaving
// a residual that is 1 exactly when the integer is k-smooth. Offsets are
// carried from one tile to the next within a worker's stride so that no
// tile re-derives base%p from scratch (see OffsetCarry in the design doc).
package sieve

import (
	"math/bits"

	"github.com/TomTonic/smoothgap/internal/fastmod"
	"github.com/TomTonic/smoothgap/internal/primes"
)

// Params bundles everything that is immutable for one epoch (fixed k):
// the prime table, one FastMod reciprocal per prime, and step_mod[i] =
// stride mod p_i, used to carry offsets across tiles without division.
type Params struct {
	K        uint32
	Primes   primes.Table
	Entries  []fastmod.Entry
	StepMod  []uint32
	Stride   uint64
}

// BuildParams precomputes the per-k arrays for a stride of tileLen*threads.
func BuildParams(k uint32, stride uint64) Params {
	tab := primes.Upto(k)
	ps := tab.Primes()

	entries := make([]fastmod.Entry, len(ps))
	stepMod := make([]uint32, len(ps))
	for i, p := range ps {
		e := fastmod.Make(p)
		entries[i] = e
		if p == 2 {
			stepMod[i] = uint32(stride & 1)
		} else {
			stepMod[i] = e.Mod(stride)
		}
	}

	return Params{K: k, Primes: tab, Entries: entries, StepMod: stepMod, Stride: stride}
}

// InitOffsets computes off[i] = (p_i - (baseTest0 mod p_i)) mod p_i for
// every prime, using FastMod (p=2 uses the low bit directly). baseTest0 is
// the first candidate start position (base+1) this worker will sieve this
// epoch.
func (pr Params) InitOffsets(baseTest0 uint64) []uint32 {
	off := make([]uint32, len(pr.Entries))
	for i, e := range pr.Entries {
		if e.P == 2 {
			off[i] = uint32(baseTest0 & 1)
			continue
		}
		r := e.Mod(baseTest0)
		if r == 0 {
			off[i] = 0
		} else {
			off[i] = e.P - r
		}
	}
	return off
}

// WindowLen returns the residual/bad-bits buffer length needed to sieve
// startCount candidate starts for block length k: startCount + k.
func WindowLen(startCount uint32, k uint32) uint32 {
	return startCount + k
}

// Tile sieves the window [base+1, base+winLen] in place: residual[j] ends
// up holding the largest divisor of (base+1+j) whose prime factors all
// exceed k, and badBits[j] is set iff that divisor is 1 (the number is
// k-smooth). off is advanced by exactly one tile's worth of stride on
// return, so the caller can pass it straight into the next tile.
//
// residual and badBits must already be sized for winLen =
// startCount+k; the caller owns growing them (worker scratch grows
// monotonically and is never shrunk).
func (pr Params) Tile(base uint64, startCount uint32, off []uint32, residual []uint64, badBits []byte) {
	winLen := WindowLen(startCount, pr.K)

	base1 := base + 1
	for j := uint32(0); j < winLen; j++ {
		residual[j] = base1 + uint64(j)
	}
	bitsetClear(badBits, int(winLen))

	ps := pr.Primes.Primes()
	for pi, p := range ps {
		e := pr.Entries[pi]

		for j := off[pi]; j < winLen; j += p {
			x := residual[j]
			if p == 2 {
				x >>= uint64(bits.TrailingZeros64(x))
			} else {
				for e.DivideIfDivisible(&x) {
				}
			}
			residual[j] = x
		}

		sm := pr.StepMod[pi]
		if sm != 0 {
			o := off[pi]
			if o >= sm {
				off[pi] = o - sm
			} else {
				off[pi] = o + p - sm
			}
		}
	}

	for j := uint32(0); j < winLen; j++ {
		if residual[j] == 1 {
			bitsetSet(badBits, int(j))
		}
	}
}
