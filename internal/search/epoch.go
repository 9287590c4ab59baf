// Package search implements the per-k coordinator: it splits the
// half-line m >= m_lower into contiguous batches of strided tiles, drives
// a fixed worker pool over them, and applies the lock-free minimality
// protocol (try_set_best / end_limit shrinking) that lets tiles finish out
// of order while still returning the globally smallest m.
package search

import (
	"sync/atomic"

	"github.com/TomTonic/smoothgap/internal/sieve"
)

// sentinel for "no candidate found yet" in best_m / end_limit math.
const maxU64 = ^uint64(0)

// epochState holds everything that is shared, read-only-after-setup, or
// atomically mutated during one epoch (one fixed k, one batch at a time).
// Only bestM, endLimit and activeWorkers change after the epoch starts;
// every other field is immutable for the epoch's lifetime.
type epochState struct {
	k       uint32
	tileLen uint32
	params  sieve.Params

	startM uint64
	endM   uint64

	bestM         atomic.Uint64
	endLimit      atomic.Uint64
	activeWorkers atomic.Int64

	done chan struct{}
}

// trySetBest shrinks bestM to min(bestM, v), and if that improved it,
// shrinks endLimit to v-1 (saturating at 0) so workers stop scanning tiles
// that could not possibly beat the best candidate found so far. No
// ordering is imposed between distinct workers' publications -- only the
// CAS linearization point matters.
func (e *epochState) trySetBest(v uint64) {
	for {
		cur := e.bestM.Load()
		if v >= cur {
			return
		}
		if e.bestM.CompareAndSwap(cur, v) {
			newLim := uint64(0)
			if v > 0 {
				newLim = v - 1
			}
			for {
				oldLim := e.endLimit.Load()
				if newLim >= oldLim {
					break
				}
				if e.endLimit.CompareAndSwap(oldLim, newLim) {
					break
				}
			}
			return
		}
	}
}

// workerDone decrements activeWorkers and, if it was the last worker,
// closes the done channel so the coordinator can read the epoch's result.
func (e *epochState) workerDone() {
	if e.activeWorkers.Add(-1) == 0 {
		close(e.done)
	}
}

func safeAddU64(a, b uint64) (uint64, bool) {
	c := a + b
	if c < a {
		return maxU64, false
	}
	return c, true
}
