package search

import (
	"errors"
	"fmt"

	"github.com/TomTonic/smoothgap/internal/sieve"
)

// ErrSaturated is returned when the search range for k would need to
// advance past the representable range of uint64 without finding a
// solution. This can only happen for implausibly large k on the current
// hardware and signals the outer driver to halt rather than loop forever.
var ErrSaturated = errors.New("search: batch range saturated at max uint64 without finding m(k)")

// errInvariant reports a broken search invariant (best_m below the
// batch's own m_lower). It should be unreachable; assertf additionally
// traps it immediately in debug builds so the failure is caught closer
// to its cause during development.
var errInvariant = errors.New("search: internal invariant violated")

// FindM returns m(k): the smallest m >= startM such that every integer in
// (m, m+k] has a prime factor > k. It drives pool through successive
// batches of tileLen*batchTiles candidate starts until one batch yields a
// result.
func FindM(pool *Pool, k uint32, startM uint64, tileLen uint32, batchTiles uint64) (uint64, error) {
	threadCount := uint64(pool.ThreadCount())
	stride := uint64(tileLen) * threadCount
	params := sieve.BuildParams(k, stride)

	span := uint64(tileLen) * batchTiles
	if span == 0 {
		span = uint64(tileLen)
	}

	cur := startM
	for {
		end, ok := safeAddU64(cur, span-1)

		e := &epochState{
			k:       k,
			tileLen: tileLen,
			params:  params,
			startM:  cur,
			endM:    end,
			done:    make(chan struct{}),
		}
		e.bestM.Store(maxU64)
		e.endLimit.Store(end)
		e.activeWorkers.Store(int64(threadCount))

		for _, w := range pool.workers {
			w.cmd <- workCmd{epoch: e}
		}
		<-e.done

		best := e.bestM.Load()
		if best != maxU64 {
			assertf(best >= e.startM, "best_m=%d < m_lower=%d at epoch end for k=%d", best, e.startM, k)
			if best < e.startM {
				return 0, fmt.Errorf("%w: best_m=%d < m_lower=%d for k=%d", errInvariant, best, e.startM, k)
			}
			return best, nil
		}

		if !ok {
			return 0, ErrSaturated
		}
		next, ok := safeAddU64(end, 1)
		if !ok {
			return 0, ErrSaturated
		}
		cur = next
	}
}
