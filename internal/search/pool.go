package search

import (
	"runtime"

	"github.com/TomTonic/smoothgap/internal/scanner"
)

// workCmd is the typed wakeup sent to a worker goroutine: either "start
// this epoch" (epoch != nil) or "stop" (stop == true).
type workCmd struct {
	epoch *epochState
	stop  bool
}

// worker owns its scratch exclusively: nothing but the three atomic
// EpochState fields and the done channel are shared with the coordinator
// during an epoch.
type worker struct {
	tid uint32
	cmd chan workCmd

	off      []uint32
	residual []uint64
	badBits  []byte
}

// Pool is a fixed set of worker goroutines, one per logical core,
// created once and parked on their command channel between epochs. It is
// not safe to run two epochs on the same Pool concurrently.
type Pool struct {
	workers []*worker
}

// NewPool starts threadCount worker goroutines. If threadCount is 0, it
// uses runtime.NumCPU(); any other count is used as given.
func NewPool(threadCount uint32) *Pool {
	if threadCount == 0 {
		threadCount = uint32(runtime.NumCPU())
	}

	p := &Pool{workers: make([]*worker, threadCount)}
	for i := range p.workers {
		w := &worker{tid: uint32(i), cmd: make(chan workCmd)}
		p.workers[i] = w
		go w.run()
	}
	return p
}

// ThreadCount returns the number of worker goroutines in the pool.
func (p *Pool) ThreadCount() int { return len(p.workers) }

// Stop signals every worker to exit and returns once each worker has
// received its stop command. It does not wait for the goroutines to return
// from run(); the unbuffered send only completes once a worker has
// finished its current command and reads the next one.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		w.cmd <- workCmd{stop: true}
	}
}

// run is the worker goroutine body: block on the command channel between
// epochs, and inside an epoch, never block -- spin on endLimit and scan
// tiles until this worker's base exceeds it.
func (w *worker) run() {
	pinToLogicalCPU(w.tid)
	for cmd := range w.cmd {
		if cmd.stop {
			return
		}
		w.runEpoch(cmd.epoch)
	}
}

func (w *worker) runEpoch(e *epochState) {
	base := e.startM + uint64(w.tid)*uint64(e.tileLen)
	baseTest0 := base + 1
	w.off = e.params.InitOffsets(baseTest0)

	stride := e.params.Stride

	for {
		lim := e.endLimit.Load()
		if base > lim {
			e.workerDone()
			return
		}

		maxStarts := lim - base + 1
		startCount := uint32(e.tileLen)
		if maxStarts < uint64(e.tileLen) {
			startCount = uint32(maxStarts)
		}

		winLen := startCount + e.k
		w.ensureScratch(winLen)

		found, ok := scanner.ScanTile(e.params, base, startCount, w.off, w.residual, w.badBits)
		if ok {
			e.trySetBest(found)
		}

		base += stride
	}
}

// ensureScratch grows residual/badBits to cover winLen positions. Scratch
// is retained across epochs and only ever grows, so a worker's buffers
// settle at the largest tile it has ever scanned instead of reallocating
// every epoch.
func (w *worker) ensureScratch(winLen uint32) {
	if uint32(len(w.residual)) < winLen {
		w.residual = make([]uint64, winLen)
	}
	nb := int(winLen+7) / 8
	if len(w.badBits) < nb {
		w.badBits = make([]byte, nb)
	}
}
