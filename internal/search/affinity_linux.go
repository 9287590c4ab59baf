//go:build linux

package search

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToLogicalCPU locks the calling goroutine to its OS thread and pins
// that thread to one logical CPU. tid is reduced modulo the host's
// logical CPU count so a thread count larger than NumCPU still pins
// every worker somewhere rather than failing.
//
// Pinning is best-effort: a sandboxed or restricted environment may deny
// the affinity syscall, in which case the worker keeps running
// unpinned rather than treating it as a fatal setup error -- scheduling
// quality degrades, correctness does not.
func pinToLogicalCPU(tid uint32) {
	runtime.LockOSThread()

	n := runtime.NumCPU()
	if n <= 0 {
		return
	}
	cpu := int(tid) % n

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
