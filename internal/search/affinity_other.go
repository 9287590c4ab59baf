//go:build !linux

package search

// pinToLogicalCPU is a no-op on platforms without a CPU-affinity syscall
// wired up here; workers still run correctly, just without the hard
// one-thread-per-core pinning the design calls for.
func pinToLogicalCPU(tid uint32) {}
