//go:build !linux

package search

// LowerProcessPriority is a no-op on platforms without the priority
// syscall wired up here.
func LowerProcessPriority() error { return nil }
