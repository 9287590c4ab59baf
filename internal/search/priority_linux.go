//go:build linux

package search

import "golang.org/x/sys/unix"

// belowNormalNiceDelta is a modest deprioritization, not a deep
// background nice level, so the search still makes steady progress but
// yields to anything interactive.
const belowNormalNiceDelta = 5

// LowerProcessPriority renices the current process so the host stays
// responsive while the search runs. It sets the nice value to
// belowNormalNiceDelta as an absolute value, not as an increment over the
// current one. It is a best-effort setup step: a denied syscall is
// reported but is not treated as fatal (raising the nice value needs no
// elevated privilege on Linux, but a process already niced above this
// value, or a sandbox, can see the call denied).
func LowerProcessPriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, belowNormalNiceDelta)
}
