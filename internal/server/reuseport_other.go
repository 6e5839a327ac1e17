//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package server

import "syscall"

// reusePortControl is a no-op: without SO_REUSEPORT only the first worker to
// bind the port succeeds and the rest fail with a listen error.
func reusePortControl(_, _ string, _ syscall.RawConn) error {
	return nil
}

// SupportsPortSharing reports whether sibling workers can bind the same port.
const SupportsPortSharing = false
