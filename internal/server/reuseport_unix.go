//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package server

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// reusePortControl marks the socket SO_REUSEADDR and SO_REUSEPORT before
// bind(2), letting sibling workers share one port.
func reusePortControl(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		if sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); sockErr != nil {
			return
		}
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}

// SupportsPortSharing reports whether sibling workers can bind the same port.
const SupportsPortSharing = true
