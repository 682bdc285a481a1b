// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"fmt"
	"time"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

var loopback = [4]byte{127, 0, 0, 1}

// Blocking calls on these sockets give up after this.
const ioTimeout = time.Second

func socket(t *tc.T, typ int) (int, bool) {
	fd, err := unix.Socket(unix.AF_INET, typ|unix.SOCK_CLOEXEC, 0)
	if !t.Nil("socket", err) {
		return -1, false
	}
	tv := unix.NsecToTimeval(int64(ioTimeout))
	for _, opt := range []int{unix.SO_RCVTIMEO, unix.SO_SNDTIMEO} {
		err = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, opt, &tv)
		if !t.Nil("setsockopt", err) {
			unix.Close(fd)
			return -1, false
		}
	}
	return fd, true
}

func port(t *tc.T, fd int) (int, bool) {
	sa, err := unix.Getsockname(fd)
	if !t.Nil("getsockname", err) {
		return 0, false
	}
	in, ok := sa.(*unix.SockaddrInet4)
	if !t.True("getsockname", ok, fmt.Sprintf("%T", sa)) {
		return 0, false
	}
	return in.Port, true
}

// bound returns a socket of the given type bound to an ephemeral loopback
// port.
func bound(t *tc.T, typ int) (fd, p int, ok bool) {
	if fd, ok = socket(t, typ); !ok {
		return
	}
	if !t.Nil("bind", unix.Bind(fd, &unix.SockaddrInet4{Addr: loopback})) {
		unix.Close(fd)
		return -1, 0, false
	}
	if p, ok = port(t, fd); !ok {
		unix.Close(fd)
		return -1, 0, false
	}
	return
}

func listener(t *tc.T) (fd, p int, ok bool) {
	if fd, p, ok = bound(t, unix.SOCK_STREAM); !ok {
		return
	}
	if !t.Nil("listen", unix.Listen(fd, 4)) {
		unix.Close(fd)
		return -1, 0, false
	}
	return
}

// pair is a connected loopback stream with its listener.
type pair struct {
	ln, client, server int
	port               int
}

func dial(t *tc.T) (*pair, bool) {
	c := &pair{ln: -1, client: -1, server: -1}
	var ok bool
	if c.ln, c.port, ok = listener(t); !ok {
		return nil, false
	}
	if c.client, ok = socket(t, unix.SOCK_STREAM); !ok {
		c.Close()
		return nil, false
	}
	err := unix.Connect(c.client, &unix.SockaddrInet4{
		Port: c.port,
		Addr: loopback,
	})
	if !t.Nil("connect", err) {
		c.Close()
		return nil, false
	}
	c.server, _, err = unix.Accept4(c.ln, unix.SOCK_CLOEXEC)
	if !t.Nil("accept", err) {
		c.server = -1
		c.Close()
		return nil, false
	}
	return c, true
}

func (c *pair) Close() {
	for _, fd := range []int{c.server, c.client, c.ln} {
		if fd >= 0 {
			unix.Close(fd)
		}
	}
}
