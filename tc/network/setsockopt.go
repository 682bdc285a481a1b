// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Setsockopt(t *tc.T) {
	t.Run("tc_net_setsockopt_so_reuseaddr_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		if !t.Nil("setsockopt", err) {
			return
		}
		v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR)
		if t.Nil("getsockopt", err) {
			t.True("setsockopt", v != 0, "SO_REUSEADDR unset")
		}
	})
	t.Run("tc_net_setsockopt_so_rcvbuf_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		const want = 8192
		err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, want)
		if !t.Nil("setsockopt", err) {
			return
		}
		v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF)
		// linux doubles the request for bookkeeping
		if t.Nil("getsockopt", err) {
			t.True("setsockopt", v >= want, "SO_RCVBUF ", v)
		}
	})
	t.Run("tc_net_setsockopt_invalid_fd_n", func(t *tc.T) {
		err := unix.SetsockoptInt(-1, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		t.True("setsockopt", errors.Is(err, unix.EBADF), err)
	})
}
