// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Accept(t *tc.T) {
	t.Run("tc_net_accept_p", func(t *tc.T) {
		ln, p, ok := listener(t)
		if !ok {
			return
		}
		defer unix.Close(ln)
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Connect(fd, &unix.SockaddrInet4{Port: p, Addr: loopback})
		if !t.Nil("connect", err) {
			return
		}
		cp, ok := port(t, fd)
		if !ok {
			return
		}
		nfd, sa, err := unix.Accept(ln)
		if !t.Nil("accept", err) {
			return
		}
		defer unix.Close(nfd)
		in, ok := sa.(*unix.SockaddrInet4)
		if t.True("accept", ok, "peer not inet4") {
			t.Equal("accept", in.Port, cp)
		}
	})
	t.Run("tc_net_accept_not_listening_n", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		_, _, err := unix.Accept(fd)
		t.True("accept", errors.Is(err, unix.EINVAL), err)
	})
	t.Run("tc_net_accept_dgram_n", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		_, _, err := unix.Accept(fd)
		t.True("accept", errors.Is(err, unix.EOPNOTSUPP), err)
	})
}
