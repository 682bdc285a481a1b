// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Bind(t *tc.T) {
	t.Run("tc_net_bind_p", func(t *tc.T) {
		if fd, p, ok := bound(t, unix.SOCK_STREAM); ok {
			t.True("bind", p != 0, "port 0")
			unix.Close(fd)
		}
	})
	t.Run("tc_net_bind_addrinuse_n", func(t *tc.T) {
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
		err := unix.Bind(fd, &unix.SockaddrInet4{Port: p, Addr: loopback})
		t.True("bind", errors.Is(err, unix.EADDRINUSE), err)
	})
	t.Run("tc_net_bind_twice_n", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Bind(fd, &unix.SockaddrInet4{Addr: loopback})
		t.True("bind", errors.Is(err, unix.EINVAL), err)
	})
}
