// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Getsockname(t *tc.T) {
	t.Run("tc_net_getsockname_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		want := &unix.SockaddrInet4{Port: 0, Addr: loopback}
		if !t.Nil("bind", unix.Bind(fd, want)) {
			return
		}
		sa, err := unix.Getsockname(fd)
		if !t.Nil("getsockname", err) {
			return
		}
		in, ok := sa.(*unix.SockaddrInet4)
		if t.True("getsockname", ok, "not inet4") {
			t.Equal("getsockname", in.Addr, loopback)
			t.True("getsockname", in.Port != 0, "port 0")
		}
	})
	t.Run("tc_net_getsockname_invalid_fd_n", func(t *tc.T) {
		_, err := unix.Getsockname(-1)
		t.True("getsockname", errors.Is(err, unix.EBADF), err)
	})
}
