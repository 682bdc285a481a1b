// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Getpeername(t *tc.T) {
	t.Run("tc_net_getpeername_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		sa, err := unix.Getpeername(c.client)
		if !t.Nil("getpeername", err) {
			return
		}
		in, ok := sa.(*unix.SockaddrInet4)
		if t.True("getpeername", ok, "not inet4") {
			t.Equal("getpeername", in.Port, c.port)
		}
	})
	t.Run("tc_net_getpeername_not_connected_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		_, err := unix.Getpeername(fd)
		t.True("getpeername", errors.Is(err, unix.ENOTCONN), err)
	})
}
