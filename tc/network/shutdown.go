// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Shutdown(t *tc.T) {
	t.Run("tc_net_shutdown_wr_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		if !t.Nil("shutdown", unix.Shutdown(c.client, unix.SHUT_WR)) {
			return
		}
		n, err := unix.Read(c.server, make([]byte, 8))
		if t.Nil("recv", err) {
			t.Equal("recv", n, 0)
		}
	})
	t.Run("tc_net_shutdown_rdwr_send_n", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		if !t.Nil("shutdown", unix.Shutdown(c.client, unix.SHUT_RDWR)) {
			return
		}
		_, err := unix.SendmsgN(c.client, []byte("x"), nil, nil,
			unix.MSG_NOSIGNAL)
		t.True("send", errors.Is(err, unix.EPIPE), err)
	})
	t.Run("tc_net_shutdown_not_connected_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Shutdown(fd, unix.SHUT_RDWR)
		t.True("shutdown", errors.Is(err, unix.ENOTCONN), err)
	})
}
