// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Send(t *tc.T) {
	t.Run("tc_net_send_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		msg := []byte("hello, server")
		n, err := unix.SendmsgN(c.client, msg, nil, nil, 0)
		if t.Nil("send", err) {
			t.Equal("send", n, len(msg))
		}
	})
	t.Run("tc_net_send_not_connected_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		_, err := unix.SendmsgN(fd, []byte("x"), nil, nil, unix.MSG_NOSIGNAL)
		t.True("send", errors.Is(err, unix.EPIPE) ||
			errors.Is(err, unix.ENOTCONN), err)
	})
}
