// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Recv(t *tc.T) {
	t.Run("tc_net_recv_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		msg := "hello, client"
		if _, err := unix.Write(c.server, []byte(msg)); !t.Nil("send", err) {
			return
		}
		buf := make([]byte, 64)
		n, _, err := unix.Recvfrom(c.client, buf, 0)
		if t.Nil("recv", err) {
			t.Equal("recv", string(buf[:n]), msg)
		}
	})
	t.Run("tc_net_recv_timeout_n", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		tv := unix.NsecToTimeval(int64(ioTimeout / 100))
		err := unix.SetsockoptTimeval(c.client, unix.SOL_SOCKET,
			unix.SO_RCVTIMEO, &tv)
		if !t.Nil("setsockopt", err) {
			return
		}
		_, _, err = unix.Recvfrom(c.client, make([]byte, 8), 0)
		t.True("recv", errors.Is(err, unix.EAGAIN), err)
	})
}
