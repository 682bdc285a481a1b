// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Recvfrom(t *tc.T) {
	t.Run("tc_net_recvfrom_p", func(t *tc.T) {
		rx, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(rx)
		tx, txp, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(tx)
		msg := "datagram"
		err := unix.Sendto(tx, []byte(msg), 0,
			&unix.SockaddrInet4{Port: p, Addr: loopback})
		if !t.Nil("sendto", err) {
			return
		}
		buf := make([]byte, 64)
		n, from, err := unix.Recvfrom(rx, buf, 0)
		if !t.Nil("recvfrom", err) {
			return
		}
		t.Equal("recvfrom", string(buf[:n]), msg)
		in, ok := from.(*unix.SockaddrInet4)
		if t.True("recvfrom", ok, "source not inet4") {
			t.Equal("recvfrom", in.Port, txp)
		}
	})
	t.Run("tc_net_recvfrom_truncate_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Sendto(fd, []byte("0123456789"), 0,
			&unix.SockaddrInet4{Port: p, Addr: loopback})
		if !t.Nil("sendto", err) {
			return
		}
		buf := make([]byte, 4)
		n, _, err := unix.Recvfrom(fd, buf, unix.MSG_TRUNC)
		if t.Nil("recvfrom", err) {
			t.Equal("recvfrom", n, 10)
		}
	})
	t.Run("tc_net_recvfrom_invalid_fd_n", func(t *tc.T) {
		_, _, err := unix.Recvfrom(-1, make([]byte, 4), 0)
		t.True("recvfrom", errors.Is(err, unix.EBADF), err)
	})
}
