// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"
	"time"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Select(t *tc.T) {
	t.Run("tc_net_select_readable_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Sendto(fd, []byte("ping"), 0,
			&unix.SockaddrInet4{Port: p, Addr: loopback})
		if !t.Nil("sendto", err) {
			return
		}
		var r unix.FdSet
		r.Set(fd)
		tv := unix.NsecToTimeval(int64(ioTimeout))
		n, err := unix.Select(fd+1, &r, nil, nil, &tv)
		if t.Nil("select", err) && t.Equal("select", n, 1) {
			t.True("select", r.IsSet(fd), "fd not readable")
		}
	})
	t.Run("tc_net_select_writable_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		var w unix.FdSet
		w.Set(c.client)
		tv := unix.NsecToTimeval(int64(ioTimeout))
		n, err := unix.Select(c.client+1, nil, &w, nil, &tv)
		if t.Nil("select", err) && t.Equal("select", n, 1) {
			t.True("select", w.IsSet(c.client), "fd not writable")
		}
	})
	t.Run("tc_net_select_timeout_p", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		var r unix.FdSet
		r.Set(fd)
		tv := unix.NsecToTimeval(int64(10 * time.Millisecond))
		n, err := unix.Select(fd+1, &r, nil, nil, &tv)
		if t.Nil("select", err) {
			t.Equal("select", n, 0)
		}
	})
	t.Run("tc_net_select_invalid_fd_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_DGRAM)
		if !ok || !t.Nil("close", unix.Close(fd)) {
			return
		}
		var r unix.FdSet
		r.Set(fd)
		tv := unix.NsecToTimeval(int64(10 * time.Millisecond))
		_, err := unix.Select(fd+1, &r, nil, nil, &tv)
		t.True("select", errors.Is(err, unix.EBADF), err)
	})
}
