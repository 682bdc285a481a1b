// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Fcntl(t *tc.T) {
	t.Run("tc_net_fcntl_nonblock_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		fl, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
		if !t.Nil("fcntl", err) {
			return
		}
		_, err = unix.FcntlInt(uintptr(fd), unix.F_SETFL, fl|unix.O_NONBLOCK)
		if !t.Nil("fcntl", err) {
			return
		}
		fl, err = unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
		if t.Nil("fcntl", err) {
			t.True("fcntl", fl&unix.O_NONBLOCK != 0, "O_NONBLOCK unset")
		}
	})
	t.Run("tc_net_fcntl_nonblock_accept_p", func(t *tc.T) {
		ln, _, ok := listener(t)
		if !ok {
			return
		}
		defer unix.Close(ln)
		if !t.Nil("fcntl", unix.SetNonblock(ln, true)) {
			return
		}
		_, _, err := unix.Accept(ln)
		t.True("accept", errors.Is(err, unix.EAGAIN), err)
	})
	t.Run("tc_net_fcntl_invalid_fd_n", func(t *tc.T) {
		_, err := unix.FcntlInt(^uintptr(0), unix.F_GETFL, 0)
		t.True("fcntl", errors.Is(err, unix.EBADF), err)
	})
}
