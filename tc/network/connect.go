// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Connect(t *tc.T) {
	t.Run("tc_net_connect_p", func(t *tc.T) {
		if c, ok := dial(t); ok {
			c.Close()
		}
	})
	t.Run("tc_net_connect_refused_n", func(t *tc.T) {
		// a closed listener leaves a port that nothing accepts on
		ln, p, ok := listener(t)
		if !ok {
			return
		}
		unix.Close(ln)
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Connect(fd, &unix.SockaddrInet4{Port: p, Addr: loopback})
		t.True("connect", errors.Is(err, unix.ECONNREFUSED), err)
	})
	t.Run("tc_net_connect_invalid_fd_n", func(t *tc.T) {
		err := unix.Connect(-1, &unix.SockaddrInet4{Port: 1, Addr: loopback})
		t.True("connect", errors.Is(err, unix.EBADF), err)
	})
}
