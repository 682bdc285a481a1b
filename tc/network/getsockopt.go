// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Getsockopt(t *tc.T) {
	for _, x := range []struct {
		name string
		typ  int
	}{
		{"tc_net_getsockopt_so_type_stream_p", unix.SOCK_STREAM},
		{"tc_net_getsockopt_so_type_dgram_p", unix.SOCK_DGRAM},
	} {
		t.Run(x.name, func(t *tc.T) {
			fd, ok := socket(t, x.typ)
			if !ok {
				return
			}
			defer unix.Close(fd)
			v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_TYPE)
			if t.Nil("getsockopt", err) {
				t.Equal("getsockopt", v, x.typ)
			}
		})
	}
	t.Run("tc_net_getsockopt_so_error_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if t.Nil("getsockopt", err) {
			t.Equal("getsockopt", v, 0)
		}
	})
	t.Run("tc_net_getsockopt_invalid_fd_n", func(t *tc.T) {
		_, err := unix.GetsockoptInt(-1, unix.SOL_SOCKET, unix.SO_TYPE)
		t.True("getsockopt", errors.Is(err, unix.EBADF), err)
	})
}
