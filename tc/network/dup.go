// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Dup(t *tc.T) {
	t.Run("tc_net_dup_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		nfd, err := unix.Dup(fd)
		unix.Close(fd)
		if !t.Nil("dup", err) {
			return
		}
		defer unix.Close(nfd)
		if dp, ok := port(t, nfd); ok {
			t.Equal("dup", dp, p)
		}
	})
	t.Run("tc_net_dup_invalid_fd_n", func(t *tc.T) {
		nfd, err := unix.Dup(-1)
		if !t.True("dup", errors.Is(err, unix.EBADF), err) && err == nil {
			unix.Close(nfd)
		}
	})
}
