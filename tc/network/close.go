// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Close(t *tc.T) {
	t.Run("tc_net_close_p", func(t *tc.T) {
		if fd, ok := socket(t, unix.SOCK_STREAM); ok {
			t.Nil("close", unix.Close(fd))
		}
	})
	t.Run("tc_net_close_twice_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_DGRAM)
		if !ok || !t.Nil("close", unix.Close(fd)) {
			return
		}
		err := unix.Close(fd)
		t.True("close", errors.Is(err, unix.EBADF), err)
	})
}
