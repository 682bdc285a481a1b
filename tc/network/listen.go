// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Listen(t *tc.T) {
	t.Run("tc_net_listen_p", func(t *tc.T) {
		if fd, _, ok := listener(t); ok {
			unix.Close(fd)
		}
	})
	t.Run("tc_net_listen_invalid_fd_n", func(t *tc.T) {
		err := unix.Listen(-1, 4)
		t.True("listen", errors.Is(err, unix.EBADF), err)
	})
}
