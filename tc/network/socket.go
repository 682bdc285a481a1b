// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Socket(t *tc.T) {
	for _, x := range []struct {
		name        string
		domain, typ int
	}{
		{"tc_net_socket_af_inet_sock_stream_p", unix.AF_INET, unix.SOCK_STREAM},
		{"tc_net_socket_af_inet_sock_dgram_p", unix.AF_INET, unix.SOCK_DGRAM},
		{"tc_net_socket_af_unix_sock_stream_p", unix.AF_UNIX, unix.SOCK_STREAM},
	} {
		t.Run(x.name, func(t *tc.T) {
			fd, err := unix.Socket(x.domain, x.typ, 0)
			if t.Nil("socket", err) {
				t.True("socket", fd >= 0, "fd ", fd)
				unix.Close(fd)
			}
		})
	}
	t.Run("tc_net_socket_invalid_domain_n", func(t *tc.T) {
		fd, err := unix.Socket(-1, unix.SOCK_STREAM, 0)
		if !t.NonNil("socket", err) {
			unix.Close(fd)
		}
	})
}
