// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Sendto(t *tc.T) {
	t.Run("tc_net_sendto_p", func(t *tc.T) {
		rx, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(rx)
		tx, ok := socket(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(tx)
		err := unix.Sendto(tx, []byte("datagram"), 0,
			&unix.SockaddrInet4{Port: p, Addr: loopback})
		t.Nil("sendto", err)
	})
	t.Run("tc_net_sendto_no_address_n", func(t *tc.T) {
		tx, ok := socket(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(tx)
		_, err := unix.SendmsgN(tx, []byte("datagram"), nil, nil, 0)
		t.True("sendto", errors.Is(err, unix.EDESTADDRREQ), err)
	})
}
