// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"
	"net"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

func Ioctl(t *tc.T) {
	t.Run("tc_net_ioctl_siocinq_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		msg := []byte("hello")
		err := unix.Sendto(fd, msg, 0, &unix.SockaddrInet4{
			Port: p,
			Addr: loopback,
		})
		if !t.Nil("sendto", err) {
			return
		}
		n, err := unix.IoctlGetInt(fd, unix.SIOCINQ)
		if t.Nil("ioctl", err) {
			t.Equal("ioctl", n, len(msg))
		}
	})
	t.Run("tc_net_ioctl_siocgifindex_p", func(t *tc.T) {
		lo, err := net.InterfaceByName("lo")
		if !t.Nil("if_nametoindex", err) {
			return
		}
		fd, ok := socket(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		ifr, err := unix.NewIfreq(lo.Name)
		if !t.Nil("ioctl", err) {
			return
		}
		if t.Nil("ioctl", unix.IoctlIfreq(fd, unix.SIOCGIFINDEX, ifr)) {
			t.Equal("ioctl", int(ifr.Uint32()), lo.Index)
		}
	})
	t.Run("tc_net_ioctl_invalid_fd_n", func(t *tc.T) {
		_, err := unix.IoctlGetInt(-1, unix.SIOCINQ)
		t.True("ioctl", errors.Is(err, unix.EBADF), err)
	})
}
