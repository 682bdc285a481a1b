// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"errors"

	"github.com/platinasystems/goes-tc/tc"
	"golang.org/x/sys/unix"
)

// The integrated cases combine calls that the unit cases check one at a
// time.

func ITCClose(t *tc.T) {
	t.Run("itc_net_close_peer_eof_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		if !t.Nil("close", unix.Close(c.client)) {
			return
		}
		c.client = -1
		n, err := unix.Read(c.server, make([]byte, 8))
		if t.Nil("recv", err) {
			t.Equal("recv", n, 0)
		}
	})
	t.Run("itc_net_close_listener_rebind_p", func(t *tc.T) {
		ln, p, ok := listener(t)
		if !ok || !t.Nil("close", unix.Close(ln)) {
			return
		}
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Bind(fd, &unix.SockaddrInet4{Port: p, Addr: loopback})
		t.Nil("bind", err)
	})
	t.Run("itc_net_close_after_shutdown_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		if !t.Nil("shutdown", unix.Shutdown(c.client, unix.SHUT_RDWR)) {
			return
		}
		err := unix.Close(c.client)
		c.client = -1
		t.Nil("close", err)
	})
}

func ITCDup(t *tc.T) {
	t.Run("itc_net_dup3_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		target, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(target)
		// dup3 closes the target's stream socket and reuses its number
		if !t.Nil("dup3", unix.Dup3(fd, target, unix.O_CLOEXEC)) {
			return
		}
		typ, err := unix.GetsockoptInt(target, unix.SOL_SOCKET, unix.SO_TYPE)
		if !t.Nil("getsockopt", err) ||
			!t.Equal("getsockopt", typ, unix.SOCK_DGRAM) {
			return
		}
		if dp, ok := port(t, target); ok {
			t.Equal("dup3", dp, p)
		}
	})
	t.Run("itc_net_dup_send_recv_p", func(t *tc.T) {
		c, ok := dial(t)
		if !ok {
			return
		}
		defer c.Close()
		nfd, err := unix.Dup(c.client)
		if !t.Nil("dup", err) {
			return
		}
		defer unix.Close(nfd)
		msg := "via dup"
		if _, err = unix.Write(nfd, []byte(msg)); !t.Nil("send", err) {
			return
		}
		buf := make([]byte, 16)
		n, err := unix.Read(c.server, buf)
		if t.Nil("recv", err) {
			t.Equal("recv", string(buf[:n]), msg)
		}
	})
	t.Run("itc_net_dup3_same_fd_n", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Dup3(fd, fd, 0)
		t.True("dup3", errors.Is(err, unix.EINVAL), err)
	})
}

func ITCFcntl(t *tc.T) {
	t.Run("itc_net_fcntl_cloexec_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		for _, want := range []int{0, unix.FD_CLOEXEC} {
			_, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, want)
			if !t.Nil("fcntl", err) {
				return
			}
			got, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
			if !t.Nil("fcntl", err) ||
				!t.Equal("fcntl", got&unix.FD_CLOEXEC, want) {
				return
			}
		}
	})
	t.Run("itc_net_fcntl_dupfd_p", func(t *tc.T) {
		fd, p, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		const min = 100
		nfd, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, min)
		if !t.Nil("fcntl", err) {
			return
		}
		defer unix.Close(nfd)
		if !t.True("fcntl", nfd >= min, "fd ", nfd) {
			return
		}
		if dp, ok := port(t, nfd); ok {
			t.Equal("fcntl", dp, p)
		}
	})
	t.Run("itc_net_fcntl_nonblock_recv_n", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		if !t.Nil("fcntl", unix.SetNonblock(fd, true)) {
			return
		}
		_, _, err := unix.Recvfrom(fd, make([]byte, 8), 0)
		t.True("recvfrom", errors.Is(err, unix.EAGAIN), err)
	})
}

func ITCListen(t *tc.T) {
	t.Run("itc_net_listen_backlog_p", func(t *tc.T) {
		ln, _, ok := listener(t)
		if !ok {
			return
		}
		defer unix.Close(ln)
		// a second listen only updates the backlog
		t.Nil("listen", unix.Listen(ln, 16))
	})
	t.Run("itc_net_listen_autobind_p", func(t *tc.T) {
		fd, ok := socket(t, unix.SOCK_STREAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		if !t.Nil("listen", unix.Listen(fd, 1)) {
			return
		}
		if p, ok := port(t, fd); ok {
			t.True("listen", p != 0, "port 0")
		}
	})
	t.Run("itc_net_listen_connect_accept_p", func(t *tc.T) {
		if c, ok := dial(t); ok {
			c.Close()
		}
	})
	t.Run("itc_net_listen_dgram_n", func(t *tc.T) {
		fd, _, ok := bound(t, unix.SOCK_DGRAM)
		if !ok {
			return
		}
		defer unix.Close(fd)
		err := unix.Listen(fd, 1)
		t.True("listen", errors.Is(err, unix.EOPNOTSUPP), err)
	})
}
