// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"context"
	"net"

	"github.com/platinasystems/goes-tc/tc"
)

// Netdb checks host and service lookup without leaving the machine.
func Netdb(t *tc.T) {
	t.Run("tc_net_netdb_gethostbyname_p", func(t *tc.T) {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		addrs, err := net.DefaultResolver.LookupHost(ctx, "localhost")
		if !t.Nil("gethostbyname", err) {
			return
		}
		for _, s := range addrs {
			if ip := net.ParseIP(s); ip != nil && ip.IsLoopback() {
				return
			}
		}
		t.Fail("gethostbyname", addrs)
	})
	t.Run("tc_net_netdb_getservbyname_p", func(t *tc.T) {
		p, err := net.LookupPort("tcp", "http")
		if t.Nil("getservbyname", err) {
			t.Equal("getservbyname", p, 80)
		}
	})
	t.Run("tc_net_netdb_getaddrinfo_numeric_p", func(t *tc.T) {
		addr, err := net.ResolveTCPAddr("tcp4", "127.0.0.1:8080")
		if t.Nil("getaddrinfo", err) {
			t.True("getaddrinfo", addr.IP.IsLoopback() &&
				addr.Port == 8080, addr)
		}
	})
	t.Run("tc_net_netdb_getservbyname_n", func(t *tc.T) {
		_, err := net.LookupPort("tcp", "no-such-service")
		t.NonNil("getservbyname", err)
	})
}
