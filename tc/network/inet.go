// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"encoding/binary"
	"net/netip"

	"github.com/platinasystems/goes-tc/tc"
)

// Inet checks address conversions between text and network byte order.
func Inet(t *tc.T) {
	t.Run("tc_net_inet_addr_p", func(t *tc.T) {
		a, err := netip.ParseAddr("192.168.1.1")
		if !t.Nil("inet_addr", err) {
			return
		}
		b := a.As4()
		t.Equal("inet_addr", binary.BigEndian.Uint32(b[:]),
			uint32(0xc0a80101))
	})
	t.Run("tc_net_inet_ntoa_p", func(t *tc.T) {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], 0x0a000001)
		t.Equal("inet_ntoa", netip.AddrFrom4(b).String(), "10.0.0.1")
	})
	t.Run("tc_net_inet_pton_ipv6_p", func(t *tc.T) {
		a, err := netip.ParseAddr("::1")
		if t.Nil("inet_pton", err) {
			t.True("inet_pton", a.Is6() && a.IsLoopback(), a)
		}
	})
	t.Run("tc_net_inet_ntop_ipv6_p", func(t *tc.T) {
		a := netip.AddrFrom16([16]byte{0: 0xfe, 1: 0x80, 15: 1})
		t.Equal("inet_ntop", a.String(), "fe80::1")
	})
	t.Run("tc_net_inet_htons_p", func(t *tc.T) {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], 0x1234)
		t.Equal("htons", b, [2]byte{0x12, 0x34})
	})
	t.Run("tc_net_inet_addr_n", func(t *tc.T) {
		_, err := netip.ParseAddr("256.1.1.1")
		t.NonNil("inet_addr", err)
	})
	t.Run("tc_net_inet_pton_n", func(t *tc.T) {
		_, err := netip.ParseAddr("1:::2")
		t.NonNil("inet_pton", err)
	})
}
