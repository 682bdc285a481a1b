// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"net"

	"github.com/platinasystems/goes-tc/tc"
)

// Ether checks conversions of ethernet addresses.
func Ether(t *tc.T) {
	t.Run("tc_net_ether_aton_p", func(t *tc.T) {
		mac, err := net.ParseMAC("00:1b:44:11:3a:b7")
		if t.Nil("ether_aton", err) {
			t.Equal("ether_aton", []byte(mac),
				[]byte{0x00, 0x1b, 0x44, 0x11, 0x3a, 0xb7})
		}
	})
	t.Run("tc_net_ether_ntoa_p", func(t *tc.T) {
		mac := net.HardwareAddr{0x02, 0x46, 0x8a, 0xce, 0xf0, 0x01}
		t.Equal("ether_ntoa", mac.String(), "02:46:8a:ce:f0:01")
	})
	t.Run("tc_net_ether_aton_n", func(t *tc.T) {
		_, err := net.ParseMAC("00:1b:44")
		t.NonNil("ether_aton", err)
	})
}
