// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"strings"
	"testing"

	"github.com/d2g/dhcp4client"
	"github.com/google/go-cmp/cmp"
	"github.com/platinasystems/goes-tc/internal/config"
	"github.com/platinasystems/goes-tc/internal/suite"
	"github.com/platinasystems/goes-tc/tc"
)

func TestRegistry(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	entries, err := suite.Select(Registry, cfg)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Flag)
	}
	want := []string{
		"CONFIG_TC_NET_SOCKET",
		"CONFIG_TC_NET_SETSOCKOPT",
		"CONFIG_TC_NET_CONNECT",
		"CONFIG_TC_NET_CLOSE",
		"CONFIG_TC_NET_BIND",
		"CONFIG_TC_NET_LISTEN",
		"CONFIG_TC_NET_GETSOCKNAME",
		"CONFIG_TC_NET_GETSOCKOPT",
		"CONFIG_TC_NET_FCNTL",
		"CONFIG_TC_NET_IOCTL",
		"CONFIG_TC_NET_ACCEPT",
		"CONFIG_TC_NET_SEND",
		"CONFIG_TC_NET_RECV",
		"CONFIG_TC_NET_GETPEERNAME",
		"CONFIG_TC_NET_SENDTO",
		"CONFIG_TC_NET_RECVFROM",
		"CONFIG_TC_NET_SHUTDOWN",
		"CONFIG_TC_NET_DHCPC",
		"CONFIG_TC_NET_SELECT",
		"CONFIG_TC_NET_INET",
		"CONFIG_TC_NET_ETHER",
		"CONFIG_TC_NET_NETDB",
		"CONFIG_TC_NET_DUP",
		"CONFIG_ITC_NET_CLOSE",
		"CONFIG_ITC_NET_DUP",
		"CONFIG_ITC_NET_FCNTL",
		"CONFIG_ITC_NET_LISTEN",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	seen := make(map[string]bool)
	for _, e := range Registry {
		if seen[e.Name] {
			t.Error("duplicate", e.Name)
		}
		seen[e.Name] = true
		if e.Func == nil {
			t.Error(e.Name, "has no entry point")
		}
	}
}

func TestCases(t *testing.T) {
	try := func(t *testing.T, f tc.Func, pass int) {
		t.Helper()
		var res tc.Result
		w := new(strings.Builder)
		f(tc.New(t.Name(), &res, w))
		if res.Fail != 0 || res.Pass != pass {
			t.Errorf("%+v\n%s", res, w)
		}
	}
	for _, x := range []struct {
		name string
		f    tc.Func
		pass int
	}{
		{"socket", Socket, 4},
		{"setsockopt", Setsockopt, 3},
		{"close", Close, 2},
		{"bind", Bind, 3},
		{"listen", Listen, 2},
		{"getsockname", Getsockname, 2},
		{"getsockopt", Getsockopt, 4},
		{"fcntl", Fcntl, 3},
		{"accept", Accept, 3},
		{"send", Send, 2},
		{"recv", Recv, 2},
		{"getpeername", Getpeername, 2},
		{"sendto", Sendto, 2},
		{"recvfrom", Recvfrom, 3},
		{"shutdown", Shutdown, 3},
		{"dhcpc", Dhcpc, 5},
		{"inet", Inet, 7},
		{"ether", Ether, 3},
		{"dup", Dup, 2},
		{"itc-dup", ITCDup, 3},
		{"itc-fcntl", ITCFcntl, 3},
		{"itc-listen", ITCListen, 4},
	} {
		t.Run(x.name, func(t *testing.T) {
			try(t, x.f, x.pass)
		})
	}
}

func TestResponderDrop(t *testing.T) {
	srv := newResponder(1)
	cl, err := dhcp4client.New(dhcp4client.HardwareAddr(dhcpMAC),
		dhcp4client.Connection(srv),
		dhcp4client.Timeout(dhcpTimeout))
	if err != nil {
		t.Fatal(err)
	}
	defer cl.Close()
	if ok, _, err := cl.Request(); ok || err == nil {
		t.Fatal("dropped discovery was answered")
	}
	ok, ack, err := cl.Request()
	if err != nil || !ok {
		t.Fatal(ok, err)
	}
	if !ack.YIAddr().Equal(dhcpOffer) {
		t.Error(ack.YIAddr())
	}
	if n := srv.Released(); n != 0 {
		t.Error("released", n)
	}
}
