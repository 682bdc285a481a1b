// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package network provides the network test case entry points and their
// registry. Every case uses loopback endpoints only.
package network

import (
	"github.com/platinasystems/goes-tc/internal/suite"
)

// Registry is the build's catalog of network cases in run order.
var Registry = []suite.Entry{
	{Flag: "CONFIG_TC_NET_SOCKET", Name: "socket", Func: Socket},
	{Flag: "CONFIG_TC_NET_SETSOCKOPT", Name: "setsockopt", Func: Setsockopt},
	{Flag: "CONFIG_TC_NET_CONNECT", Name: "connect", Func: Connect},
	{Flag: "CONFIG_TC_NET_CLOSE", Name: "close", Func: Close},
	{Flag: "CONFIG_TC_NET_BIND", Name: "bind", Func: Bind},
	{Flag: "CONFIG_TC_NET_LISTEN", Name: "listen", Func: Listen},
	{Flag: "CONFIG_TC_NET_GETSOCKNAME", Name: "getsockname", Func: Getsockname},
	{Flag: "CONFIG_TC_NET_GETSOCKOPT", Name: "getsockopt", Func: Getsockopt},
	{Flag: "CONFIG_TC_NET_FCNTL", Name: "fcntl", Func: Fcntl},
	{Flag: "CONFIG_TC_NET_IOCTL", Name: "ioctl", Func: Ioctl},
	{Flag: "CONFIG_TC_NET_ACCEPT", Name: "accept", Func: Accept},
	{Flag: "CONFIG_TC_NET_SEND", Name: "send", Func: Send},
	{Flag: "CONFIG_TC_NET_RECV", Name: "recv", Func: Recv},
	{Flag: "CONFIG_TC_NET_GETPEERNAME", Name: "getpeername", Func: Getpeername},
	{Flag: "CONFIG_TC_NET_SENDTO", Name: "sendto", Func: Sendto},
	{Flag: "CONFIG_TC_NET_RECVFROM", Name: "recvfrom", Func: Recvfrom},
	{Flag: "CONFIG_TC_NET_SHUTDOWN", Name: "shutdown", Func: Shutdown},
	{Flag: "CONFIG_TC_NET_DHCPC", Name: "dhcpc", Func: Dhcpc},
	{Flag: "CONFIG_TC_NET_SELECT", Name: "select", Func: Select},
	{Flag: "CONFIG_TC_NET_INET", Name: "inet", Func: Inet},
	{Flag: "CONFIG_TC_NET_ETHER", Name: "ether", Func: Ether},
	{Flag: "CONFIG_TC_NET_NETDB", Name: "netdb", Func: Netdb},
	{Flag: "CONFIG_TC_NET_DUP", Name: "dup", Func: Dup},
	{Flag: "CONFIG_ITC_NET_CLOSE", Name: "itc close", Func: ITCClose},
	{Flag: "CONFIG_ITC_NET_DUP", Name: "itc dup", Func: ITCDup},
	{Flag: "CONFIG_ITC_NET_FCNTL", Name: "itc fcntl", Func: ITCFcntl},
	{Flag: "CONFIG_ITC_NET_LISTEN", Name: "itc listen", Func: ITCListen},
}

// Suite returns the network suite of the entries enabled by the
// configuration.
func Suite(entries []suite.Entry) *suite.Suite {
	return &suite.Suite{Name: "Network", Entries: entries}
}
