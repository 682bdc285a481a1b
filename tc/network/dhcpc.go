// Copyright © 2018-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package network

import (
	"encoding/binary"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/d2g/dhcp4"
	"github.com/d2g/dhcp4client"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/goes-tc/tc"
)

const (
	dhcpLease    = 2 * time.Hour
	dhcpTimeout  = 200 * time.Millisecond
	dhcpAttempts = 3
)

var (
	dhcpServer = net.IPv4(192, 168, 0, 1).To4()
	dhcpOffer  = net.IPv4(192, 168, 0, 100).To4()
	dhcpMask   = []byte{255, 255, 255, 0}
	dhcpMAC    = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

	errDhcpTimeout = errors.New("i/o timeout")
)

// responder is an in process dhcp server that the client under test
// reaches through its connection interface instead of a socket.
type responder struct {
	mu       sync.Mutex
	drop     int
	released int
	replies  chan []byte
	timeout  time.Duration
}

func newResponder(drop int) *responder {
	return &responder{
		drop:    drop,
		replies: make(chan []byte, 4),
		timeout: dhcpTimeout,
	}
}

func (r *responder) options() []dhcp4.Option {
	return []dhcp4.Option{
		{Code: dhcp4.OptionSubnetMask, Value: dhcpMask},
		{Code: dhcp4.OptionRouter, Value: []byte(dhcpServer)},
		{Code: dhcp4.OptionDomainNameServer, Value: []byte(dhcpServer)},
	}
}

func (r *responder) Write(b []byte) error {
	req := dhcp4.Packet(append([]byte(nil), b...))
	mt := req.ParseOptions()[dhcp4.OptionDHCPMessageType]
	if len(mt) != 1 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch dhcp4.MessageType(mt[0]) {
	case dhcp4.Discover:
		if r.drop > 0 {
			r.drop--
			return nil
		}
		r.replies <- dhcp4.ReplyPacket(req, dhcp4.Offer, dhcpServer,
			dhcpOffer, dhcpLease, r.options())
	case dhcp4.Request:
		r.replies <- dhcp4.ReplyPacket(req, dhcp4.ACK, dhcpServer,
			dhcpOffer, dhcpLease, r.options())
	case dhcp4.Release:
		r.released++
	}
	return nil
}

func (r *responder) ReadFrom() ([]byte, net.IP, error) {
	r.mu.Lock()
	timeout := r.timeout
	r.mu.Unlock()
	tmr := time.NewTimer(timeout)
	defer tmr.Stop()
	select {
	case b := <-r.replies:
		return b, dhcpServer, nil
	case <-tmr.C:
		return nil, nil, errDhcpTimeout
	}
}

func (r *responder) SetReadTimeout(d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d <= 0 || d > dhcpTimeout {
		d = dhcpTimeout
	}
	r.timeout = d
	return nil
}

func (r *responder) Close() error { return nil }

func (r *responder) Released() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}

// request retries until acknowledged or out of attempts.
func request(cl *dhcp4client.Client) (ack dhcp4.Packet, err error) {
	b := &backoff.Backoff{
		Min:    10 * time.Millisecond,
		Max:    100 * time.Millisecond,
		Factor: 2,
	}
	for i := 0; i < dhcpAttempts; i++ {
		var success bool
		success, ack, err = cl.Request()
		if err == nil && success {
			return ack, nil
		}
		if err == nil {
			err = errors.New("not acknowledged")
		}
		time.Sleep(b.Duration())
	}
	return nil, err
}

// Dhcpc checks the dhcp client through discovery, request, lease and
// release with an in process server. The server ignores the first
// discovery so that the client must retry.
func Dhcpc(t *tc.T) {
	srv := newResponder(1)
	cl, err := dhcp4client.New(dhcp4client.HardwareAddr(dhcpMAC),
		dhcp4client.Connection(srv),
		dhcp4client.Timeout(dhcpTimeout))
	t.Run("tc_net_dhcpc_open_p", func(t *tc.T) {
		t.Nil("dhcpc_open", err)
	})
	if err != nil {
		return
	}
	defer cl.Close()
	var ack dhcp4.Packet
	t.Run("tc_net_dhcpc_request_p", func(t *tc.T) {
		ack, err = request(cl)
		if t.Nil("dhcpc_request", err) {
			t.True("dhcpc_request", ack.YIAddr().Equal(dhcpOffer),
				"address ", ack.YIAddr())
		}
	})
	if ack == nil {
		return
	}
	t.Run("tc_net_dhcpc_lease_p", func(t *tc.T) {
		opts := ack.ParseOptions()
		lt := opts[dhcp4.OptionIPAddressLeaseTime]
		if !t.Equal("dhcpc_lease", len(lt), 4) {
			return
		}
		t.Equal("dhcpc_lease", binary.BigEndian.Uint32(lt),
			uint32(dhcpLease/time.Second))
		t.Equal("dhcpc_netmask", []byte(opts[dhcp4.OptionSubnetMask]),
			dhcpMask)
	})
	t.Run("tc_net_dhcpc_release_p", func(t *tc.T) {
		if t.Nil("dhcpc_release", cl.Release(ack)) {
			t.Equal("dhcpc_release", srv.Released(), 1)
		}
	})
	t.Run("tc_net_dhcpc_no_server_n", func(t *tc.T) {
		mute := newResponder(dhcpAttempts)
		cl, err := dhcp4client.New(dhcp4client.HardwareAddr(dhcpMAC),
			dhcp4client.Connection(mute),
			dhcp4client.Timeout(dhcpTimeout))
		if !t.Nil("dhcpc_open", err) {
			return
		}
		defer cl.Close()
		_, err = request(cl)
		t.NonNil("dhcpc_request", err)
	})
}
