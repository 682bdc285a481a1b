// Copyright © 2018-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(cfg); n != 27 {
		t.Error("flags", n)
	}
	for _, flag := range []string{
		"CONFIG_TC_NET_SOCKET",
		"CONFIG_TC_NET_DHCPC",
		"CONFIG_ITC_NET_LISTEN",
	} {
		if !cfg.Enabled(flag) {
			t.Error(flag, "disabled")
		}
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
CONFIG_TC_NET_SOCKET: true
CONFIG_TC_NET_BIND: false
CONFIG_ITC_NET_DUP: true
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"CONFIG_ITC_NET_DUP",
		"CONFIG_TC_NET_BIND",
		"CONFIG_TC_NET_SOCKET",
	}
	if diff := cmp.Diff(want, cfg.Names()); diff != "" {
		t.Error(diff)
	}
	if cfg.Enabled("CONFIG_TC_NET_BIND") {
		t.Error("bind enabled")
	}
	if cfg.Enabled("CONFIG_TC_NET_LISTEN") {
		t.Error("absent listen enabled")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg) != 0 {
		t.Error(cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	try := func(t *testing.T, text, want string) {
		t.Helper()
		_, err := Parse([]byte(text))
		if err == nil {
			t.Fatal("no error")
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q doesn't contain %q", err, want)
		}
	}
	t.Run("unknown-flag", func(t *testing.T) {
		try(t, "CONFIG_FS_MOUNT: true\n", "validation failed")
	})
	t.Run("non-boolean", func(t *testing.T) {
		try(t, "CONFIG_TC_NET_SOCKET: 1\n", "validation failed")
	})
	t.Run("not-a-map", func(t *testing.T) {
		try(t, "- CONFIG_TC_NET_SOCKET\n", "config:")
	})
}
