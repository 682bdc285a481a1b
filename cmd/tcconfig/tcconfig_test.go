// Copyright © 2018-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package tcconfig

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinasystems/goes-tc/internal/goes"
)

func TestMain(t *testing.T) {
	w := new(strings.Builder)
	ctx := goes.WithOutput(context.Background(), w)
	ctx = goes.WithPath(ctx, "tc-config")
	dir := t.TempDir()
	file := func(name, content string) string {
		fn := filepath.Join(dir, name)
		if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return fn
	}
	try := func(t *testing.T, want string, args ...string) {
		t.Helper()
		w.Reset()
		if err := Main(ctx, args...); err != nil {
			t.Error(err)
		} else if got := w.String(); got != want {
			t.Errorf("%q != %q", got, want)
		} else {
			t.Log(got)
		}
	}
	fail := func(t *testing.T, want string, args ...string) {
		t.Helper()
		w.Reset()
		err := Main(ctx, args...)
		if err == nil {
			t.Fatal("no error")
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q doesn't contain %q", err, want)
		}
	}
	t.Run("build", func(t *testing.T) {
		w.Reset()
		if err := Main(ctx); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(w.String()), "\n")
		if n := len(lines); n != 27 {
			t.Fatal("lines", n)
		}
		if want := "CONFIG_TC_NET_SOCKET=y socket"; lines[0] != want {
			t.Errorf("%q != %q", lines[0], want)
		}
		if want := "CONFIG_ITC_NET_LISTEN=y itc listen"; lines[26] != want {
			t.Errorf("%q != %q", lines[26], want)
		}
	})
	t.Run("file", func(t *testing.T) {
		fn := file("some.yaml", `
CONFIG_TC_NET_LISTEN: true
CONFIG_TC_NET_SOCKET: true
CONFIG_TC_NET_BIND: false
`)
		try(t, "CONFIG_TC_NET_SOCKET=y socket\n"+
			"CONFIG_TC_NET_LISTEN=y listen\n",
			"-f", fn)
	})
	t.Run("all", func(t *testing.T) {
		fn := file("one.yaml", "CONFIG_ITC_NET_DUP: true\n")
		w.Reset()
		if err := Main(ctx, "-a", "-f", fn); err != nil {
			t.Fatal(err)
		}
		got := w.String()
		for _, want := range []string{
			"CONFIG_TC_NET_SOCKET=n socket\n",
			"CONFIG_ITC_NET_DUP=y itc dup\n",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("%q doesn't contain %q", got, want)
			}
		}
	})
	t.Run("no-entry", func(t *testing.T) {
		fail(t, "no entry point", "-f",
			file("mdns.yaml", "CONFIG_TC_NET_MDNS: true\n"))
	})
	t.Run("invalid", func(t *testing.T) {
		fail(t, "validation failed", "-f",
			file("bad.yaml", "CONFIG_TC_NET_SOCKET: maybe\n"))
	})
	t.Run("unexpected", func(t *testing.T) {
		fail(t, "tc-config: [extra]: unexpected", "extra")
	})
}
