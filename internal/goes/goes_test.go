// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSelect(t *testing.T) {
	w := new(strings.Builder)
	var path []string
	m := Selection{
		"network-tc": func(ctx context.Context, args ...string) error {
			path = PathOf(ctx)
			OutputOf(ctx).Print(strings.Join(args, " "))
			return nil
		},
		"tc-config": func(ctx context.Context, args ...string) error {
			if Preemption(ctx) == "help" {
				Usage(ctx, "[-a]")
				return nil
			}
			return ErrorfWith(ctx, "%w", errors.ErrUnsupported)
		},
	}
	try := func(t *testing.T, want string, args ...string) {
		t.Helper()
		w.Reset()
		ctx := WithOutput(context.Background(), w)
		ctx = WithPath(ctx, "goes-tc")
		ctx, args = Preempt(ctx, args)
		if err := m.Select(ctx, args...); err != nil {
			t.Error(err)
		} else if got := w.String(); got != want {
			t.Errorf("%q != %q", got, want)
		}
	}
	t.Run("command", func(t *testing.T) {
		try(t, "a b", "network-tc", "a", "b")
		if got := strings.Join(path, " "); got != "goes-tc network-tc" {
			t.Error(got)
		}
	})
	t.Run("help", func(t *testing.T) {
		try(t, "usage: goes-tc tc-config [-a]\n", "help", "tc-config")
	})
	t.Run("complete", func(t *testing.T) {
		try(t, "tc-config\n", "complete", "tc")
	})
	t.Run("error", func(t *testing.T) {
		ctx := WithPath(context.Background(), "goes-tc")
		err := m.Select(ctx, "tc-config")
		if !errors.Is(err, errors.ErrUnsupported) {
			t.Fatal(err)
		}
		want := "goes-tc tc-config: unsupported operation"
		if err.Error() != want {
			t.Errorf("%q != %q", err, want)
		}
	})
	t.Run("not-found", func(t *testing.T) {
		err := m.Select(context.Background(), "kernel-tc")
		if err == nil || err.Error() != "kernel-tc: command not found" {
			t.Error(err)
		}
	})
}

func TestOutput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := new(strings.Builder)
	o := OutputOf(WithOutput(ctx, w))
	cancel()
	o.Printf("%s TC End\n", "Network")
	if got, want := w.String(), "Network TC End\n"; got != want {
		t.Errorf("%q != %q", got, want)
	}
	OutputOf(context.Background()).Println("discarded")
}
