// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package goes selects and runs the commands of a test machine.
package goes

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
)

var Prog = filepath.Base(os.Args[0])

type Func = func(context.Context, ...string) error

type Selection map[string]Func

var BuiltIn = Selection{
	"build-info": func(ctx context.Context, args ...string) error {
		if bi, ok := debug.ReadBuildInfo(); ok {
			OutputOf(ctx).Print(bi)
		}
		return nil
	},
	"version": func(ctx context.Context, args ...string) error {
		if bi, ok := debug.ReadBuildInfo(); ok {
			OutputOf(ctx).Println(bi.Main.Version)
		}
		return nil
	},
}

func (m Selection) Keys() []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Main runs the command named by os.Args[0], if selected, or by the first
// non-option argument.
func (m Selection) Main() {
	StyleLog()
	ctx, stop := signal.NotifyContext(context.Background(),
		TerminationSignals...)
	defer stop()
	for k, v := range BuiltIn {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	ctx = WithOutput(ctx, os.Stdout)
	ctx = WithPath(ctx, Prog)
	timeout := flag.Duration("timeout", 0,
		"Abandon a command still waiting for the test gate after limit.")
	flag.CommandLine.Init(Prog, flag.ContinueOnError)
	flag.Usage = func() {
		Usage(ctx, "COMMAND\n",
			"\n",
			flag.CommandLine,
			m)
	}
	ctx = WithUsage(ctx, flag.Usage)
	if err := flag.CommandLine.Parse(os.Args[1:]); err == flag.ErrHelp {
		return
	}
	if *timeout != 0 {
		t, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()
		ctx = t
	}
	args := flag.Args()
	ctx, args = Preempt(ctx, args)
	f, found := m[Prog] // e.g. network-tc symlink
	if !found {
		f = m.Select
	}
	defer recovery()
	if err := f(ctx, args...); err != nil {
		PlainLog()
		Fatal(err)
	}
}

func (m Selection) Select(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		switch Preemption(ctx) {
		case "":
			if f, found := m[""]; found {
				return f(ctx)
			}
			return fmt.Errorf("incomplete")
		case "complete":
			m.complete(ctx)
		case "help":
			m.usage(ctx)
		}
		return nil
	}
	f, found := m[args[0]]
	if !found {
		switch Preemption(ctx) {
		case "complete":
			m.complete(ctx, args...)
			return nil
		case "help":
			m.usage(ctx)
			return nil
		}
		return fmt.Errorf("%s: command not found", args[0])
	}
	ctx = WithPath(ctx, args[0])
	return f(ctx, args[1:]...)
}

func (m Selection) complete(ctx context.Context, args ...string) {
	o := OutputOf(ctx)
	var arg string
	if len(args) > 0 {
		arg = args[len(args)-1]
	}
	for _, s := range m.Keys() {
		if len(s) > 0 && strings.HasPrefix(s, arg) {
			o.Println(s)
		}
	}
}

func (m Selection) usage(ctx context.Context) {
	if usage := UsageOf(ctx); usage != nil {
		usage()
	} else {
		Usage(ctx, "COMMAND\n", m)
	}
}

// recovery prints the panic with a trace of the non-runtime frames then
// exits. A panicking test case gets here after its gate is released.
func recovery() {
	r := recover()
	if r == nil {
		return
	}
	sb := new(strings.Builder)
	fmt.Fprintln(sb, r)
	pcs := make([]uintptr, 64)
	if n := runtime.Callers(2, pcs); n > 0 {
		frames := runtime.CallersFrames(pcs[:n])
		for {
			f, more := frames.Next()
			if len(f.Function) == 0 {
				break
			}
			if !strings.Contains(f.File, "runtime/") {
				fmt.Fprint(sb, "    ", f.Function, "()\n")
				fmt.Fprint(sb, "        ", f.File, ":", f.Line, "\n")
			}
			if !more {
				break
			}
		}
	}
	PlainLog()
	Fatal(sb)
}
