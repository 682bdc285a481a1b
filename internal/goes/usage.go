// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"flag"
)

var (
	usageMark int
	usageKey  = &usageMark
)

// Usage prints this formatted text.
//
//	usage: PATH ARGS...
//
// Where PATH is the space separated elements pushed onto the context less
// any "help" preemption. The ARGS are printed without separation; a
// *flag.FlagSet prints its defaults and a Selection its sorted keys.
func Usage(ctx context.Context, args ...interface{}) {
	o := OutputOf(ctx)
	o.Print("usage:")
	for i, s := range PathOf(ctx) {
		if i == 1 && s == "help" {
			continue
		}
		o.Print(" ", s)
	}
	end := "\n"
	if len(args) == 0 {
		o.Print(end)
		return
	}
	o.Print(" ")
	for _, v := range args {
		switch t := v.(type) {
		case *flag.FlagSet:
			end = ""
			t.SetOutput(o)
			t.PrintDefaults()
		case Selection:
			end = ""
			for _, s := range t.Keys() {
				if len(s) > 0 {
					o.Println(" ", s)
				}
			}
		default:
			o.Print(v)
		}
	}
	o.Print(end)
}

func UsageOf(ctx context.Context) func() {
	if v := ctx.Value(usageKey); v != nil {
		return v.(func())
	}
	return nil
}

func WithUsage(ctx context.Context, f func()) context.Context {
	return context.WithValue(ctx, usageKey, f)
}
