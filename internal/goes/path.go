// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import "context"

var (
	pathMark int
	pathKey  = &pathMark
)

// PathOf returns the command names pushed onto the context, outermost
// first.
func PathOf(ctx context.Context) []string {
	var l []string
	for v := ctx.Value(pathKey); v != nil; v = ctx.Value(pathKey) {
		p := v.(path)
		l = append([]string{p.name}, l...)
		ctx = p.Context
	}
	return l
}

func WithPath(ctx context.Context, name string) context.Context {
	return path{ctx, name}
}

type path struct {
	context.Context
	name string
}

func (p path) Value(k interface{}) interface{} {
	if k == pathKey {
		return p
	}
	return p.Context.Value(k)
}
