// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"fmt"
	"io"
)

var (
	outputMark int
	outputKey  = &outputMark
)

func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return Output{ctx, w}
}

// Output is the context writer of banners and diagnostics. A nil writer
// discards.
type Output struct {
	context.Context
	w io.Writer
}

func OutputOf(ctx context.Context) Output {
	if v := ctx.Value(outputKey); v != nil {
		return v.(Output)
	}
	return Output{ctx, nil}
}

func (o Output) Print(args ...interface{}) {
	fmt.Fprint(o, args...)
}

func (o Output) Printf(format string, args ...interface{}) {
	fmt.Fprintf(o, format, args...)
}

func (o Output) Println(args ...interface{}) {
	fmt.Fprintln(o, args...)
}

func (o Output) Value(k interface{}) interface{} {
	if k == outputKey {
		return o
	}
	return o.Context.Value(k)
}

// Write continues after context cancellation; a test run that started
// must still print its end banner.
func (o Output) Write(data []byte) (int, error) {
	if o.w == nil {
		return len(data), nil
	}
	return o.w.Write(data)
}
