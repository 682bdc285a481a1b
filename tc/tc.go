// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package tc provides what every test case entry point shares: the run
// result it counts to, the assertions that count, and the gate that
// serializes suite runs.
package tc

import (
	"fmt"
	"io"
	"reflect"

	"github.com/platinasystems/goes-tc/internal/gate"
	"github.com/platinasystems/log"
)

// Sem is shared by every suite driver of the process.
var Sem = gate.New()

// Working is the number of suite runs holding Sem.
func Working() int { return Sem.Active() }

// Result is the pass and fail count of one run.
type Result struct {
	Pass, Fail int
}

func (r *Result) Reset() { *r = Result{} }

// Func is a test case entry point. It returns nothing; it counts each of
// its checks as a pass or a fail of the run.
type Func func(*T)

// T is the entry point's handle on its run.
type T struct {
	name   string
	res    *Result
	w      io.Writer
	failed bool
}

// New returns the handle of the named case counting to res and printing
// diagnostics to w.
func New(name string, res *Result, w io.Writer) *T {
	if w == nil {
		w = io.Discard
	}
	return &T{name: name, res: res, w: w}
}

func (t *T) Name() string { return t.name }

// Result is a snapshot of the run's counters.
func (t *T) Result() Result { return *t.res }

func (t *T) Failed() bool { return t.failed }

func (t *T) Logf(format string, args ...interface{}) {
	fmt.Fprintf(t.w, "[%s] ", t.name)
	fmt.Fprintf(t.w, format, args...)
	fmt.Fprintln(t.w)
}

// Run counts one check. The check passes if f returns without failing an
// assertion.
func (t *T) Run(name string, f func(*T)) bool {
	sub := &T{name: name, res: t.res, w: t.w}
	f(sub)
	if sub.failed {
		t.failed = true
		return false
	}
	t.res.Pass++
	return true
}

// Fail counts the check as failed. Only the first failure of a check is
// counted and reported.
func (t *T) Fail(api string, detail interface{}) {
	if t.failed {
		return
	}
	t.failed = true
	t.res.Fail++
	fmt.Fprintf(t.w, "\n[%s] FAIL, %s: %v\n", t.name, api, detail)
	log.Print("err", t.name, ": ", api, ": ", detail)
}

// Nil asserts that api returned without error.
func (t *T) Nil(api string, err error) bool {
	if err != nil {
		t.Fail(api, err)
		return false
	}
	return true
}

// NonNil asserts that api failed.
func (t *T) NonNil(api string, err error) bool {
	if err == nil {
		t.Fail(api, "unexpected success")
		return false
	}
	return true
}

// True asserts a condition; args describe it on failure.
func (t *T) True(api string, ok bool, args ...interface{}) bool {
	if !ok {
		detail := "not true"
		if len(args) > 0 {
			detail = fmt.Sprint(args...)
		}
		t.Fail(api, detail)
		return false
	}
	return true
}

// Equal asserts got equals want.
func (t *T) Equal(api string, got, want interface{}) bool {
	if !reflect.DeepEqual(got, want) {
		t.Fail(api, fmt.Sprintf("%v != %v", got, want))
		return false
	}
	return true
}
