// Copyright © 2020-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDo(t *testing.T) {
	g := New()
	if n := g.Active(); n != 0 {
		t.Fatal("active", n)
	}
	err := g.Do(context.Background(), func() {
		if n := g.Active(); n != 1 {
			t.Error("active", n)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Active(); n != 0 {
		t.Fatal("active", n)
	}
}

func TestPanicRelease(t *testing.T) {
	g := New()
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Error("recovered", r)
			}
		}()
		g.Do(context.Background(), func() { panic("boom") })
	}()
	if n := g.Active(); n != 0 {
		t.Fatal("active", n)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Acquire(ctx); err != nil {
		t.Fatal("gate held after panic:", err)
	}
	g.Release()
}

func TestCancel(t *testing.T) {
	g := New()
	if err := g.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer g.Release()
	ctx, cancel := context.WithTimeout(context.Background(),
		10*time.Millisecond)
	defer cancel()
	if err := g.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected deadline, got", err)
	}
	if n := g.Active(); n != 1 {
		t.Fatal("active", n)
	}
}

func TestReleaseFree(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	New().Release()
}

func TestExclusion(t *testing.T) {
	const runners = 8
	type window struct{ begin, end time.Time }
	var (
		g       = New()
		mu      sync.Mutex
		windows []window
		wg      sync.WaitGroup
	)
	for i := 0; i < runners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Do(context.Background(), func() {
				var w window
				w.begin = time.Now()
				if n := g.Active(); n != 1 {
					t.Error("active", n)
				}
				time.Sleep(time.Millisecond)
				w.end = time.Now()
				mu.Lock()
				windows = append(windows, w)
				mu.Unlock()
			})
		}()
	}
	wg.Wait()
	if len(windows) != runners {
		t.Fatal("ran", len(windows))
	}
	for i, a := range windows {
		for j, b := range windows {
			if i != j && a.begin.Before(b.end) && b.begin.Before(a.end) {
				t.Fatalf("windows %d and %d overlap", i, j)
			}
		}
	}
	if n := g.Active(); n != 0 {
		t.Fatal("active", n)
	}
}
