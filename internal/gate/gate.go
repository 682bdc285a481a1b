// Copyright © 2020-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gate serializes test suite runs.
//
// A Gate is a binary semaphore with a tally of runs that hold it. Only the
// semaphore excludes; the tally is bookkeeping for reports.
package gate

import (
	"context"
	"sync"
)

// Semaphore is a one slot channel; a send acquires, a receive releases.
type Semaphore chan struct{}

type Gate struct {
	sem Semaphore

	mu     sync.Mutex
	active int
}

func New() *Gate {
	return &Gate{sem: make(Semaphore, 1)}
}

// Acquire blocks until the gate is free or the context is done. There is
// no timeout other than that of the context.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	g.mu.Lock()
	g.active++
	g.mu.Unlock()
	return nil
}

// Release panics if the gate isn't held.
func (g *Gate) Release() {
	g.mu.Lock()
	if g.active == 0 {
		g.mu.Unlock()
		panic("gate: release of free gate")
	}
	g.active--
	g.mu.Unlock()
	<-g.sem
}

// Do runs f while holding the gate. The gate is released however f
// returns, a panic included; the panic then continues.
func (g *Gate) Do(ctx context.Context, f func()) error {
	if err := g.Acquire(ctx); err != nil {
		return err
	}
	defer g.Release()
	f()
	return nil
}

// Active is the number of runs holding the gate, 0 or 1.
func (g *Gate) Active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
