// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package suite runs an ordered list of test case entry points as one
// gated run and reports the aggregate pass and fail count.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/platinasystems/goes-tc/internal/config"
	"github.com/platinasystems/goes-tc/internal/gate"
	"github.com/platinasystems/goes-tc/tc"
	"github.com/platinasystems/log"
)

var ErrNoEntry = errors.New("no entry point")

// Entry pairs a feature flag with the entry point it selects.
type Entry struct {
	Flag string
	Name string
	Func tc.Func
}

func (e Entry) String() string { return e.Name }

// Select returns the registry entries enabled by cfg in registry order.
// An enabled flag without an entry is an error.
func Select(registry []Entry, cfg config.Config) ([]Entry, error) {
	known := make(map[string]bool, len(registry))
	var entries []Entry
	for _, e := range registry {
		known[e.Flag] = true
		if cfg.Enabled(e.Flag) {
			entries = append(entries, e)
		}
	}
	for _, flag := range cfg.Names() {
		if cfg.Enabled(flag) && !known[flag] {
			return nil, fmt.Errorf("%s: %w", flag, ErrNoEntry)
		}
	}
	return entries, nil
}

type Phase int

const (
	Idle Phase = iota
	GateAcquired
	CountersReset
	Running
	Reported
)

var phaseNames = []string{
	Idle:          "idle",
	GateAcquired:  "gate-acquired",
	CountersReset: "counters-reset",
	Running:       "running",
	Reported:      "reported",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprint("phase(", int(p), ")")
}

type Suite struct {
	// Name precedes "TC" in the banners, e.g. "Network".
	Name    string
	// Gate is tc.Sem if nil.
	Gate    *gate.Gate
	Entries []Entry

	mu    sync.Mutex
	phase Phase
}

func (s *Suite) String() string { return s.Name }

func (s *Suite) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Suite) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// Run waits for the gate then invokes each entry in order, printing the
// start and end banners to w. Once the gate is held the run isn't
// interruptible; the only error is a context done while waiting.
//
// An entry point that panics isn't recovered, but the gate is released
// before the panic continues.
func (s *Suite) Run(ctx context.Context, w io.Writer) (tc.Result, error) {
	var res tc.Result
	g := s.Gate
	if g == nil {
		g = tc.Sem
	}
	if w == nil {
		w = io.Discard
	}
	if err := g.Acquire(ctx); err != nil {
		return res, err
	}
	defer g.Release()
	defer s.setPhase(Idle)
	s.setPhase(GateAcquired)

	res.Reset()
	s.setPhase(CountersReset)

	log.Printf("info", "%s tc: start, %d entries", s.Name, len(s.Entries))
	fmt.Fprintf(w, "\n########## %s TC Start ##########\n", s.Name)

	s.setPhase(Running)
	for _, e := range s.Entries {
		e.Func(tc.New(e.Name, &res, w))
	}

	fmt.Fprintf(w, "\n########## %s TC End [PASS : %d, FAIL : %d] ##########\n",
		s.Name, res.Pass, res.Fail)
	s.setPhase(Reported)
	log.Printf("info", "%s tc: end, pass %d, fail %d",
		s.Name, res.Pass, res.Fail)
	return res, nil
}
