// Copyright © 2018-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package tcconfig prints the test case selection of a configuration.
package tcconfig

import (
	"context"
	"os"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/goes-tc/internal/config"
	"github.com/platinasystems/goes-tc/internal/goes"
	"github.com/platinasystems/goes-tc/internal/suite"
	"github.com/platinasystems/goes-tc/tc/network"
	"github.com/platinasystems/parms"
)

const usage = `[-a] [-f FILE]

Print the network test cases selected by the build configuration, in run
order, as FLAG=y NAME.

	-a	also print unselected cases as FLAG=n NAME
	-f FILE	check a YAML configuration FILE instead of the build's
`

func Main(ctx context.Context, args ...string) error {
	switch goes.Preemption(ctx) {
	case "":
	case "help":
		goes.Usage(ctx, usage)
		fallthrough
	default:
		return nil
	}
	flag, args := flags.New(args, "-a")
	parm, args := parms.New(args, "-f")
	if len(args) > 0 {
		return goes.ErrorfWith(ctx, "%v: unexpected", args)
	}
	cfg, err := load(parm.ByName["-f"])
	if err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	if _, err = suite.Select(network.Registry, cfg); err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	o := goes.OutputOf(ctx)
	for _, e := range network.Registry {
		if cfg.Enabled(e.Flag) {
			o.Printf("%s=y %s\n", e.Flag, e.Name)
		} else if flag.ByName["-a"] {
			o.Printf("%s=n %s\n", e.Flag, e.Name)
		}
	}
	return nil
}

func load(fn string) (config.Config, error) {
	if len(fn) == 0 {
		return config.Default()
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return config.Parse(b)
}
