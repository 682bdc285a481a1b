// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package networktc runs the network test cases selected for this build.
package networktc

import (
	"context"

	"github.com/platinasystems/goes-tc/internal/config"
	"github.com/platinasystems/goes-tc/internal/goes"
	"github.com/platinasystems/goes-tc/internal/suite"
	"github.com/platinasystems/goes-tc/tc/network"
)

// Main ignores its arguments. Failed checks don't make an error; they're
// only reported in the end banner. The error is that of an unusable
// build configuration or of a context done while waiting for another run.
func Main(ctx context.Context, args ...string) error {
	switch goes.Preemption(ctx) {
	case "":
	case "help":
		goes.Usage(ctx, "\n",
			"Run the network test cases selected for this build then\n",
			"print their total pass and fail count.\n")
		fallthrough
	default:
		return nil
	}
	cfg, err := config.Default()
	if err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	entries, err := suite.Select(network.Registry, cfg)
	if err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	if _, err = network.Suite(entries).Run(ctx, goes.OutputOf(ctx)); err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	return nil
}
