// Copyright © 2016-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is the regression test machine.
package main

import (
	"github.com/platinasystems/goes-tc/cmd/networktc"
	"github.com/platinasystems/goes-tc/cmd/tcconfig"
	"github.com/platinasystems/goes-tc/internal/goes"
)

func main() {
	goes.Selection{
		"network-tc": networktc.Main,
		"tc-config":  tcconfig.Main,
	}.Main()
}
