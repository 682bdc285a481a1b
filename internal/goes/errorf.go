// Copyright © 2015-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"fmt"
	"strings"
)

// ErrorfWith prefaces the formatted error with the context path, e.g.
// "goes-tc tc-config: ...". A %w verb wraps as with fmt.Errorf.
func ErrorfWith(ctx context.Context, format string, args ...interface{}) error {
	path := strings.Join(PathOf(ctx), " ")
	return fmt.Errorf(path+": "+format, args...)
}
