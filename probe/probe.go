// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"time"

	"github.com/siemens/netsweep/types"
)

// Prober is the pluggable capability of checking one single target address.
// The sweep engine is agnostic to the kind of check plugged in, be it a TCP
// connect, an ICMP echo, or whatever else.
//
// Probe returns exactly one terminal verdict ([types.Up], [types.Down], or
// [types.TimedOut]), together with the measured round-trip time for
// responsive targets and optional error details for unresponsive ones.
// Implementations must honor the specified context and return
// [types.TimedOut] instead of blocking indefinitely; they must never leak an
// I/O error as anything but a verdict. Probe must be safe for concurrent use,
// sharing only read-only configuration between invocations.
type Prober interface {
	Probe(ctx context.Context, addr string) (types.Verdict, time.Duration, error)
}
