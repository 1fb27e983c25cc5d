// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/siemens/netsweep/types"

	"github.com/go-ping/ping"
)

// ICMPProber probes targets by pinging them. A target is considered to be
// [types.Up] if the percentage of successfully reflected pings reaches the
// prober's threshold; this allows for some legroom on lossy paths. The
// round-trip time of responsive targets is the average RTT over all received
// replies.
type ICMPProber struct {
	count               int           // number of pings to send.
	interval            time.Duration // distance between pings.
	deadline            time.Duration // overall per-target deadline; zero derives it from count and interval.
	thresholdPercentage uint          // percentage of successful pings for an up target.
	unprivileged        bool          // if true, uses UDP-based pings instead of privileged ICMPs.
}

// ICMPOption can be passed to NewICMP when creating new ICMPProber objects.
type ICMPOption func(*ICMPProber)

// NewICMP returns a new [ICMPProber]. It defaults to pinging 3 times at
// intervals of 1s between each ping, with an up-threshold of 50(%).
//
// The prober can be configured during creation using several options:
//   - [WithCount]
//   - [WithInterval]
//   - [WithDeadline]
//   - [WithThresholdPercentage]
//   - [AsUnprivileged]
func NewICMP(options ...ICMPOption) *ICMPProber {
	prober := &ICMPProber{
		count:               3,
		interval:            time.Second,
		thresholdPercentage: 50,
	}
	for _, opt := range options {
		opt(prober)
	}
	return prober
}

// WithCount sets the number of pings for testing reachability of a target.
func WithCount(count uint) ICMPOption {
	return func(p *ICMPProber) {
		p.count = int(count)
	}
}

// WithInterval sets the interval between consecutive pings.
func WithInterval(interval time.Duration) ICMPOption {
	return func(p *ICMPProber) {
		p.interval = interval
	}
}

// WithDeadline caps the overall time probing a single target may take,
// regardless of the configured ping count and interval. A zero deadline keeps
// the prober's own bound derived from count and interval.
func WithDeadline(deadline time.Duration) ICMPOption {
	return func(p *ICMPProber) {
		p.deadline = deadline
	}
}

// AsUnprivileged tells the ICMPProber to carry out unprivileged pings using
// UDP instead of ICMP packets.
func AsUnprivileged() ICMPOption {
	return func(p *ICMPProber) {
		p.unprivileged = true
	}
}

// WithThresholdPercentage takes a percentage between 0 and 100 that specifies
// the percentage of successful ping responses required in order to consider
// the pinged target to be up.
func WithThresholdPercentage(threshold uint) ICMPOption {
	if threshold > 100 {
		panic(fmt.Errorf("ICMPProber: threshold must be a percentage between 0 <= threshold <= 100, got: %d",
			threshold))
	}
	return func(p *ICMPProber) {
		p.thresholdPercentage = threshold
	}
}

// Probe pings the specified target address. The probing is automatically
// aborted when the specified context either meets its deadline or gets
// cancelled; the target then is considered to have timed out.
func (p *ICMPProber) Probe(ctx context.Context, addr string) (types.Verdict, time.Duration, error) {
	if p.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.deadline)
		defer cancel()
	}
	pinger, err := ping.NewPinger(addr)
	if err != nil {
		return types.Down, 0, err
	}
	pinger.SetPrivileged(!p.unprivileged)
	pinger.Count = p.count
	pinger.Interval = p.interval
	// Always limit waiting for the last ping to get reflected (or not)!
	pinger.Timeout = time.Duration(int64(p.interval) * int64(p.count+2))
	// While the ping will be running, we need to monitor the context in case
	// it becomes "done" by either getting cancelled or reaching its deadline.
	// The done channel here works "the other way round" in the sense that it
	// terminates the concurrent context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	// Now start making some noise...
	if err := pinger.Run(); err != nil {
		return types.Down, 0, err
	}
	if err := ctx.Err(); err != nil {
		return types.TimedOut, 0, err
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv < pinger.Count*int(p.thresholdPercentage)/100 {
		return types.Down, 0, errors.New("no replies or too many losses")
	}
	return types.Up, stats.AvgRtt, nil
}
