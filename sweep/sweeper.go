// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"sync"

	"github.com/siemens/netsweep/probe"
	"github.com/siemens/netsweep/types"

	"github.com/gammazero/workerpool"
)

// TargetSource lazily produces the individual targets of one sweep as a pure
// function of an index, in ascending numeric order, covering its space
// exactly once without duplicates. The addrspace package's Space and
// PortSpan types both satisfy this interface.
type TargetSource interface {
	Size() uint64           // total number of targets.
	Target(i uint64) string // the i-th target, in ascending order.
}

// Sweeper fans the targets of a [TargetSource] out to a bounded pool of
// concurrent probe workers and streams the verdicts to an event/output
// channel (kind of “IT-court TV”). Sweepers use a goroutine-limited worker
// pool, so at no time are more probes in flight than the pool has workers.
type Sweeper struct {
	prober   probe.Prober           // the single per-target check capability plugged in.
	workers  *workerpool.WorkerPool // probe workers for running probes concurrently.
	slots    chan struct{}          // in-flight slots, gating target production.
	events   chan types.Target      // results/status stream channel.
	stopOnce sync.Once
}

// New returns a new [Sweeper] with a maximum worker pool of the specified
// size as well as a “verdict stream”. The verdict channel will not only send
// the final target verdicts, but also the initial and yet-probing targets as
// they get dispatched, so that interactive clients can more easily manage
// their display.
//
// The consumer of the verdict stream must drain it until it gets closed by
// [Sweeper.StopWait]; a [Tracker] does exactly that. This keeps the promise
// that every dispatched target reports its terminal verdict even when the
// sweep context gets cancelled midway, so aggregate counts never corrupt.
func New(size int, prober probe.Prober) (*Sweeper, <-chan types.Target) {
	events := make(chan types.Target, size)
	return &Sweeper{
		prober:  prober,
		workers: workerpool.New(size),
		slots:   make(chan struct{}, size),
		events:  events,
	}, events
}

// Sweep dispatches all targets of the specified source to the probe workers,
// in ascending target order. It blocks whenever all worker slots are busy, so
// the source is pulled no faster than probes complete; large address spaces
// thus never pile up in memory. Sweep returns after the last target has been
// dispatched, which is well before the last probe completes; callers then use
// [Sweeper.StopWait] to wait for the stragglers and close the verdict stream.
//
// When the specified context gets cancelled, Sweep stops pulling further
// targets off the source and returns. Targets already dispatched at that
// point still deliver their terminal verdicts, with their probes aborting or
// timing out as quickly as their prober allows.
func (s *Sweeper) Sweep(ctx context.Context, src TargetSource) {
	total := src.Size()
	for i := uint64(0); i < total; i++ {
		// Backpressure: wait for a free worker slot before even producing the
		// next target, instead of flooding the pool's (unbounded) task queue.
		select {
		case s.slots <- struct{}{}:
		case <-ctx.Done():
			return
		}
		target := &types.TargetValue{
			Address: src.Target(i),
			Verdict: types.Probing,
		}
		s.events <- target // not yet the final verdict ;)
		s.workers.Submit(func() {
			defer func() { <-s.slots }()
			verdict, rtt, err := s.prober.Probe(ctx, target.Address)
			s.events <- target.WithVerdict(verdict, rtt, err) // final one this time.
		})
	}
}

// StopWait waits for all dispatched probes to deliver their verdicts and then
// finally closes the verdict stream channel. It is safe to call StopWait
// multiple times, even concurrently.
func (s *Sweeper) StopWait() {
	s.stopOnce.Do(func() {
		s.workers.StopWait()
		close(s.events)
	})
}
