// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"time"

	"github.com/siemens/netsweep/types"
)

// Progress is an immutable point-in-time summary of a sweep's counters.
// Snapshots are produced on every verdict received plus once at sweep start
// and once at sweep end; consumers must not assume any fixed cadence, as
// intermediate snapshots get coalesced on slow consumers (the latest wins).
type Progress struct {
	Total      uint64        // number of targets the swept space covers.
	Dispatched uint64        // targets handed to probe workers so far.
	Completed  uint64        // targets with a terminal verdict so far.
	Up         uint64        // responsive targets so far.
	Down       uint64        // unresponsive (refused, unreachable, ...) targets so far.
	TimedOut   uint64        // targets whose probes ran into their deadline so far.
	Elapsed    time.Duration // wall-clock time since the sweep started.
}

// Done returns true once all targets of the sweep have reported a terminal
// verdict.
func (p Progress) Done() bool {
	return p.Completed == p.Total
}

// Tracker consumes the verdict stream of a [Sweeper], maintains the
// monotonically increasing sweep counters, republishes them as [Progress]
// snapshots, and finally folds everything into the terminal [Report]. It is
// the single consumer fanning in the concurrently delivered verdicts, so the
// counters need no locking at all; that's the whole point of its design.
type Tracker struct {
	total     uint64
	snapshots chan Progress
}

// NewTracker returns a new [Tracker] for a sweep covering the specified total
// number of targets, together with the snapshot channel it will publish
// [Progress] updates on. The snapshot channel gets closed after the final
// snapshot, whose counts are guaranteed to exactly equal the counts of the
// [Report] returned by [Tracker.Track].
func NewTracker(total uint64) (*Tracker, <-chan Progress) {
	t := &Tracker{
		total:     total,
		snapshots: make(chan Progress, 1),
	}
	return t, t.snapshots
}

// Track consumes verdicts from the specified event stream until the stream
// gets closed, and then returns the final [Report]. Track deliberately keeps
// consuming even after sweep cancellation: the in-flight probes still deliver
// their verdicts and these must not get lost, or the aggregate counts would
// corrupt. The stream closing is the sweeper's signal that everything
// dispatched has indeed completed.
func (t *Tracker) Track(events <-chan types.Target) Report {
	started := time.Now()
	progress := Progress{Total: t.total}
	responsive := []types.TargetValue{}
	unresponsive := []types.TargetValue{}
	t.publish(progress) // at-start snapshot, before any verdicts trickle in.
	for target := range events {
		switch v := target.Verd(); {
		case v == types.Probing:
			progress.Dispatched++
		case v.IsTerminal():
			progress.Completed++
			switch v {
			case types.Up:
				progress.Up++
				responsive = append(responsive, target.TV())
			case types.TimedOut:
				progress.TimedOut++
				unresponsive = append(unresponsive, target.TV())
			default:
				progress.Down++
				unresponsive = append(unresponsive, target.TV())
			}
		}
		progress.Elapsed = time.Since(started)
		t.publish(progress)
	}
	progress.Elapsed = time.Since(started)
	t.publish(progress) // the final snapshot; consumers see it last before close.
	close(t.snapshots)
	return newReport(progress, started, responsive, unresponsive)
}

// publish makes the specified snapshot available on the snapshot channel,
// coalescing with any stale unconsumed snapshot: the latest always wins, and
// publishing never blocks on a slow (or absent) consumer.
func (t *Tracker) publish(p Progress) {
	for {
		select {
		case t.snapshots <- p:
			return
		default:
		}
		select {
		case <-t.snapshots: // drop the stale snapshot...
		default: // ...unless the consumer just beat us to it.
		}
	}
}
