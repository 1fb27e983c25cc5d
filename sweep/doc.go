/*
Package sweep implements netsweep's bounded-concurrency scanning engine. A
[Sweeper] pulls targets off a lazy [TargetSource], fans them out to a
goroutine-limited probe worker pool, and streams per-target verdicts to an
event channel; a [Tracker] is the single consumer fanning the verdicts back
in, publishing [Progress] snapshots along the way and finally folding
everything into one [Report]:

	              +---------+                +---------+
	TargetSource->| Sweeper +-->ch Target-->| Tracker +-->Report
	              +---------+                +---------+
	                                              |
	                                              +-->ch Progress

Targets are dispatched in ascending numeric order, but verdicts arrive in
whatever order the probes' I/O resolves; consumers must not assume address
order before the final, sorted report. The number of in-flight probes never
exceeds the worker pool size: target production is slot-gated, so even a /8
space trickles through the engine instead of piling up in queues.

Cancelling the sweep context stops dispatching; in-flight probes still report,
the verdict stream still gets drained and closed, and the report is then
marked [Cancelled] with consistent partial counts instead of being discarded.

# Acknowledgements

Under its hood, [Sweeper] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package sweep
