// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/siemens/netsweep/dnspool"
	"github.com/siemens/netsweep/probe"
	"github.com/siemens/netsweep/sweep"
	"github.com/siemens/netsweep/types"

	"github.com/gosuri/uilive"
	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// sweepAndReport wires up the processing elements and their plumbing:
//
//   - TargetSource lazily producing the targets of the space to sweep.
//   - Sweeper fanning the targets out to the bounded probe workers.
//   - Tracker fanning the verdicts back in, counting and reporting.
//
// Rendering is done on the Progress snapshots published by the Tracker, and a
// final report rendering once all verdicts are in. Pressing Ctrl-C cancels
// the sweep; in-flight probes still deliver their verdicts, so the partial
// report stays consistent and is rendered all the same.
func sweepAndReport(ctx context.Context, src sweep.TargetSource, prober probe.Prober, headline string, resolve bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sweeper, events := sweep.New(int(*workerNumber), prober)
	tracker, snapshots := sweep.NewTracker(src.Size())

	// Fire off the rendering goroutine, redrawing on every snapshot as well
	// as on a short ticker so the spinner keeps spinning between verdicts.
	// Rendering only stops after the Tracker has closed the snapshot stream,
	// with the final snapshot rendered a last time.
	//
	// uilive's background updating mode using Start() may trigger anytime
	// with the rendering into the buffer not yet complete, making the
	// terminal output very flickery. So we avoid Start() and instead trigger
	// an explicit flush to the terminal after having completed the rendering.
	term := uilive.New()
	renderer := newRenderer(term, headline)
	renderingDone := make(chan struct{})
	go func() {
		defer close(renderingDone)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		progress := sweep.Progress{Total: src.Size()}
		for {
			select {
			case p, ok := <-snapshots:
				if !ok {
					renderer.Render(progress)
					term.Flush()
					return
				}
				progress = p
			case <-ticker.C:
			}
			renderer.Render(progress)
			term.Flush()
		}
	}()

	// Feed the targets through the stages; the events stream gets closed
	// after the last in-flight probe has reported, terminating Track.
	go func() {
		sweeper.Sweep(ctx, src)
		sweeper.StopWait()
	}()
	report := tracker.Track(events)
	<-renderingDone
	renderer.Stop()

	var names map[string]string
	if resolve && len(report.Responsive) > 0 {
		names = reverseNames(ctx, report.Responsive)
	}
	renderReport(os.Stdout, report, names)

	if report.Outcome == sweep.Cancelled {
		return fmt.Errorf("sweep cancelled after %d of %d targets", report.Completed, report.Total)
	}
	return nil
}

// reverseNames digs up the DNS names of the responsive targets, best-effort:
// addresses without PTR records (or without a working resolver) simply end up
// without names.
func reverseNames(ctx context.Context, responsive []types.TargetValue) map[string]string {
	resolver, err := dnspool.SystemResolver()
	if err != nil {
		logrus.Debugf("skipping reverse name resolution: %s", err.Error())
		return nil
	}
	size := len(responsive)
	if size > int(*workerNumber) {
		size = int(*workerNumber)
	}
	dnsclnt := dns.Client{}
	pool, err := dnspool.New(ctx, size, &dnsclnt, resolver)
	if err != nil {
		logrus.Debugf("skipping reverse name resolution: %s", err.Error())
		return nil
	}
	var mu sync.Mutex
	names := map[string]string{}
	for _, target := range responsive {
		addr := target.Address
		pool.ReverseLookup(ctx, addr, func(name string, err error) {
			if err != nil {
				logrus.Debugf("no name for %s: %s", addr, err.Error())
				return
			}
			mu.Lock()
			names[addr] = name
			mu.Unlock()
		})
	}
	pool.StopWait()
	return names
}
