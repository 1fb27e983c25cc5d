// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"sync/atomic"
	"time"
)

// spinnerPhases is the glyph cycle an animated spinner steps through.
var spinnerPhases = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// spinner is a blindingly simple terminal spinner; just enough to get the job
// done, no bells, no frills. The phase counter advances unbounded and gets
// reduced onto the glyph cycle only when rendering.
type spinner struct {
	phase  atomic.Uint32
	ticker *time.Ticker
	done   chan struct{}
}

// newSpinner returns a new spinner; later call the Start method to make it
// spin, and the Stop method to stop it and release background resources.
func newSpinner() *spinner {
	return &spinner{done: make(chan struct{})}
}

// Spinner returns the spinner string for the current phase.
func (s *spinner) Spinner() string {
	return string(spinnerPhases[int(s.phase.Load())%len(spinnerPhases)]) + " "
}

// Start the spinner to spin in steps every specified interval.
func (s *spinner) Start(interval time.Duration) {
	s.ticker = time.NewTicker(interval)
	go func() {
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				s.phase.Add(1)
			case <-s.done:
				return
			}
		}
	}()
}

// Stop the spinner and release the background resources.
func (s *spinner) Stop() {
	close(s.done)
}
