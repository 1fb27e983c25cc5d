// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"net"
	"net/netip"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/siemens/netsweep/types"
)

// Outcome tells how a sweep as a whole ended.
type Outcome int

// The terminal outcomes of a sweep.
const (
	Complete  Outcome = iota // every target of the space was probed and reported.
	Cancelled                // the sweep got cancelled; the report covers only partial counts.
)

// String returns the clear-text representation of an Outcome value.
func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Report is the final, immutable summary of a completed or cancelled sweep.
// No state is carried over between sweeps; every sweep produces exactly one
// fresh Report.
type Report struct {
	Outcome      Outcome             `json:"outcome"`
	Total        uint64              `json:"total"`     // number of targets the swept space covers.
	Dispatched   uint64              `json:"dispatched"`
	Completed    uint64              `json:"completed"`
	Up           uint64              `json:"up"`
	Down         uint64              `json:"down"`
	TimedOut     uint64              `json:"timedout"`
	Responsive   []types.TargetValue `json:"responsive"`   // up targets with RTTs, ascending.
	Unresponsive []types.TargetValue `json:"unresponsive"` // down/timed-out targets with reasons, ascending.
	Started      time.Time           `json:"started"`
	Elapsed      time.Duration       `json:"elapsed"`
}

// newReport reconciles the final counters into a Report. A sweep only counts
// as complete when every target of the space got dispatched and every
// dispatched target reported back; anything less is marked cancelled rather
// than silently treated as complete.
func newReport(final Progress, started time.Time, responsive, unresponsive []types.TargetValue) Report {
	outcome := Complete
	if final.Completed != final.Total || final.Dispatched != final.Completed {
		outcome = Cancelled
	}
	sortTargets(responsive)
	sortTargets(unresponsive)
	return Report{
		Outcome:      outcome,
		Total:        final.Total,
		Dispatched:   final.Dispatched,
		Completed:    final.Completed,
		Up:           final.Up,
		Down:         final.Down,
		TimedOut:     final.TimedOut,
		Responsive:   responsive,
		Unresponsive: unresponsive,
		Started:      started,
		Elapsed:      final.Elapsed,
	}
}

// Progress returns the report's counts in [Progress] snapshot form; it equals
// the final snapshot published by the [Tracker] that produced this report
// (modulo the sub-millisecond elapsed-time skew of the finalization itself).
func (r Report) Progress() Progress {
	return Progress{
		Total:      r.Total,
		Dispatched: r.Dispatched,
		Completed:  r.Completed,
		Up:         r.Up,
		Down:       r.Down,
		TimedOut:   r.TimedOut,
		Elapsed:    r.Elapsed,
	}
}

// sortTargets sorts a slice of probed targets in place, ascending: IP address
// targets numerically, host:port endpoint targets by host and then numeric
// port, and anything else textually.
func sortTargets(targets []types.TargetValue) {
	sort.Slice(targets, func(a, b int) bool {
		return compareTargets(targets[a].Address, targets[b].Address) < 0
	})
}

// compareTargets compares two target addresses for sorting purposes.
func compareTargets(a, b string) int {
	addrA, errA := netip.ParseAddr(a)
	addrB, errB := netip.ParseAddr(b)
	if errA == nil && errB == nil {
		return addrA.Compare(addrB)
	}
	hostA, portA, errA := net.SplitHostPort(a)
	hostB, portB, errB := net.SplitHostPort(b)
	if errA == nil && errB == nil && hostA == hostB {
		numA, _ := strconv.Atoi(portA)
		numB, _ := strconv.Atoi(portB)
		return numA - numB
	}
	return strings.Compare(a, b)
}
