// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Verdict indicates the probing state of a target address, such as pending,
// probing, down, et cetera.
type Verdict int

// The probing verdicts of a target address.
const (
	Pending  Verdict = iota // target produced, but not yet dispatched to a prober.
	Probing                 // target dispatched, probe in flight.
	Down                    // target probed, but it did not respond (refused, unreachable, ...).
	TimedOut                // target probed, but the probe ran into its deadline.
	Up                      // target probed and found responsive.
)

// String returns the clear-text representation of a Verdict value.
func (v Verdict) String() string {
	switch v {
	case Pending:
		return "pending"
	case Probing:
		return "probing"
	case Down:
		return "down"
	case TimedOut:
		return "timeout"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// IsTerminal returns true if a verdict is final, that is, the probe for this
// target has completed one way or another and there won't be any further
// verdict updates for it.
func (v Verdict) IsTerminal() bool {
	switch v {
	case Down, TimedOut, Up:
		return true
	default:
		return false
	}
}
