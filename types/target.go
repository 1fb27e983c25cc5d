// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "time"

// Target gives access to a single probed (or to-be-probed) target address,
// together with the verdict the probing arrived at so far.
type Target interface {
	Addr() string                                                 // returns the target address.
	Verd() Verdict                                                // returns the probing Verdict.
	RTT() time.Duration                                           // round-trip time for responsive targets, or zero.
	Err() error                                                   // if Verdict is Down or TimedOut, optional additional error information.
	TV() TargetValue                                              // returns (a copy of) the target information.
	WithVerdict(v Verdict, rtt time.Duration, err error) Target   // returns a new and updated target.
}

// TargetValue implements a concrete representation of a [Target].
type TargetValue struct {
	Address string        `json:"address"` // a single network IP address, or an address:port endpoint.
	Verdict Verdict       `json:"verdict"` // probing (verdict) state.
	Latency time.Duration `json:"rtt,omitempty"` // measured round-trip time, if any.
	err     error         // optional error details for down or timed-out targets.
}

var _ Target = (*TargetValue)(nil)

// Addr returns the target address.
func (tv *TargetValue) Addr() string { return tv.Address }

// Verd returns the verdict.
func (tv *TargetValue) Verd() Verdict { return tv.Verdict }

// RTT returns the measured round-trip time, or zero if none was measured.
func (tv *TargetValue) RTT() time.Duration { return tv.Latency }

// Err returns an optional error that occurred while probing a target.
func (tv *TargetValue) Err() error { return tv.err }

// TV returns (a copy of) the target information.
func (tv *TargetValue) TV() TargetValue {
	return *tv
}

// WithVerdict returns new target information with an updated verdict.
func (tv *TargetValue) WithVerdict(v Verdict, rtt time.Duration, err error) Target {
	return &TargetValue{
		Address: tv.Address,
		Verdict: v,
		Latency: rtt,
		err:     err,
	}
}
