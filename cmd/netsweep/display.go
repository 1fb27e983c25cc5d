// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/siemens/netsweep/sweep"
)

// renderer renders the live terminal progress display, based on Progress
// snapshots passed to its Render method.
type renderer struct {
	headline string
	w        io.Writer
	spinner  *spinner
}

// newRenderer returns a renderer object rendering to the specified io.Writer,
// headed by the specified headline describing the sweep underway.
func newRenderer(w io.Writer, headline string) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		headline: headline,
		w:        w,
		spinner:  sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render the given progress snapshot as a headline plus one counter line.
func (r *renderer) Render(p sweep.Progress) {
	fmt.Fprintln(r.w, headlineStyle.Styled(r.headline))
	marker := probingStyle.Styled(r.spinner.Spinner())
	if p.Done() {
		marker = upStyle.Styled("✔ ")
	}
	fmt.Fprintf(r.w, "  %s%d/%d probed  %s %s %s  (%s)\n",
		marker, p.Completed, p.Total,
		upStyle.Styled(fmt.Sprintf("✔ %d up", p.Up)),
		downStyle.Styled(fmt.Sprintf("× %d down", p.Down)),
		probingStyle.Styled(fmt.Sprintf("! %d timeout", p.TimedOut)),
		p.Elapsed.Round(100*time.Millisecond))
}

// renderReport renders the final report: the list of responsive targets with
// their round-trip times (and optionally their DNS names), on request the
// unresponsive targets with their reasons, and a closing summary line.
func renderReport(w io.Writer, report sweep.Report, names map[string]string) {
	if len(report.Responsive) == 0 {
		fmt.Fprintln(w, probingStyle.Styled("no responsive targets found"))
	} else {
		fmt.Fprintln(w, "responsive targets:")
		for _, target := range report.Responsive {
			line := fmt.Sprintf("  ✔ %-21s %s", target.Address, target.Latency.Round(time.Microsecond))
			if name, ok := names[target.Address]; ok {
				line += "  " + strings.TrimSuffix(name, ".")
			}
			fmt.Fprintln(w, upStyle.Styled(line))
		}
	}
	if *listFailures {
		for _, target := range report.Unresponsive {
			reason := target.Verdict.String()
			if err := target.Err(); err != nil {
				reason = fmt.Sprintf("%s: %s", reason, err.Error())
			}
			fmt.Fprintln(w, downStyle.Styled(fmt.Sprintf("  × %-21s %s", target.Address, reason)))
		}
	}
	fmt.Fprintf(w, "swept %d targets in %s: %d up, %d down, %d timed out\n",
		report.Completed, report.Elapsed.Round(time.Millisecond),
		report.Up, report.Down, report.TimedOut)
	if report.Outcome == sweep.Cancelled {
		fmt.Fprintln(w, downStyle.Styled(
			fmt.Sprintf("sweep cancelled: only %d of %d targets probed", report.Completed, report.Total)))
	}
}
