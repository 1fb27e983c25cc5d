// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"time"

	"github.com/siemens/netsweep/types"

	g "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = g.Describe("reports", func() {

	g.It("sorts address targets numerically, not textually", func() {
		targets := []types.TargetValue{
			{Address: "10.0.0.10"},
			{Address: "10.0.0.2"},
			{Address: "10.0.0.1"},
		}
		sortTargets(targets)
		Expect(targets).To(HaveExactElements(
			types.TargetValue{Address: "10.0.0.1"},
			types.TargetValue{Address: "10.0.0.2"},
			types.TargetValue{Address: "10.0.0.10"},
		))
	})

	g.It("sorts endpoint targets by numeric port", func() {
		targets := []types.TargetValue{
			{Address: "192.0.2.1:443"},
			{Address: "192.0.2.1:80"},
			{Address: "192.0.2.1:8080"},
			{Address: "192.0.2.1:9"},
		}
		sortTargets(targets)
		Expect(targets[0].Address).To(Equal("192.0.2.1:9"))
		Expect(targets[1].Address).To(Equal("192.0.2.1:80"))
		Expect(targets[2].Address).To(Equal("192.0.2.1:443"))
		Expect(targets[3].Address).To(Equal("192.0.2.1:8080"))
	})

	g.It("round-trips its counts into snapshot form", func() {
		final := Progress{
			Total: 5, Dispatched: 5, Completed: 5, Up: 2, Down: 2, TimedOut: 1,
		}
		report := newReport(final, time.Now(), nil, nil)
		Expect(report.Outcome).To(Equal(Complete))
		Expect(report.Progress()).To(Equal(Progress{
			Total: 5, Dispatched: 5, Completed: 5, Up: 2, Down: 2, TimedOut: 1,
			Elapsed: report.Elapsed,
		}))
	})

	g.It("stringifies outcomes and verdicts", func() {
		Expect(Complete.String()).To(Equal("complete"))
		Expect(Cancelled.String()).To(Equal("cancelled"))
		Expect(Outcome(42).String()).To(Equal("Outcome(42)"))
	})

})
