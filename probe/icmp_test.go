// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"os"
	"time"

	"github.com/siemens/netsweep/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ICMP prober", func() {

	It("rejects thresholds beyond 100%", func() {
		Expect(func() { WithThresholdPercentage(101) }).To(Panic())
	})

	It("classifies bogus target addresses as down", NodeTimeout(10*time.Second), func(ctx context.Context) {
		verdict, _, err := NewICMP().Probe(ctx, "666.666.666.666")
		Expect(verdict).To(Equal(types.Down))
		Expect(err).To(HaveOccurred())
	})

	It("verifies localhost", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		verdict, rtt, err := NewICMP(
			WithCount(1),
			WithInterval(100*time.Millisecond),
			WithThresholdPercentage(1)).Probe(ctx, "127.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(verdict).To(Equal(types.Up))
		Expect(rtt).To(BeNumerically(">", 0))
	})

	It("honors its configured overall deadline", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		// Pinging would take around 10s; the deadline must cut it short with
		// a timeout verdict.
		start := time.Now()
		verdict, _, _ := NewICMP(
			WithCount(10),
			WithInterval(time.Second),
			WithDeadline(250*time.Millisecond)).Probe(ctx, "127.0.0.1")
		Expect(verdict).To(Equal(types.TimedOut))
		Expect(time.Since(start)).To(BeNumerically("<", 5*time.Second))
	})

	It("times out when its context gets cancelled midway", NodeTimeout(30*time.Second), func(ctx context.Context) {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
		ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()
		verdict, _, _ := NewICMP(
			WithCount(10),
			WithInterval(time.Second)).Probe(ctx, "127.0.0.1")
		Expect(verdict).To(Equal(types.TimedOut))
	})

})
