// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package addrspace

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("port spans", func() {

	It("expands port lists and ranges, deduplicated and ascending", func() {
		span := Successful(ParsePorts("192.0.2.1", "443,22,80,80,8000-8003"))
		Expect(span.Host()).To(Equal("192.0.2.1"))
		Expect(span.Ports()).To(Equal([]uint16{22, 80, 443, 8000, 8001, 8002, 8003}))
		Expect(span.Size()).To(Equal(uint64(7)))
		Expect(span.Target(0)).To(Equal("192.0.2.1:22"))
		Expect(span.Target(span.Size() - 1)).To(Equal("192.0.2.1:8003"))
	})

	It("accepts single ports and the full range", func() {
		Expect(Successful(ParsePorts("host", "443")).Size()).To(Equal(uint64(1)))
		Expect(Successful(ParsePorts("host", "1-65535")).Size()).To(Equal(uint64(65535)))
	})

	DescribeTable("rejecting invalid port specifications",
		func(host string, spec string) {
			Expect(ParsePorts(host, spec)).Error().To(MatchError(ErrInvalidSpec))
		},
		Entry("garbage", "host", "abc"),
		Entry("empty", "host", ""),
		Entry("port zero", "host", "0"),
		Entry("port beyond 16 bits", "host", "65536"),
		Entry("start port above end port", "host", "80-22"),
		Entry("trailing comma", "host", "22,"),
		Entry("missing host", "", "22"),
	)

})
