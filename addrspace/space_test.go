// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package addrspace

import (
	"fmt"
	"math/rand"
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("address spaces", func() {

	It("expands a CIDR block into exactly its addresses, ascending", func() {
		space := Successful(Parse("192.0.2.0/30"))
		Expect(space.Size()).To(Equal(uint64(4)))
		addrs := []string{}
		for i := uint64(0); i < space.Size(); i++ {
			addrs = append(addrs, space.Target(i))
		}
		Expect(addrs).To(Equal([]string{
			"192.0.2.0", "192.0.2.1", "192.0.2.2", "192.0.2.3",
		}))
	})

	It("masks stray host bits off CIDR specifications", func() {
		space := Successful(Parse("192.0.2.42/24"))
		Expect(space.First().String()).To(Equal("192.0.2.0"))
		Expect(space.Last().String()).To(Equal("192.0.2.255"))
		Expect(space.Size()).To(Equal(uint64(256)))
	})

	It("expands dashed ranges and single addresses", func() {
		space := Successful(Parse("192.0.2.10-192.0.2.12"))
		Expect(space.Size()).To(Equal(uint64(3)))
		Expect(space.Target(0)).To(Equal("192.0.2.10"))
		Expect(space.Target(2)).To(Equal("192.0.2.12"))

		single := Successful(Parse("192.0.2.1"))
		Expect(single.Size()).To(Equal(uint64(1)))
		Expect(single.Target(0)).To(Equal("192.0.2.1"))
	})

	It("handles the /32 and /31 corner cases", func() {
		Expect(Successful(Parse("192.0.2.1/32")).Size()).To(Equal(uint64(1)))
		Expect(Successful(Parse("192.0.2.0/31")).Size()).To(Equal(uint64(2)))
	})

	It("keeps huge spaces lazy", func() {
		space := Successful(Parse("10.0.0.0/8"))
		Expect(space.Size()).To(Equal(uint64(1 << 24)))
		// Deriving addresses is a pure function of the index, so poking at
		// both ends must not require expanding anything in between.
		Expect(space.Target(0)).To(Equal("10.0.0.0"))
		Expect(space.Target(space.Size() - 1)).To(Equal("10.255.255.255"))
	})

	It("covers random spaces exactly once, ascending, without duplicates", func() {
		prng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		for round := 0; round < 100; round++ {
			bits := 24 + prng.Intn(9) // keep full expansion cheap: /24../32
			base := netip.AddrFrom4([4]byte{
				byte(prng.Intn(223) + 1), byte(prng.Intn(256)), byte(prng.Intn(256)), byte(prng.Intn(256)),
			})
			spec := fmt.Sprintf("%s/%d", base, bits)
			space := Successful(Parse(spec))
			Expect(space.Size()).To(Equal(uint64(1)<<(32-bits)), "space %s", spec)
			seen := map[string]struct{}{}
			prev := netip.Addr{}
			for i := uint64(0); i < space.Size(); i++ {
				addr := space.At(i)
				Expect(space.Contains(addr)).To(BeTrue(), "address %s outside space %s", addr, spec)
				if prev.IsValid() {
					Expect(prev.Compare(addr)).To(BeNumerically("<", 0), "space %s not ascending", spec)
				}
				prev = addr
				seen[addr.String()] = struct{}{}
			}
			Expect(seen).To(HaveLen(int(space.Size())), "space %s has duplicates", spec)
		}
	})

	It("knows its boundaries", func() {
		space := Successful(Parse("192.0.2.16-192.0.2.31"))
		Expect(space.Contains(netip.MustParseAddr("192.0.2.16"))).To(BeTrue())
		Expect(space.Contains(netip.MustParseAddr("192.0.2.31"))).To(BeTrue())
		Expect(space.Contains(netip.MustParseAddr("192.0.2.15"))).To(BeFalse())
		Expect(space.Contains(netip.MustParseAddr("192.0.2.32"))).To(BeFalse())
		Expect(space.Contains(netip.MustParseAddr("2001:db8::1"))).To(BeFalse())
	})

	DescribeTable("rejecting invalid specifications",
		func(spec string) {
			Expect(Parse(spec)).Error().To(MatchError(ErrInvalidSpec))
		},
		Entry("garbage", "foobar"),
		Entry("empty", ""),
		Entry("malformed prefix", "192.0.2.0/33"),
		Entry("IPv6 space", "2001:db8::/64"),
		Entry("start address above end address", "192.0.2.10-192.0.2.1"),
		Entry("mixed address families", "192.0.2.1-2001:db8::1"),
		Entry("half a range", "192.0.2.1-"),
	)

})
