// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package addrspace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// ErrInvalidSpec flags a malformed or contradictory address space
// specification; use [errors.Is] to test parse errors against it.
var ErrInvalidSpec = errors.New("invalid address space specification")

// Space is a contiguous space of IPv4 addresses, described either in CIDR
// notation ("192.0.2.0/24"), as a dashed range ("192.0.2.10-192.0.2.99"), or
// as a single address. A Space is a pure value: expanding it into individual
// addresses is a function of an index, so even huge spaces never need to be
// materialized.
//
// The zero Space is empty and not usable; always obtain Spaces from [Parse].
type Space struct {
	first netip.Addr // lowest address, inclusive.
	last  netip.Addr // highest address, inclusive.
}

// Parse returns the [Space] described by the specified specification string,
// or an error wrapping [ErrInvalidSpec]. Only IPv4 spaces are accepted.
func Parse(spec string) (Space, error) {
	switch {
	case strings.Contains(spec, "/"):
		prefix, err := netip.ParsePrefix(spec)
		if err != nil {
			return Space{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
		}
		if !prefix.Addr().Is4() {
			return Space{}, fmt.Errorf("%w: %q: only IPv4 spaces are supported", ErrInvalidSpec, spec)
		}
		prefix = prefix.Masked()
		first := prefix.Addr()
		// The last address is the network address with all host bits set; for
		// a /32 this collapses onto the network address itself.
		last := addrFromU32(addrToU32(first) | mask(32-prefix.Bits()))
		return Space{first: first, last: last}, nil
	case strings.Contains(spec, "-"):
		startstr, endstr, _ := strings.Cut(spec, "-")
		start, err := parseV4(startstr)
		if err != nil {
			return Space{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
		}
		end, err := parseV4(endstr)
		if err != nil {
			return Space{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
		}
		if start.Compare(end) > 0 {
			return Space{}, fmt.Errorf("%w: %q: start address above end address", ErrInvalidSpec, spec)
		}
		return Space{first: start, last: end}, nil
	default:
		addr, err := parseV4(spec)
		if err != nil {
			return Space{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
		}
		return Space{first: addr, last: addr}, nil
	}
}

// mask returns a bit mask covering the specified number of (host) bits,
// avoiding the undefined full-width shift for zero host bits.
func mask(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	return ^uint32(0) >> (32 - bits)
}

// parseV4 parses a single IPv4 address, rejecting everything else.
func parseV4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%q is not an IPv4 address", s)
	}
	return addr, nil
}

// Size returns the total number of addresses within this space.
func (s Space) Size() uint64 {
	if !s.first.IsValid() {
		return 0
	}
	return uint64(addrToU32(s.last)) - uint64(addrToU32(s.first)) + 1
}

// At returns the i-th address of this space, counting from zero upwards in
// ascending address order. It panics when indexed beyond [Space.Size], as
// would any slice.
func (s Space) At(i uint64) netip.Addr {
	if i >= s.Size() {
		panic(fmt.Sprintf("addrspace: index %d out of range for space %s", i, s))
	}
	return addrFromU32(addrToU32(s.first) + uint32(i))
}

// Target returns the i-th address of this space in its textual form, thus
// satisfying the sweep engine's target source interface.
func (s Space) Target(i uint64) string {
	return s.At(i).String()
}

// Contains returns true if the specified address falls within this space.
func (s Space) Contains(addr netip.Addr) bool {
	if !addr.Is4() || !s.first.IsValid() {
		return false
	}
	return s.first.Compare(addr) <= 0 && addr.Compare(s.last) <= 0
}

// First returns the lowest address of this space.
func (s Space) First() netip.Addr { return s.first }

// Last returns the highest address of this space.
func (s Space) Last() netip.Addr { return s.last }

// String returns the range representation of this space.
func (s Space) String() string {
	if !s.first.IsValid() {
		return "(empty)"
	}
	if s.first == s.last {
		return s.first.String()
	}
	return s.first.String() + "-" + s.last.String()
}

// addrToU32 returns the numeric value of an IPv4 address.
func addrToU32(addr netip.Addr) uint32 {
	v4 := addr.As4()
	return binary.BigEndian.Uint32(v4[:])
}

// addrFromU32 returns the IPv4 address with the specified numeric value.
func addrFromU32(v uint32) netip.Addr {
	var v4 [4]byte
	binary.BigEndian.PutUint32(v4[:], v)
	return netip.AddrFrom4(v4)
}
