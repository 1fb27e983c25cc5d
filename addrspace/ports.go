// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package addrspace

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
)

// PortSpan is a set of ports on a single host, described as a comma-separated
// list of port numbers and dashed port ranges ("22,80,443" or "1-1024" or
// "22,8000-8099"). Expansion is duplicate-free and in ascending port order.
type PortSpan struct {
	host  string
	ports []uint16 // ascending, no duplicates.
}

// ParsePorts returns the [PortSpan] covering the specified ports on the
// specified host, or an error wrapping [ErrInvalidSpec].
func ParsePorts(host string, spec string) (PortSpan, error) {
	if host == "" {
		return PortSpan{}, fmt.Errorf("%w: missing host", ErrInvalidSpec)
	}
	seen := map[uint16]struct{}{}
	for _, elem := range strings.Split(spec, ",") {
		elem := strings.TrimSpace(elem)
		start, end, isrange := strings.Cut(elem, "-")
		first, err := parsePort(start)
		if err != nil {
			return PortSpan{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
		}
		last := first
		if isrange {
			if last, err = parsePort(end); err != nil {
				return PortSpan{}, fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, err.Error())
			}
			if first > last {
				return PortSpan{}, fmt.Errorf("%w: %q: start port above end port", ErrInvalidSpec, spec)
			}
		}
		for port := uint32(first); port <= uint32(last); port++ {
			seen[uint16(port)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return PortSpan{}, fmt.Errorf("%w: no ports specified", ErrInvalidSpec)
	}
	ports := make([]uint16, 0, len(seen))
	for port := range seen {
		ports = append(ports, port)
	}
	sort.Slice(ports, func(a, b int) bool { return ports[a] < ports[b] })
	return PortSpan{host: host, ports: ports}, nil
}

// parsePort parses a single non-zero port number.
func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %q", s)
	}
	if port == 0 {
		return 0, fmt.Errorf("port number must not be zero")
	}
	return uint16(port), nil
}

// Host returns the host all ports of this span belong to.
func (p PortSpan) Host() string { return p.host }

// Ports returns (a copy of) the ascending list of ports of this span.
func (p PortSpan) Ports() []uint16 {
	ports := make([]uint16, len(p.ports))
	copy(ports, p.ports)
	return ports
}

// Size returns the number of host:port endpoints within this span.
func (p PortSpan) Size() uint64 { return uint64(len(p.ports)) }

// Target returns the i-th host:port endpoint of this span in ascending port
// order, thus satisfying the sweep engine's target source interface. It
// panics when indexed beyond [PortSpan.Size].
func (p PortSpan) Target(i uint64) string {
	return net.JoinHostPort(p.host, strconv.FormatUint(uint64(p.ports[i]), 10))
}

// String returns a terse representation of this span.
func (p PortSpan) String() string {
	return fmt.Sprintf("%s (%d ports)", p.host, len(p.ports))
}
