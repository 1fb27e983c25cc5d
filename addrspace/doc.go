/*
Package addrspace expands user-supplied address space specifications into the
individual targets to be swept. A [Space] covers a contiguous IPv4 address
space given in CIDR or dashed-range notation, while a [PortSpan] covers a set
of ports on one single host.

Both kinds are lazy: they only store the boundaries of the space and derive
the i-th target as a pure function of the index i. Sweeping a /8 thus never
allocates 16M addresses up front; the sweep engine pulls targets one by one as
its worker slots free up. Expansion is deterministic, in ascending numeric
order, covers the declared space exactly once, and never produces duplicates.

Malformed specifications are rejected with errors wrapping [ErrInvalidSpec]
before any sweeping begins.
*/
package addrspace
