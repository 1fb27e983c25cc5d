// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/siemens/netsweep/types"
)

// TCPProber probes targets by attempting to establish a TCP connection. A
// target that accepts the connection is [types.Up]; a target refusing it (or
// being otherwise unreachable) is [types.Down]; a target not answering within
// the probe timeout is [types.TimedOut]. The round-trip time of responsive
// targets is the time it took to complete the connect.
type TCPProber struct {
	port    uint16        // default port for targets without an explicit port.
	timeout time.Duration // per-connect deadline.
	dialer  net.Dialer
}

// TCPOption can be passed to NewTCP when creating new TCPProber objects.
type TCPOption func(*TCPProber)

// NewTCP returns a new [TCPProber]. It defaults to connecting to port 80 with
// a per-connect timeout of 2s, configurable using the [WithPort] and
// [WithTimeout] options.
func NewTCP(options ...TCPOption) *TCPProber {
	prober := &TCPProber{
		port:    80,
		timeout: 2 * time.Second,
	}
	for _, opt := range options {
		opt(prober)
	}
	return prober
}

// WithPort sets the port to connect to for targets that are bare addresses
// without an explicit port.
func WithPort(port uint16) TCPOption {
	return func(p *TCPProber) {
		p.port = port
	}
}

// WithTimeout sets the per-connect deadline.
func WithTimeout(timeout time.Duration) TCPOption {
	return func(p *TCPProber) {
		p.timeout = timeout
	}
}

// Probe connects to the specified target. Targets may be bare addresses
// ("192.0.2.1"), in which case the prober's configured port applies, or
// explicit endpoints ("192.0.2.1:443").
func (p *TCPProber) Probe(ctx context.Context, addr string) (types.Verdict, time.Duration, error) {
	endpoint := addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		endpoint = net.JoinHostPort(addr, strconv.FormatUint(uint64(p.port), 10))
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", endpoint)
	rtt := time.Since(start)
	if err == nil {
		conn.Close()
		return types.Up, rtt, nil
	}
	if ctx.Err() != nil || isTimeout(err) {
		return types.TimedOut, 0, err
	}
	return types.Down, 0, err
}

// isTimeout returns true for errors that are timeouts in the sense of
// [net.Error].
func isTimeout(err error) bool {
	neterr, ok := err.(net.Error)
	return ok && neterr.Timeout()
}
