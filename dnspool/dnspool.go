// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnspool

import (
	"context"
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
)

// Pool is a (size-limited) pool of DNS client connections talking with the
// same DNS resolver address.
type Pool struct {
	workers *workerpool.WorkerPool
	mu      sync.Mutex // protects the pool of DNS connections
	free    []*dns.Conn
}

// New returns a pool of the specified size of DNS client connections, with
// each connection using the specified context and talking to the same DNS
// resolver address (such as "192.0.2.53:53"; see also [SystemResolver]).
//
// DNS tasks are submitted using [Pool.Submit] in form of task functions
// receiving a concrete [dns.Conn].
//
// The passed context is used for creating (dialing) the DNS client
// connections only. It is not directly passed to the submitted DNS tasks, so
// task submitters are themselves responsible for capturing the necessary
// context in their task function closure.
func New(ctx context.Context, size int, dnsclnt *dns.Client, addr string) (*Pool, error) {
	pool := &Pool{
		workers: workerpool.New(size),
	}
	free := make([]*dns.Conn, 0, size)
	for i := 0; i < size; i++ {
		conn, err := dnsclnt.DialContext(ctx, addr)
		if err != nil {
			// Immediately release all connections created so far.
			for _, conn := range free {
				conn.Close()
			}
			return nil, err
		}
		free = append(free, conn)
	}
	pool.free = free
	return pool, nil
}

// SystemResolver returns the "address:port" of the system's first configured
// DNS resolver, as found in /etc/resolv.conf.
func SystemResolver() (string, error) {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", fmt.Errorf("cannot determine system resolver: %w", err)
	}
	if len(cfg.Servers) == 0 {
		return "", fmt.Errorf("cannot determine system resolver: no nameservers configured")
	}
	return fmt.Sprintf("%s:%s", cfg.Servers[0], cfg.Port), nil
}

// Submit a task to the DNS client connection pool, where it gets enqueued to
// be executed on an available DNS client connection.
func (p *Pool) Submit(task func(conn *dns.Conn)) {
	p.workers.Submit(func() { p.task(task) })
}

// ResolveHost is a convenience method for submitting A queries and gathering
// the results. The results (resolved IPv4 addresses in textual format) or an
// error if resolution failed is passed to the specified callback function fn.
//
// Please note that when the passed context is cancelled this will cancel all
// in-flight as well as scheduled resolution jobs.
func (p *Pool) ResolveHost(ctx context.Context, name string, fn func([]string, error)) {
	p.Submit(func(conn *dns.Conn) {
		var addrs []string
		var err error
		defer func() { fn(addrs, err) }() // ...ensure triggering the result callback on our way out

		// don't try to resolve the name if the context has been cancelled;
		// trigger the callback immediately with the context error.
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		dnsclnt := dns.Client{}
		msg := dns.Msg{
			MsgHdr: dns.MsgHdr{Id: dns.Id()},
		}
		msg.SetQuestion(dns.Fqdn(name), dns.TypeA)
		var r *dns.Msg
		r, _, err = dnsclnt.ExchangeWithConn(&msg, conn)
		if err != nil {
			return
		}
		for _, rr := range r.Answer {
			if addrRR, ok := rr.(*dns.A); ok {
				addrs = append(addrs, addrRR.A.String())
			}
		}
		// If we got no A answers then we consider this to be an error. This
		// ensures to send an error to the callback together with the nil list
		// of resolved IP addresses.
		if len(addrs) == 0 {
			err = fmt.Errorf("ResolveHost: query for %q yields no answers", name)
		}
	})
}

// ReverseLookup is a convenience method for submitting PTR queries for the
// specified IP address. The first name found for the address, or an error if
// the reverse lookup failed, is passed to the specified callback function fn.
func (p *Pool) ReverseLookup(ctx context.Context, addr string, fn func(string, error)) {
	p.Submit(func(conn *dns.Conn) {
		var name string
		var err error
		defer func() { fn(name, err) }()

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var arpa string
		arpa, err = dns.ReverseAddr(addr)
		if err != nil {
			return
		}
		dnsclnt := dns.Client{}
		msg := dns.Msg{
			MsgHdr: dns.MsgHdr{Id: dns.Id()},
		}
		msg.SetQuestion(arpa, dns.TypePTR)
		var r *dns.Msg
		r, _, err = dnsclnt.ExchangeWithConn(&msg, conn)
		if err != nil {
			return
		}
		for _, rr := range r.Answer {
			if ptrRR, ok := rr.(*dns.PTR); ok {
				name = ptrRR.Ptr
				return
			}
		}
		err = fmt.Errorf("ReverseLookup: query for %q yields no answers", addr)
	})
}

// task grabs the next free DNS client and passes it to the specified
// function. After the function returns, the connection is put back into the
// free list.
func (p *Pool) task(task func(conn *dns.Conn)) {
	// pop off a free DNS client connection,
	// https://ueokande.github.io/go-slice-tricks/,
	p.mu.Lock()
	if len(p.free) == 0 {
		panic("no free DNS client connection available")
	}
	last := len(p.free) - 1
	conn := p.free[last]
	p.free = p.free[:last]
	p.mu.Unlock()
	// run the task with its assigned DNS client connection...
	task(conn)
	// ...and push the DNS client connection back into the free list.
	p.mu.Lock()
	p.free = append(p.free, conn)
	p.mu.Unlock()
}

// StopWait waits for all enqueued lookup or generic DNS request tasks to
// finish, and then shuts down the pool.
func (p *Pool) StopWait() {
	p.workers.StopWait()
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.free {
		conn.Close()
	}
	p.free = nil
}
