/*
Package dnspool implements a simple limiting DNS client-request execution
pool. Netsweep uses a [Pool] of “DNS workers” to resolve hostname targets
into IPv4 addresses before sweeping, as well as to reverse-resolve responsive
addresses for the final report.

Usage

	dnsclnt := dns.Client{}
	resolver, _ := dnspool.SystemResolver()
	workers, _ := dnspool.New(
	    context.Background(),
	    4,                    // number of parallel DNS connections and thus workers
	    &dnsclnt,             // DNS client
	    resolver,             // address of server/resolver
	)
	workers.ResolveHost(ctx,
	    "foobar.example.org",
	    func(addrs []string, err error) {
	        // do something with addrs, unless there's an error reported
	    })
	workers.Submit(func(conn *dns.Conn) {
	    // do something with the DNS connection
	})

# Acknowledgements

Under its hood, [Pool] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package dnspool
