/*
Package probe implements the pluggable per-target checks carried out during a
sweep. A [Prober] takes one single target address and arrives at exactly one
terminal verdict:

	         +---+
	string-->| P +-->(Verdict, RTT, error)
	         +---+

Two probers ship with netsweep: [TCPProber] attempts TCP connects (and so
doubles as the port scanning capability when targets carry explicit ports),
while [ICMPProber] sends echo requests in pure Go, leveraging the incredible
Go module [go-ping/ping]. Both measure round-trip times for responsive
targets, so latency comes for free with either capability.

Probers never abort a sweep: connection refusals, unreachable hosts, and
suchlike are classified into down verdicts with error details attached, and
deadline overruns into timeout verdicts. The engine treats whatever prober is
plugged in as a black box.

[go-ping/ping]: https://github.com/go-ping/ping
*/
package probe
