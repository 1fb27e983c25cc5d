// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/siemens/netsweep/addrspace"
	"github.com/siemens/netsweep/dnspool"
	"github.com/siemens/netsweep/probe"
	"github.com/siemens/netsweep/types"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	portList   *string
	forceSweep *bool
)

func newPortsCmd() (portsCmd *cobra.Command) {
	portsCmd = &cobra.Command{
		Use:   "ports [flags] HOST",
		Short: "sweep the TCP ports of a single host for open ports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			host := args[0]
			addr := host
			if _, err := netip.ParseAddr(host); err != nil {
				// Not an address literal, so dig up the host's address first;
				// this also doubles as the liveness check of the original
				// name-based workflow.
				resolved, err := resolveHost(ctx, host)
				if err != nil {
					return fmt.Errorf("host %s is not up: %w", host, err)
				}
				logrus.Debugf("resolved %s to %s", host, resolved)
				addr = resolved
			}
			span, err := addrspace.ParsePorts(addr, *portList)
			if err != nil {
				return err
			}
			prober := probe.NewTCP(probe.WithTimeout(*probeTimeout))
			// A quick pre-flight connect tells whether the host is up at all
			// before burning time on a potentially huge port span.
			if !*forceSweep {
				if verdict, _, _ := prober.Probe(ctx, addr); verdict != types.Up {
					return fmt.Errorf("host %s is not up (use --force to sweep anyway)", host)
				}
			}
			return sweepAndReport(ctx, span,
				prober,
				fmt.Sprintf("scanning %d ports on %s", span.Size(), host),
				false)
		},
	}
	portList = portsCmd.Flags().StringP(
		"ports", "p", "", "ports to scan, as a comma-separated list of ports and FIRST-LAST ranges")
	_ = portsCmd.MarkFlagRequired("ports")
	forceSweep = portsCmd.Flags().BoolP(
		"force", "f", false, "sweep the ports even when the host appears to be down")
	return
}

// resolveHost digs up the (first) IPv4 address for the specified host name,
// using the system's configured DNS resolver.
func resolveHost(ctx context.Context, name string) (string, error) {
	resolver, err := dnspool.SystemResolver()
	if err != nil {
		return "", err
	}
	dnsclnt := dns.Client{}
	pool, err := dnspool.New(ctx, 1, &dnsclnt, resolver)
	if err != nil {
		return "", err
	}
	defer pool.StopWait()
	addrch := make(chan string, 1)
	errch := make(chan error, 1)
	pool.ResolveHost(ctx, name, func(addrs []string, err error) {
		if err != nil {
			errch <- err
			return
		}
		addrch <- addrs[0]
	})
	select {
	case addr := <-addrch:
		return addr, nil
	case err := <-errch:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
