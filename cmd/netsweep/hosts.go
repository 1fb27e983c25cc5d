// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/siemens/netsweep/addrspace"
	"github.com/siemens/netsweep/probe"

	"github.com/spf13/cobra"
)

var (
	hostsProbePort   *uint16
	useICMP          *bool
	pingCount        *uint
	pingInterval     *time.Duration
	pingThreshold    *uint
	unprivilegedPing *bool
	resolveNames     *bool
)

func newHostsCmd() (hostsCmd *cobra.Command) {
	hostsCmd = &cobra.Command{
		Use:   "hosts [flags] CIDR|FIRST-LAST|ADDRESS",
		Short: "sweep an IPv4 address space for responsive hosts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := addrspace.Parse(args[0])
			if err != nil {
				return err
			}
			var prober probe.Prober
			if *useICMP {
				if *pingThreshold > 100 {
					return fmt.Errorf("--threshold out of range [0..100]")
				}
				opts := []probe.ICMPOption{
					probe.WithCount(*pingCount),
					probe.WithInterval(*pingInterval),
					probe.WithDeadline(*probeTimeout),
					probe.WithThresholdPercentage(*pingThreshold),
				}
				if *unprivilegedPing {
					opts = append(opts, probe.AsUnprivileged())
				}
				prober = probe.NewICMP(opts...)
			} else {
				prober = probe.NewTCP(
					probe.WithPort(*hostsProbePort),
					probe.WithTimeout(*probeTimeout))
			}
			return sweepAndReport(cmd.Context(), space,
				prober,
				fmt.Sprintf("sweeping %s (%d addresses)", space, space.Size()),
				*resolveNames)
		},
	}
	hostsProbePort = hostsCmd.Flags().Uint16(
		"port", 80, "TCP port to probe for reachability")
	useICMP = hostsCmd.Flags().Bool(
		"icmp", false, "probe using ICMP echo requests instead of TCP connects")
	pingCount = hostsCmd.Flags().Uint(
		"count", 3, "number of pings per target (with --icmp)")
	pingInterval = hostsCmd.Flags().Duration(
		"interval", time.Second, "interval between pings (with --icmp)")
	pingThreshold = hostsCmd.Flags().Uint(
		"threshold", 50, "percentage of replied pings for an up target (with --icmp)")
	unprivilegedPing = hostsCmd.Flags().Bool(
		"unprivileged", false, "use unprivileged UDP-based pings (with --icmp)")
	resolveNames = hostsCmd.Flags().Bool(
		"resolve", false, "reverse-resolve responsive addresses into DNS names")
	return
}
