// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	workerNumber    *uint
	probeTimeout    *time.Duration
	spinnerInterval *time.Duration
	listFailures    *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "netsweep",
		Short:   "netsweep probes the hosts of an IPv4 address space, or the ports of a single host, in parallel",
		Version: "0.9",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *workerNumber < 1 || *workerNumber > 512 {
				return fmt.Errorf("--workers out of range [1..512]")
			}
			if *probeTimeout < 10*time.Millisecond {
				return fmt.Errorf("--timeout must be at least 10ms")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			if *debug {
				logrus.SetLevel(logrus.DebugLevel)
				logrus.Debug("debug logging enabled")
			}
			return nil
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 32, "number of concurrent probe workers")
	probeTimeout = rootCmd.PersistentFlags().Duration(
		"timeout", 2*time.Second, "per-probe timeout")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	listFailures = rootCmd.PersistentFlags().Bool(
		"failures", false, "also list unresponsive targets with reasons in the final report")
	rootCmd.AddCommand(newHostsCmd())
	rootCmd.AddCommand(newPortsCmd())
	return
}
