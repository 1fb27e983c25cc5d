// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "os"

func main() {
	osExit(run())
}

// run executes the root command and maps its outcome onto a process exit
// code. cobra has already rendered any error at this point, so it must not be
// printed a second time, see also:
// https://github.com/spf13/cobra/issues/304
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// For CLI unit tests...
var osExit = os.Exit
