// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	probingStyle = termenv.Style{}.Foreground(termenv.ANSIYellow)
	upStyle      = termenv.Style{}.Foreground(termenv.ANSIGreen)
	downStyle    = termenv.Style{}.Foreground(termenv.ANSIRed)
)

var headlineStyle = termenv.Style{}.Bold()
