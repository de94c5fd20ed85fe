// vinom-walker solves mazes with the right-hand wall follower, either from
// the command line or behind a REST API.
//
// Usage:
//
//	vinom-walker solve <file> [--max-steps N] [--trace] [--format text|json|yaml]
//	vinom-walker generate --width W --height H [--seed S]
//	vinom-walker serve
//	vinom-walker token [--subject S] [--ttl D]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
