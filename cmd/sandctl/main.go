// sandctl drives the falling-sand automaton without a window.
//
// Usage:
//
//	sandctl run    - run a scene or a random fill and print the result
//	sandctl soak   - run many seeds in parallel and check mass conservation
//	sandctl sims   - list registered simulations
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
