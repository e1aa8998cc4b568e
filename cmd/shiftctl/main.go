// Command shiftctl runs the shift pay rules offline: hours between two
// clock times, window status, countdowns, earnings and money text.
package main

import (
	"fmt"
	"os"
)

const appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
