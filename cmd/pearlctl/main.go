// Command pearlctl is the admin console for a pearlsite server: login,
// catalog and gallery management, page editing and visit statistics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pearlctl: %v\n", err)
		os.Exit(1)
	}
}
