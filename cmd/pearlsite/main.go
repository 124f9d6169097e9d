// Command pearlsite runs the jewelry studio site: the public pages,
// the JSON API and the admin API.
package main

import (
	"fmt"
	"os"

	"github.com/pearlatelier/pearlsite-go/internal/application/startup"
)

func main() {
	if err := startup.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pearlsite: %v\n", err)
		os.Exit(1)
	}
}
