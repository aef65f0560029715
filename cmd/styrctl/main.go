// Command styrctl manages the base directory list from a terminal, using the
// same store and gateway as the desktop app. Do not run it while the app is open.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
