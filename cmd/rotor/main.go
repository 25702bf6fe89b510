package main

// This is the debugging front door of the Rotor compiler: it scans and parses
// a source file and dumps what was found.

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		var diagErr *diagnosticsError
		if errors.As(err, &diagErr) {
			os.Exit(65)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
