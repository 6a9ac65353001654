// Command navctl manages navshell favorites, settings and history from a terminal.
package main

import (
	"fmt"
	"os"

	"navshell/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
