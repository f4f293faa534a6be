package main

import (
	"fmt"
	"os"

	"github.com/ccdocs/ccd/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ccd:", err)
		os.Exit(1)
	}
}
