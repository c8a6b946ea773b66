package main

import (
	"fmt"
	"os"

	"redline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "redline: %v\n", err)
		os.Exit(1)
	}
}
