// Package main is the readmegen command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/readme-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
