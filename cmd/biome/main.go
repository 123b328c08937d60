// Package main provides the biome command.
package main

import (
	"os"

	"github.com/leapstack-labs/biome/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
