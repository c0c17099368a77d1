// Package main is the entry point for the lbnb CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeffoo713/lightBnB/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
