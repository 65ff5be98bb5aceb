package main

import (
	"os"

	"github.com/nmoret/diagile/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
