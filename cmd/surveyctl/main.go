package main

import (
	"os"

	"github.com/levante-framework/levante-surveys-sub001/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
