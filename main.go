package main

import (
	"fmt"
	"os"

	"github.com/asforge-labs/asforge/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		code := cli.ExitCode(err)
		// A declined prompt already said so on stdout.
		if code != cli.ExitDeclined {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(code)
	}
}
