package main

import (
	"os"

	"github.com/mathvm/mvmir/internal/cli"
)

func main() {
	// Commands render their own error output; the exit code is the only
	// thing left to propagate.
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
