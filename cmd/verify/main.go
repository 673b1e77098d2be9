package main

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/verify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cli.ExitCodeForError(err))
	}
}
