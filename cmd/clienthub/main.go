package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andy/clienthub/internal/app"
	"github.com/andy/clienthub/internal/cli"
)

// skipAppInit reports whether the process can run without the full app (which
// may prompt for a password). Only cobra's own help surfaces qualify: -h or
// --help anywhere, or "help" as the first argument. A later "help" may be a
// registry command line for exec and needs the app.
func skipAppInit(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

func main() {
	if !skipAppInit(os.Args[1:]) {
		ctx := context.Background()
		a, err := app.New(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
