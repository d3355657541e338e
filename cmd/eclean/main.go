package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indaco/eclean/internal/cli"
	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/printer"
)

// Exit codes.
const (
	exitUsage   = 1
	exitRuntime = 2
)

func main() {
	if err := runCLI(os.Args); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// runCLI loads the configuration and runs the command tree.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return core.NewUsageError("%s", err.Error())
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return cli.New(cfg).Run(context.Background(), args)
}

// reportError prints err to w and returns the exit code for it.
func reportError(w io.Writer, err error) int {
	if core.IsUsageError(err) {
		fmt.Fprintln(w, printer.Error(fmt.Sprintf("Error when parsing arguments: %v.", err)))
		return exitUsage
	}
	if kind := core.KindOf(err); kind != core.KindUnknown {
		fmt.Fprintln(w, printer.Error(fmt.Sprintf("Error when cleaning up [%s]: %v", kind, err)))
	} else {
		fmt.Fprintln(w, printer.Error(fmt.Sprintf("Error when cleaning up: %v", err)))
	}
	return exitRuntime
}
