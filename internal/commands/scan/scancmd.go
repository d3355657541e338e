// Package scan implements the read-only "scan" command.
package scan

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/console"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/discovery"
	"github.com/indaco/eclean/internal/printer"
	"github.com/indaco/eclean/internal/report"
	"github.com/urfave/cli/v3"
)

// Test seams.
var (
	newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }
	logWriter     io.Writer
)

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"ls"},
		Usage:     "List duplicated plugins without moving anything",
		UsageText: "eclean scan [--all] [--format text|table|json|yaml|toml] DIR",
		ArgsUsage: "DIR",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "List every plugin, not only the duplicated ones",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Use verbose output",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: " + strings.Join(report.ValidFormats, ", "),
				Value:   cfg.Format,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScanCmd(ctx, cmd, cfg)
		},
	}
}

// runScanCmd scans DIR and prints either the duplicates or the full inventory.
func runScanCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if cmd.Args().Len() != 1 {
		return core.NewUsageError("expected DIR argument, got %d arguments", cmd.Args().Len())
	}
	dir := cmd.Args().First()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return core.NewUsageError("DIR '%s' does not exist", dir)
	}

	format := cfg.Format
	if cmd.IsSet("format") {
		format = cmd.String("format")
	}
	formatter, err := report.NewFormatter(format, printer.Out)
	if err != nil {
		return core.NewUsageError("%s", err.Error())
	}

	logger := console.NewLogger(console.Options{
		Verbose: cmd.Bool("verbose"),
		NoColor: cmd.Bool("no-color"),
		Writer:  logWriter,
	})

	result, err := discovery.NewService(newFileSystem(), cfg.PluginsDir, logger).Discover(ctx, dir)
	if err != nil {
		return err
	}

	if cmd.Bool("all") {
		return formatter.Inventory(result)
	}
	return formatter.Scan(result)
}
