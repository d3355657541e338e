package cli

import (
	"context"

	"github.com/indaco/eclean/internal/commands/clean"
	"github.com/indaco/eclean/internal/commands/initialize"
	"github.com/indaco/eclean/internal/commands/scan"
	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/printer"
	"github.com/indaco/eclean/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// AppVersion is the released version of the eclean binary.
const AppVersion = "1.0.0"

func init() {
	// -v is taken by --verbose.
	urfavecli.VersionFlag = &urfavecli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// New builds and returns the root CLI command. The root action is a clean
// run; cfg is updated in place when --config names a file.
func New(cfg *config.Config) *urfavecli.Command {
	flags := clean.Flags(cfg)
	flags = append(flags,
		&urfavecli.StringFlag{
			Name:  "config",
			Usage: "Path to a .eclean.yaml or .eclean.toml file",
		},
		&urfavecli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	)

	return &urfavecli.Command{
		Name:      "eclean",
		Version:   "v" + AppVersion,
		Usage:     "Clean up the duplicated plugins in a plugins directory",
		UsageText: clean.UsageText,
		ArgsUsage: "DIR BACKUP",
		Flags:     flags,
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			return ctx, setup(cmd, cfg)
		},
		Action: clean.Action(cfg),
		Commands: []*urfavecli.Command{
			clean.Run(cfg),
			scan.Run(cfg),
			initialize.Run(),
		},
	}
}

// setup applies --config, validates the resulting configuration and
// configures styling.
func setup(cmd *urfavecli.Command, cfg *config.Config) error {
	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return core.NewUsageError("%s", err.Error())
		}
		*cfg = *loaded
	}

	if err := config.FirstError(config.NewValidator(cfg).Validate()); err != nil {
		return core.NewUsageError("%s", err.Error())
	}

	printer.SetNoColor(cmd.Bool("no-color"))
	tui.SetTheme(cfg.Theme)
	return nil
}
