// Package initialize implements the "init" command, which writes a default
// configuration file into the working directory.
package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/printer"
	"github.com/urfave/cli/v3"
)

const configHeader = `# eclean configuration file
#
# plugins-dir:   subdirectory of DIR that is scanned
# backup-subdir: subdirectory of BACKUP that receives outdated plugins
# format:        text, table, json, yaml or toml
# theme:         prompt theme (eclean, base, base16, catppuccin, charm, dracula)
# force:         move duplicates without asking

`

// commentedMarshaler prefixes the marshaled config with configHeader.
type commentedMarshaler struct {
	inner core.Marshaler
}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	data, err := m.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), data...), nil
}

// GenerateConfigWithComments renders cfg for path with the explanatory header.
func GenerateConfigWithComments(cfg *config.Config, path string) ([]byte, error) {
	m := &commentedMarshaler{inner: config.MarshalerFor(path)}
	return m.Marshal(cfg)
}

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a default .eclean.yaml (or .eclean.toml) file",
		UsageText: "eclean init [--toml] [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "toml",
				Usage: "Write .eclean.toml instead of .eclean.yaml",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := config.DefaultYAMLFile
			if cmd.Bool("toml") {
				path = config.DefaultTOMLFile
			}
			return runInitCmd(path, cmd.Bool("force"))
		},
	}
}

// runInitCmd writes the default config to path.
func runInitCmd(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return core.NewUsageError("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	saver := config.NewConfigSaver(&commentedMarshaler{inner: config.MarshalerFor(path)})
	if err := saver.SaveTo(config.Default(), path); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", path))
	return nil
}
