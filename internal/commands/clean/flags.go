package clean

import (
	"strings"

	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/report"
	"github.com/urfave/cli/v3"
)

// Flags returns the clean flags. They are shared by the root command, whose
// default action is a clean run.
func Flags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Use verbose output",
		},
		&cli.BoolFlag{
			Name:    "test",
			Aliases: []string{"t"},
			Usage:   "Scan and find the duplicated plugins, but do nothing",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "Clean up the duplicated plugins automatically. Never prompt",
			Value:   cfg.Force,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"o"},
			Usage:   "Output format: " + strings.Join(report.ValidFormats, ", "),
			Value:   cfg.Format,
		},
	}
}
