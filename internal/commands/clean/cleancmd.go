// Package clean implements the clean run: scan the plugins directory, report
// the duplicates and move every outdated version into the backup directory.
package clean

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/eclean/internal/cleanup"
	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/console"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/discovery"
	"github.com/indaco/eclean/internal/printer"
	"github.com/indaco/eclean/internal/relocate"
	"github.com/indaco/eclean/internal/report"
	"github.com/indaco/eclean/internal/tui"
	"github.com/urfave/cli/v3"
)

// Test seams.
var (
	newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }
	newRelocator  = func() cleanup.Relocator { return relocate.NewRelocator() }
	newPrompter   = func() tui.Prompter { return tui.NewPrompter(os.Stdin, os.Stderr) }
	isInteractive = tui.IsInteractive
	logWriter     io.Writer
)

// UsageText is shared with the root command.
const UsageText = `eclean [options] DIR BACKUP

DIR is the installation root; its plugins directory is scanned.
BACKUP receives the outdated versions under its plugins directory.`

// Run returns the "clean" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "clean",
		Usage:     "Move duplicated plugins to a backup directory",
		UsageText: UsageText,
		ArgsUsage: "DIR BACKUP",
		Flags:     Flags(cfg),
		Action:    Action(cfg),
	}
}

// Action returns the clean action bound to cfg.
func Action(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runCleanCmd(ctx, cmd, cfg)
	}
}

// options holds the resolved flags of one run.
type options struct {
	dir     string
	backup  string
	verbose bool
	test    bool
	force   bool
	format  string
	noColor bool
}

// parseOptions validates arguments and flags. Every failure is a usage error.
func parseOptions(cmd *cli.Command, cfg *config.Config) (options, error) {
	if cmd.Args().Len() != 2 {
		return options{}, core.NewUsageError("expected DIR and BACKUP arguments, got %d", cmd.Args().Len())
	}

	opts := options{
		dir:     cmd.Args().Get(0),
		backup:  cmd.Args().Get(1),
		verbose: cmd.Bool("verbose"),
		test:    cmd.Bool("test"),
		force:   cmd.Bool("force") || cfg.Force,
		format:  cfg.Format,
		noColor: cmd.Bool("no-color"),
	}
	if cmd.IsSet("format") {
		opts.format = cmd.String("format")
	}

	if !isDir(opts.dir) {
		return options{}, core.NewUsageError("DIR '%s' does not exist", opts.dir)
	}
	if !isDir(opts.backup) {
		return options{}, core.NewUsageError("BACKUP dir '%s' does not exist", opts.backup)
	}
	if !report.IsValidFormat(opts.format) {
		return options{}, core.NewUsageError("unknown format %q", opts.format)
	}
	return opts, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// runCleanCmd drives one session from scan to relocation.
func runCleanCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts, err := parseOptions(cmd, cfg)
	if err != nil {
		return err
	}

	logger := console.NewLogger(console.Options{Verbose: opts.verbose, NoColor: opts.noColor, Writer: logWriter})
	formatter, err := report.NewFormatter(opts.format, printer.Out)
	if err != nil {
		return err
	}

	session := cleanup.NewSession()
	result, err := discovery.NewService(newFileSystem(), cfg.PluginsDir, logger).Discover(ctx, opts.dir)
	if err != nil {
		return err
	}
	if err := session.Transition(cleanup.Grouped); err != nil {
		return err
	}

	if err := formatter.Scan(result); err != nil {
		return err
	}
	if !result.HasDuplicates() {
		return session.Transition(cleanup.NoDuplicates)
	}
	if err := session.Transition(cleanup.DuplicatesFound); err != nil {
		return err
	}

	plan := cleanup.NewPlan(result.Duplicates())
	if opts.test {
		return session.Transition(cleanup.ReportedOnly)
	}

	if !opts.force {
		confirmed, err := newPrompter().Confirm(
			fmt.Sprintf("%d plugins will be moved to the backup dir. Continue?", plan.DiscardCount),
			"Outdated versions are copied to the backup dir, then deleted from the plugins dir.",
		)
		if err != nil {
			return err
		}
		if !confirmed {
			logger.Info("nothing moved")
			return session.Transition(cleanup.ReportedOnly)
		}
	}

	return relocatePlan(ctx, session, plan, opts, cfg, formatter, logger)
}

// relocatePlan moves the discarded entries and reports the summary, partial
// or not.
func relocatePlan(ctx context.Context, session *cleanup.Session, plan *cleanup.Plan, opts options, cfg *config.Config, formatter *report.Formatter, logger *log.Logger) error {
	if err := session.Transition(cleanup.Relocating); err != nil {
		return err
	}

	backupDir := filepath.Join(opts.backup, cfg.BackupSubdir)
	executor := cleanup.NewExecutor(newRelocator(), backupDir, logger)

	// The spinner owns the terminal, so progress lines and debug logs are
	// only used without it.
	useSpinner := isInteractive() && !opts.verbose && !report.IsStructured(opts.format)
	if !useSpinner && !opts.verbose && opts.format == report.FormatText {
		executor.OnProgress = report.NewProgress(printer.Out, 30).Func()
	}

	var summary *cleanup.Summary
	run := func() error {
		var runErr error
		summary, runErr = executor.Run(ctx, plan)
		return runErr
	}

	var runErr error
	if useSpinner {
		runErr = tui.RunWithSpinner(fmt.Sprintf("Moving %d plugins to %s...", plan.DiscardCount, backupDir), run)
	} else {
		runErr = run()
	}

	if summary != nil {
		if err := formatter.Relocation(summary); err != nil {
			return err
		}
	}
	if runErr != nil {
		if err := session.Transition(cleanup.Aborted); err != nil {
			return err
		}
		return runErr
	}
	return session.Transition(cleanup.Done)
}
