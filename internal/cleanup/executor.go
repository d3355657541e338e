package cleanup

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/indaco/eclean/internal/console"
	"github.com/indaco/eclean/internal/plugin"
)

// Relocator moves one entry into destRoot and reports how many files it copied.
type Relocator interface {
	Relocate(ctx context.Context, src, destRoot string) (int, error)
}

// Moved records one relocated entry.
type Moved struct {
	Entry plugin.Entry
	Files int
}

// Summary is the outcome of a relocation run. After a failure it holds the
// entries moved before the failing one.
type Summary struct {
	BackupDir string
	Relocated []Moved

	// Files counts every file copied, including any copied for a failed entry.
	Files int
}

// Plugins returns the number of relocated entries.
func (s *Summary) Plugins() int {
	return len(s.Relocated)
}

// ProgressFunc is called after each successful relocation with the number of
// entries done so far and the total planned.
type ProgressFunc func(done, total int, moved Moved)

// Executor relocates the discarded entries of a Plan.
type Executor struct {
	relocator Relocator
	backupDir string
	logger    *log.Logger

	// OnProgress, when set, is called after every relocated entry.
	OnProgress ProgressFunc
}

// NewExecutor creates an Executor that moves entries into backupDir.
// A nil logger discards output.
func NewExecutor(relocator Relocator, backupDir string, logger *log.Logger) *Executor {
	if logger == nil {
		logger = console.Discard()
	}
	return &Executor{
		relocator: relocator,
		backupDir: backupDir,
		logger:    logger,
	}
}

// Run relocates every discarded entry, group by group in plan order. The first
// failure stops the run; entries already moved stay moved.
func (e *Executor) Run(ctx context.Context, plan *Plan) (*Summary, error) {
	summary := &Summary{
		BackupDir: e.backupDir,
		Relocated: make([]Moved, 0, plan.DiscardCount),
	}

	for _, d := range plan.Decisions {
		e.logger.Debug("cleaning up", "plugin", d.Name, "latest", d.Keep.Version.String())
		for _, entry := range d.Discard {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			files, err := e.relocator.Relocate(ctx, entry.Path, e.backupDir)
			if err != nil {
				e.logger.Error("relocation failed", "plugin", entry.String(), "path", entry.Path, "files", files, "err", err)
				summary.Files += files
				return summary, err
			}

			moved := Moved{Entry: entry, Files: files}
			summary.Relocated = append(summary.Relocated, moved)
			summary.Files += files
			e.logger.Debug(">> relocated", "plugin", entry.String(), "files", files, "to", e.backupDir)

			if e.OnProgress != nil {
				e.OnProgress(summary.Plugins(), plan.DiscardCount, moved)
			}
		}
	}

	return summary, nil
}
