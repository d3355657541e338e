package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/indaco/eclean/internal/cleanup"
)

// Progress prints one bar line per relocated entry.
type Progress struct {
	w   io.Writer
	bar progress.Model
}

// NewProgress creates a Progress writing to w with a bar of the given width.
func NewProgress(w io.Writer, width int) *Progress {
	return &Progress{
		w: w,
		bar: progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("5"),
			progress.WithoutPercentage(),
		),
	}
}

// Line renders the bar for done of total followed by the counter and label.
func (p *Progress) Line(done, total int, label string) string {
	percent := 1.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	return fmt.Sprintf("%s %d/%d %s", p.bar.ViewAs(percent), done, total, label)
}

// Func adapts Progress to the executor's progress callback.
func (p *Progress) Func() cleanup.ProgressFunc {
	return func(done, total int, moved cleanup.Moved) {
		fmt.Fprintln(p.w, p.Line(done, total, moved.Entry.String()))
	}
}
