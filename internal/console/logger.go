// Package console builds the structured logger used for verbose output.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Options configures NewLogger.
type Options struct {
	// Verbose enables debug-level entries (every parsed plugin and relocation).
	Verbose bool

	// NoColor forces plain ASCII output.
	NoColor bool

	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// NewLogger returns a logger prefixed "eclean". Without Verbose only warnings
// and errors are emitted.
func NewLogger(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: "eclean",
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// Discard returns a logger that drops every entry. Used as the default for
// services constructed without a logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
