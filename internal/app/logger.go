package app

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger shared by the entry points. Verbose
// enables debug output.
func NewLogger(prefix string, verbose bool) *log.Logger {
	return newLogger(os.Stderr, prefix, verbose)
}

func newLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
