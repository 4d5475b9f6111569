// Package logging configures droidcat's diagnostic logger. Diagnostics always
// go to stderr; stdout carries rendered records only.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger. Quiet wins over verbose.
func Setup(verbose, quiet bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
}

// New returns a logger with the given component prefix. It inherits the
// settings of the default logger at the time of the call, so Setup must run
// first.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput redirects the default logger, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
