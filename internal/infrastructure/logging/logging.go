// Package logging builds the structured loggers used outside the simulation core.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger at the named level ("debug", "info", "warn", "error").
// Unknown levels fall back to info.
func New(level, prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, level, prefix)
}

// NewWithWriter is New over an arbitrary writer
func NewWithWriter(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
