// Package config handles application configuration and setup
package config

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// CreateLogger creates a logger that writes to stderr with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	return CreateLoggerWithWriter(os.Stderr, debug, quiet)
}

// CreateLoggerWithWriter creates a logger for the given writer. Debug enables
// debug messages, quiet limits the output to errors.
func CreateLoggerWithWriter(w io.Writer, debug, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	switch {
	case debug:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
