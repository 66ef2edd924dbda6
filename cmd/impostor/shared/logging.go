// Package shared holds helpers common to all impostor commands.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// SetupLogger configures the application logger. The debug flag wins
// over the configured level, and the color profile follows what the
// terminal actually supports.
func SetupLogger(level string, debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetReportTimestamp(true)
	logger.SetColorProfile(termenv.ColorProfile())

	if debug {
		logger.SetLevel(log.DebugLevel)
		return logger
	}

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
