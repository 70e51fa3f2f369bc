// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// New builds the process logger writing to w. format is "json" or "text".
func New(w io.Writer, level, format string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.New()
	logger.SetOutput(w)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Discard is a logger for tests and library callers that do not want output.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
