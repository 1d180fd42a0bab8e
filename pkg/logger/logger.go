// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is nil until Init is called; use Get from
// library code so tests without Init still have a usable logger.
var Log *logrus.Logger

var discard = newDiscard()

// Init configures the global logger from LOG_LEVEL (default "info") and
// LOG_FORMAT ("json" or text). Call it once from main.
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// Stdout belongs to the terminal renderer
	Log.SetOutput(os.Stderr)
}

// SetOutput redirects the global logger, creating it if needed
func SetOutput(w io.Writer) {
	if Log == nil {
		Log = logrus.New()
	}
	Log.SetOutput(w)
}

// Get returns the global logger, or a logger that discards everything when
// Init has not been called.
func Get() *logrus.Logger {
	if Log == nil {
		return discard
	}
	return Log
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
