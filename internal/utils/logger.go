package utils

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log formats understood by NewLogger
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger builds the process logger. It writes to stderr, leaving stdout to command output.
// An unknown level falls back to info and an unknown format to text.
func NewLogger(level, format string) *logrus.Logger {
	return newLogger(os.Stderr, level, format)
}

func newLogger(out io.Writer, level, format string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	var formatter logrus.Formatter = &logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	}
	if format == LogFormatJSON {
		formatter = &logrus.JSONFormatter{TimestampFormat: time.RFC3339}
	}

	return &logrus.Logger{
		Out:       out,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     logLevel,
		ExitFunc:  os.Exit,
	}
}
