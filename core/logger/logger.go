package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	levelEnv  = "COMMANDLINE_LOG_LEVEL"
	formatEnv = "COMMANDLINE_LOG_FORMAT"

	defaultLevel = "warning"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the process logger. Its level and format are read once from
// COMMANDLINE_LOG_LEVEL and COMMANDLINE_LOG_FORMAT; invalid values fall back to
// warning and text.
func Logger() *logrus.Logger {
	once.Do(func() {
		levelStr := os.Getenv(levelEnv)
		if levelStr == "" {
			levelStr = defaultLevel
		}

		var err error
		lg, err = New(levelStr, os.Getenv(formatEnv))
		if err != nil {
			lg, _ = New(defaultLevel, FormatText)
			lg.WithError(err).Warn("invalid logger environment")
		}
	})
	return lg
}

// New builds a logger writing to stderr with the given level and format.
func New(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	formatter, err := newFormatter(format)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(formatter)

	return l, nil
}

func newFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000 MST",
		}, nil
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format '%s'", format)
	}
}
