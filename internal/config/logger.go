package config

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

var Logger = logrus.New()

// InitLogger configures the package logger. Level and format are assumed to
// have passed Config.Validate.
func InitLogger(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	Logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if format == LogFormatJSON {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
}

func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// WithContext returns a log entry carrying the fields stored in ctx.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok && id != "" {
		entry = entry.WithField("session_id", id)
	}
	return entry
}
