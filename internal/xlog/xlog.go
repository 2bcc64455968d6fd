// Package xlog is the ambient logging wrapper shared by registry and
// cmd/parsec, built on github.com/rs/zerolog — the logging library used
// throughout the deepnoodle-ai-risor corpus (e.g. cmd/risor-lsp's
// completion.go). The core parsec engine itself never logs: parsing is a
// pure, hot-loop computation, and logging belongs at the edges where
// observable events (registrations, CLI runs) actually occur.
package xlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(defaultWriter()).With().Timestamp().Logger()
)

func defaultWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
}

// SetLevel adjusts the global minimum log level (e.g. zerolog.DebugLevel
// for a CLI --verbose flag).
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// SetOutput redirects log output, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// Logger returns the shared logger instance.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

// With starts a sub-logger with a component field, e.g. xlog.With("registry").
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}
