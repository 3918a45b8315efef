// Package logging wraps charmbracelet/log with the level parsing and
// context plumbing shared by the mdprose commands.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // process-wide logger, replaced only by the CLI and tests
var (
	stdMu sync.Mutex
	std   *log.Logger
)

type loggerKey struct{}

// ParseLevel maps a level name to a log level. Unknown names mean info.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a stderr logger at the named level.
func New(level string) *log.Logger {
	return NewTo(os.Stderr, level)
}

// NewTo returns a logger writing to w at the named level.
func NewTo(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: ParseLevel(level)})
}

// NewInteractiveTo returns the prefixed info logger used for command output
// such as "created configuration file".
func NewInteractiveTo(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.InfoLevel,
		Prefix: "mdprose",
	})
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	stdMu.Lock()
	defer stdMu.Unlock()

	if std == nil {
		std = New("info")
	}
	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	stdMu.Lock()
	std = logger
	stdMu.Unlock()
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}

// WithLogger attaches logger to ctx. A nil ctx is treated as Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}
