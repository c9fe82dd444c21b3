// Package debug exposes the layout engine's debug log to applications.
package debug

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-tui-layout/internal/debug"
)

// Init starts debug logging to the file at path.
func Init(path string) error { return debug.Init(path) }

// InitFromEnv starts debug logging if TUI_DEBUG names a file.
func InitFromEnv() error { return debug.InitFromEnv() }

// Close flushes and closes the debug log.
func Close() error { return debug.Close() }

// Log writes a formatted message at debug level.
func Log(format string, args ...any) { debug.Log(format, args...) }

// Logf is an alias for Log.
func Logf(format string, args ...any) { debug.Log(format, args...) }

// Logger returns the current structured logger.
func Logger() *zap.Logger { return debug.Logger() }

// SetLevel sets the minimum level written to the log.
func SetLevel(l zapcore.Level) { debug.SetLevel(l) }
