package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable read by InitFromEnv.
const EnvVar = "TUI_DEBUG"

var (
	mu      sync.Mutex
	logger  = zap.NewNop()
	logFile *os.File
	level   = zap.NewAtomicLevelAt(zapcore.DebugLevel)
)

// Init starts debug logging to the file at path, appending to it.
// If path is empty, uses "debug.log" in the current directory.
// Calling Init again switches to the new file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// InitFromEnv calls Init with the value of TUI_DEBUG. It does nothing if
// the variable is unset or empty.
func InitFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(f), level)

	closeLocked()
	logFile = f
	logger = zap.New(core)
	return nil
}

// Close flushes and closes the debug log. Logging is a no-op afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	_ = logger.Sync()
	err := logFile.Close()
	logFile = nil
	logger = zap.NewNop()
	return err
}

// Enabled reports whether a log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Logger returns the current logger for structured logging.
// It is a no-op logger until Init succeeds.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLevel sets the minimum level written to the log.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// SetDebug toggles between debug and info level.
func SetDebug(on bool) {
	if on {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Log writes a formatted message at debug level.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
