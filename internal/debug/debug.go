package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding a debug log path.
const EnvVar = "TK_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
)

// New creates a logger writing to w at the given level, with the
// timestamp format used throughout the toolkit.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

// Logger returns the shared logger. Without a configured logger it writes
// to the TK_DEBUG file if set, and discards everything otherwise.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = fromEnvLocked()
	}
	return logger
}

// SetLogger installs l as the shared logger. Passing nil restores the
// default discard logger.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Init opens path for appending and installs a debug-level logger on it.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = New(f, log.DebugLevel)
	return nil
}

// Close closes the debug log file, if one is open, and resets the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a formatted debug message to the shared logger.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}

func fromEnvLocked() *log.Logger {
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err == nil {
			return logger
		}
	}
	return New(io.Discard, log.FatalLevel)
}
