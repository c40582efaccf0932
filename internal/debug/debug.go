package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SURFACE_DEBUG"

var (
	out      io.Writer
	closer   io.Closer
	resolved bool
	mu       sync.Mutex
)

// Init opens the debug log at path. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	resolved = true
	if closer != nil {
		closer.Close()
		out, closer = nil, nil
	}
	if path == "" {
		return nil
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

	out, closer = f, f
	return nil
}

// SetOutput redirects debug logging to w. Passing nil disables logging.
// Used by tests to capture log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
		closer = nil
	}
	out = w
	resolved = true
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = nil
	if closer != nil {
		err := closer.Close()
		closer = nil
		return err
	}
	return nil
}

// Enabled reports whether log lines are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	if !resolved {
		initLocked(os.Getenv(EnvVar))
	}
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !resolved {
		initLocked(os.Getenv(EnvVar))
	}
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
