package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "DIMSYNC_DEBUG"

var (
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	envOnce sync.Once
)

// Init appends debug messages to the file at path, creating its directory.
// An empty path means "dimsync-debug.log" in the working directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	return openLocked(path)
}

func openLocked(path string) error {
	if path == "" {
		path = "dimsync-debug.log"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	closeLocked()
	file, out = f, f
	return nil
}

// SetOutput sends debug messages to w instead of a file. A nil w turns
// logging off.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	closeLocked()
	out = w
}

// Close stops logging and closes the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	out = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Enabled reports whether messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	fromEnvLocked()
	return out != nil
}

// fromEnvLocked opens the file named by EnvVar the first time logging is
// consulted, unless Init or SetOutput got there first.
func fromEnvLocked() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			// A broken path leaves logging off.
			_ = openLocked(path)
		}
	})
}

// Logger prefixes every message with the component that wrote it.
type Logger struct {
	component string
}

// For returns the logger of a component, such as "scope" or "host".
func For(component string) Logger {
	return Logger{component: component}
}

// Log writes one timestamped line.
func (l Logger) Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fromEnvLocked()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s: %s\n", time.Now().Format("15:04:05.000"), l.component, fmt.Sprintf(format, args...))
}
