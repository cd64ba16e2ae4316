package debug

import (
	"os"
	"path/filepath"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	file   *os.File
	logger *charmlog.Logger
)

// Enable starts debug logging to ~/.config/gridbeat/debug.log. The TUI owns
// stdout, so logs always go to a file.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".config", "gridbeat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	file = f
	logger = charmlog.NewWithOptions(f, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	logger.Info("debug logging started")
	return nil
}

// Disable stops debug logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	logger = nil
}

// Log writes a categorized message. No-op unless Enable was called.
func Log(category, format string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()

	if l == nil {
		return
	}
	l.WithPrefix(category).Debugf(format, args...)
}
