package system

import (
	"fmt"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// Component returns a child logger tagged with the component name.
func Component(name string) *clog.Logger {
	return Logger.With("component", name)
}

// SetLevel parses a level name (debug, info, warn, error, fatal). An empty
// name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	Logger.SetLevel(lvl)
	return nil
}

// RedirectToFile sends log output to path until the returned restore func
// runs. The TUI uses it so log lines never land on the screen it owns.
func RedirectToFile(path string) (restore func(), err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(f)
	return func() {
		Logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
