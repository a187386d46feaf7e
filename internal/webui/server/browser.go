package server

import (
	"fmt"

	clog "github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

var openURL = browser.OpenURL

// OpenBrowser opens url in the system browser. Output of the launcher is
// logged at debug level instead of reaching the terminal.
func OpenBrowser(url string, log *clog.Logger) error {
	w := log.StandardLog(clog.StandardLogOptions{ForceLevel: clog.DebugLevel}).Writer()
	browser.Stdout, browser.Stderr = w, w
	if err := openURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
