package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"defterm/internal/config"
	"defterm/internal/system"
	"defterm/internal/term"
	"defterm/internal/ui"
	"defterm/internal/widget"
)

// Start runs the TUI program and returns any error.
func Start(cfg config.Config) error {
	// The TUI owns the screen, so logs go to a file while it runs.
	if p, err := config.LogPath(); err == nil {
		if restore, err := system.RedirectToFile(p); err == nil {
			defer restore()
		}
	}
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()

	host := widget.NewHost("tui", system.Component("tui"), term.WithProfile(cfg.Profile))
	m, err := ui.New(host)
	if err != nil {
		return err
	}
	defer host.Destroy()
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
