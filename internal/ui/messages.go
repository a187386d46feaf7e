package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// periodic tick for status bar time
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
