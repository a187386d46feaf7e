package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"defterm/internal/widget"
)

// chrome is the number of rows around the scrollback: border (2), title
// bar, prompt (2) and status bar.
const chrome = 6

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Click anywhere in the window focuses the input
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get("term.window").InBounds(msg) {
				m.surf.Click()
				m.sync()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Width - 4
		if inner < 10 {
			inner = 10
		}
		m.vp.Width = inner
		m.ti.Width = maxInt(5, inner-4)
		m.help.Width = inner
		m.layout()
		m.surf.Resize()
		m.sync()
		m.refresh()
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.host.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.dispatch(widget.KeyEnter)
			return m, nil
		case key.Matches(msg, m.keys.Older):
			m.dispatch(widget.KeyUp)
			return m, nil
		case key.Matches(msg, m.keys.Newer):
			m.dispatch(widget.KeyDown)
			return m, nil
		case key.Matches(msg, m.keys.Complete):
			m.dispatch(widget.KeyTab)
			return m, nil
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			m.vp.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		m.dispatch(widget.KeyOther)
		return m, cmd
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// layout sizes the viewport to what the chrome and help leave free.
func (m *model) layout() {
	extra := 0
	if m.help.ShowAll {
		extra = 1
	}
	m.vp.Height = maxInt(3, m.height-chrome-extra)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
