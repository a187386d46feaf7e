// Package ui is the Bubble Tea front end: one widget in the local terminal.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"defterm/internal/term"
	"defterm/internal/theme"
	"defterm/internal/widget"
)

// Model for TUI
type model struct {
	host   *widget.Host
	ctrl   *widget.Controller
	surf   *widget.BufferedSurface
	styles *theme.Styles
	keys   keyMap

	ti   textinput.Model
	vp   viewport.Model
	help help.Model
	sb   *screen

	width    int
	height   int
	now      time.Time
	quitting bool
}

// New creates the TUI model and the widget it hosts.
func New(host *widget.Host) (tea.Model, error) {
	m := model{
		host:   host,
		surf:   &widget.BufferedSurface{},
		styles: theme.NewStyles(nil),
		keys:   defaultKeys(),
		help:   help.New(),
		sb:     &screen{},
		now:    time.Now(),
	}
	ctrl, err := host.Create(m.surf)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl

	ti := textinput.New()
	ti.Prompt = "└─$ "
	ti.PromptStyle = m.styles.Span(term.Prompt)
	ti.TextStyle = m.styles.Span(term.Plain)
	ti.CharLimit = 1024
	m.ti = ti

	m.vp = viewport.New(80, 20)
	m.vp.MouseWheelEnabled = true
	m.help.ShowAll = false
	m.sync()
	m.refresh()
	return m, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// sync applies what the controller wrote to the surface.
func (m *model) sync() {
	v, set, focus := m.surf.Drain()
	if set {
		m.ti.SetValue(v)
		m.ti.CursorEnd()
	}
	if focus {
		m.ti.Focus()
	}
}

// refresh re-renders the scrollback into the viewport and keeps the view
// pinned to the bottom.
func (m *model) refresh() {
	if m.sb.update(m.ctrl.Session().Scrollback(), m.styles, m.vp.Width) {
		m.vp.SetContent(m.sb.content())
		m.vp.GotoBottom()
	}
}

// dispatch forwards a key to the bound handlers.
func (m *model) dispatch(k widget.Key) {
	m.surf.Press(k, m.ti.Value())
	m.sync()
	m.refresh()
}
