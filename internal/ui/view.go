package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"defterm/internal/term"
	appver "defterm/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	s := m.ctrl.Session()
	p := s.Profile()
	inner := m.vp.Width

	b := &strings.Builder{}
	b.WriteString(renderTitleBar(m.styles, inner, p.User+"@"+p.Host+": "+s.Cwd()))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.styles.RenderLine(term.Line{
		{Text: "┌──(", Style: term.Prompt},
		{Text: p.User, Style: term.Accent},
		{Text: "@", Style: term.Prompt},
		{Text: p.Host, Style: term.Accent},
		{Text: ")-[", Style: term.Prompt},
		{Text: s.Cwd(), Style: term.Plain},
		{Text: "]", Style: term.Prompt},
	}))
	b.WriteString("\n")
	b.WriteString(m.ti.View())

	window := m.styles.Window.Width(inner + 2).Render(b.String())
	out := lipgloss.JoinVertical(lipgloss.Left,
		zone.Mark("term.window", window),
		m.renderStatusBarLine(),
	)
	if m.help.ShowAll {
		out = lipgloss.JoinVertical(lipgloss.Left, out, " "+m.help.View(m.keys))
	}
	return zone.Scan(out)
}

// renderStatusBarLine shows the clock and short help on the left and the
// version chip on the right.
func (m model) renderStatusBarLine() string {
	left := m.now.Format("Mon Jan 02 15:04:05")
	if !m.help.ShowAll {
		left += "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return renderStatusBar(m.styles, m.vp.Width+4, left, "v"+appver.AppVersion)
}
