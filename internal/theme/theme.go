// Package theme centralizes the colour palette and the mapping from the
// shell's semantic styles to terminal styles.
//
// Palette is the "Linux Ricing" theme shown by the theme command: GitHub
// Dark surfaces with an LED blue accent.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"defterm/internal/term"
)

type palette struct {
	Accent  lipgloss.Color // #58a6ff
	Success lipgloss.Color // #238636
	Warning lipgloss.Color // #d29922
	Info    lipgloss.Color // #79c0ff
	Red     lipgloss.Color // #f85149
	Green   lipgloss.Color // #3fb950

	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	Bg     lipgloss.Color // #0d1117
	BgSoft lipgloss.Color // #161b22
	Border lipgloss.Color

	OnAccent lipgloss.Color

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Ricing is the global theme.
var Ricing = palette{
	Accent:  lipgloss.Color("#58a6ff"),
	Success: lipgloss.Color("#238636"),
	Warning: lipgloss.Color("#d29922"),
	Info:    lipgloss.Color("#79c0ff"),
	Red:     lipgloss.Color("#f85149"),
	Green:   lipgloss.Color("#3fb950"),

	Text:      lipgloss.Color("#c9d1d9"),
	Secondary: lipgloss.Color("#b1bac4"),
	Muted:     lipgloss.Color("#8b949e"),

	Bg:     lipgloss.Color("#0d1117"),
	BgSoft: lipgloss.Color("#161b22"),
	Border: lipgloss.Color("#30363d"),

	OnAccent: lipgloss.Color("#0d1117"),

	BarFG: lipgloss.AdaptiveColor{Light: "#24292f", Dark: "#b1bac4"},
	BarBG: lipgloss.AdaptiveColor{Light: "#d0d7de", Dark: "#161b22"},
}

// Styles maps each term.Style to a lipgloss style built by one renderer.
// The TUI uses the default renderer; every SSH session builds its own.
type Styles struct {
	spans [term.Prompt + 1]lipgloss.Style

	Window lipgloss.Style
	Title  lipgloss.Style
	Bar    lipgloss.Style
	Chip   lipgloss.Style
}

// NewStyles builds the span styles with r. A nil renderer means the
// default one.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Ricing
	s := &Styles{}
	fg := func(c lipgloss.Color) lipgloss.Style { return r.NewStyle().Foreground(c) }

	s.spans[term.Plain] = fg(p.Text)
	s.spans[term.Heading] = fg(p.Accent).Bold(true)
	s.spans[term.Accent] = fg(p.Accent).Bold(true)
	s.spans[term.Label] = fg(p.Text).Bold(true)
	s.spans[term.Success] = fg(p.Green)
	s.spans[term.Info] = fg(p.Info)
	s.spans[term.Hint] = fg(p.Muted).Italic(true)
	s.spans[term.Error] = fg(p.Red)
	s.spans[term.Warning] = fg(p.Warning)
	s.spans[term.Prompt] = fg(p.Green).Bold(true)

	s.Window = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.Title = fg(p.Muted)
	s.Bar = r.NewStyle().Foreground(p.BarFG).Background(p.BarBG)
	s.Chip = r.NewStyle().Foreground(p.OnAccent).Background(p.Accent).Padding(0, 1)
	return s
}

// Span returns the style for st.
func (s *Styles) Span(st term.Style) lipgloss.Style {
	if st < 0 || int(st) >= len(s.spans) {
		return s.spans[term.Plain]
	}
	return s.spans[st]
}

// RenderLine renders one scrollback line to an ANSI string.
func (s *Styles) RenderLine(l term.Line) string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(s.Span(sp.Style).Render(sp.Text))
	}
	return b.String()
}
