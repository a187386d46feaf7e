package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"defterm/internal/term"
	"defterm/internal/theme"
)

// screen caches the rendered scrollback. Lines are only appended between
// clears, so only the tail is rendered on each update; a new epoch or a new
// width renders everything again.
type screen struct {
	epoch int
	width int
	count int
	lines []string
}

// update renders what changed and reports whether anything did.
func (s *screen) update(sb *term.Scrollback, st *theme.Styles, width int) bool {
	src := sb.Lines()
	if s.epoch != sb.Epoch() || s.width != width || len(src) < s.count {
		s.epoch, s.width, s.count = sb.Epoch(), width, 0
		s.lines = s.lines[:0]
	}
	if s.count == len(src) && s.lines != nil {
		return false
	}
	for _, l := range src[s.count:] {
		s.lines = append(s.lines, wrapLine(st.RenderLine(l), width))
	}
	if s.lines == nil {
		s.lines = []string{}
	}
	s.count = len(src)
	return true
}

func (s *screen) content() string { return strings.Join(s.lines, "\n") }

// wrapLine hard-wraps an ANSI string to width cells.
func wrapLine(s string, width int) string {
	if width <= 0 || xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Hardwrap(s, width, true)
}

// truncate cuts plain text to w cells with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

// renderTitleBar draws the window chrome: three dots and a centred title.
func renderTitleBar(st *theme.Styles, width int, title string) string {
	dots := lipgloss.NewStyle().Foreground(theme.Ricing.Red).Render("●") + " " +
		lipgloss.NewStyle().Foreground(theme.Ricing.Warning).Render("●") + " " +
		lipgloss.NewStyle().Foreground(theme.Ricing.Green).Render("●")
	dw := xansi.StringWidth(dots)
	avail := width - 2*dw - 2
	title = truncate(title, avail)
	tw := runewidth.StringWidth(title)
	left := (width - tw) / 2
	if left < dw+1 {
		left = dw + 1
	}
	pad := left - dw
	line := dots + strings.Repeat(" ", pad) + st.Title.Render(title)
	if rest := width - xansi.StringWidth(line); rest > 0 {
		line += strings.Repeat(" ", rest)
	}
	return line
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(st *theme.Styles, width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	chip := st.Chip.Render(right)
	rw := xansi.StringWidth(chip)
	maxL := w - rw - 1
	if maxL < 0 {
		maxL = 0
	}
	left = " " + left
	if xansi.StringWidth(left) > maxL {
		left = xansi.Truncate(left, maxL, "")
	}
	pad := w - xansi.StringWidth(left) - rw
	if pad < 0 {
		pad = 0
	}
	return st.Bar.Render(left+strings.Repeat(" ", pad)) + chip
}
