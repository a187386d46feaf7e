package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"defterm/internal/widget"
)

func newTestModel(t *testing.T) (tea.Model, *widget.Host) {
	t.Helper()
	zone.NewGlobal()
	host := widget.NewHost("tui-test", clog.New(io.Discard))
	m, err := New(host)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, host
}

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, k tea.KeyType) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func TestModel_SubmitAndHistory(t *testing.T) {
	m, host := newTestModel(t)
	m = typeText(m, "echo hi")
	if got := m.(model).ti.Value(); got != "echo hi" {
		t.Fatalf("typed text not in input: %q", got)
	}
	m = press(m, tea.KeyEnter)

	lines := host.Current().Session().Scrollback().Lines()
	if last := lines[len(lines)-1].Text(); last != "hi" {
		t.Fatalf("unexpected last line: %q", last)
	}
	if got := m.(model).ti.Value(); got != "" {
		t.Fatalf("input should be cleared, got %q", got)
	}

	m = press(m, tea.KeyUp)
	if got := m.(model).ti.Value(); got != "echo hi" {
		t.Fatalf("history recall failed: %q", got)
	}
	m = press(m, tea.KeyDown)
	if got := m.(model).ti.Value(); got != "" {
		t.Fatalf("expected live line, got %q", got)
	}

	view := xansi.Strip(m.View())
	if !strings.Contains(view, "└─$ echo hi") || !strings.Contains(view, "defha@dev-arch") {
		t.Fatalf("view lacks the echoed prompt:\n%s", view)
	}
}

func TestModel_Complete(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(m, "neo")
	m = press(m, tea.KeyTab)
	if got := m.(model).ti.Value(); got != "neofetch" {
		t.Fatalf("expected completion, got %q", got)
	}
}

func TestModel_ClearRepaints(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(m, "help")
	m = press(m, tea.KeyEnter)
	before := len(m.(model).sb.lines)
	m = typeText(m, "clear")
	m = press(m, tea.KeyEnter)
	if got := len(m.(model).sb.lines); got != 3 || got >= before {
		t.Fatalf("expected the 3 banner lines after clear, got %d (was %d)", got, before)
	}
}

func TestModel_QuitDestroysWidget(t *testing.T) {
	m, host := newTestModel(t)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || host.Current() != nil {
		t.Fatalf("quit should destroy the widget and return tea.Quit")
	}
	if m.View() != "Goodbye!\n" {
		t.Fatalf("unexpected final view: %q", m.View())
	}
}

func TestModel_TickUpdatesClock(t *testing.T) {
	m, _ := newTestModel(t)
	at := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.Local)
	m, cmd := m.Update(tickMsg(at))
	if cmd == nil {
		t.Fatalf("tick should schedule the next tick")
	}
	if !m.(model).now.Equal(at) {
		t.Fatalf("clock not updated: %v", m.(model).now)
	}
	if view := xansi.Strip(m.View()); !strings.Contains(view, "Wed May 01 09:30:00") {
		t.Fatalf("status bar lacks the tick time:\n%s", view)
	}
}
