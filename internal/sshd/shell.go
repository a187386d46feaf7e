package sshd

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"defterm/internal/term"
	"defterm/internal/theme"
	"defterm/internal/widget"
)

const promptTail = "└─$ "

// shell is a line editor that drives one widget over a raw terminal. The
// widget owns history and completion; the shell only keeps the live line
// and the bookkeeping needed to repaint the prompt.
type shell struct {
	w      io.Writer
	ctrl   *widget.Controller
	surf   *widget.BufferedSurface
	styles *theme.Styles
	cols   int

	value string
	epoch int
	count int
	// rows the drawn prompt occupies; the cursor sits on the last input row
	headerRows int
	inputRows  int
}

func newShell(w io.Writer, ctrl *widget.Controller, surf *widget.BufferedSurface, styles *theme.Styles, cols int) *shell {
	if cols <= 0 {
		cols = 80
	}
	return &shell{w: w, ctrl: ctrl, surf: surf, styles: styles, cols: cols, epoch: -1}
}

// run paints the session, then edits lines until EOF, Ctrl+D on an empty
// line or ctx cancellation.
func (sh *shell) run(ctx context.Context, runes <-chan rune, resizes <-chan int) {
	sh.surf.Drain()
	sh.repaint()

	var dec decoder
	for {
		select {
		case <-ctx.Done():
			return
		case cols := <-resizes:
			if cols > 0 {
				sh.cols = cols
			}
			sh.surf.Resize()
			sh.repaint()
		case r, ok := <-runes:
			if !ok {
				return
			}
			in := dec.feed(r)
			if in.kind == inputEOF && sh.value == "" {
				sh.write("\r\nlogout\r\n")
				return
			}
			sh.apply(in)
		}
	}
}

func (sh *shell) apply(in input) {
	switch in.kind {
	case inputNone, inputEOF:
		return
	case inputRune:
		sh.edit(sh.value + string(in.r))
	case inputBackspace:
		if sh.value == "" {
			return
		}
		rs := []rune(sh.value)
		sh.edit(string(rs[:len(rs)-1]))
	case inputInterrupt:
		sh.write("^C\r\n")
		sh.value = ""
		sh.surf.Press(widget.KeyOther, "")
		sh.drawPrompt()
	case inputRedraw:
		sh.repaint()
	case inputKey:
		sh.surf.Press(in.key, sh.value)
		sh.flush()
	}
}

// edit replaces the live line and redraws only the input row(s).
func (sh *shell) edit(v string) {
	sh.value = v
	sh.surf.Press(widget.KeyOther, v)
	sh.redrawInput()
}

// flush writes whatever the controller changed: a full repaint after a
// reset, appended scrollback lines, or a replaced live line.
func (sh *shell) flush() {
	if v, set, _ := sh.surf.Drain(); set {
		sh.value = v
	}
	sb := sh.ctrl.Session().Scrollback()
	if sb.Epoch() != sh.epoch || sb.Len() < sh.count {
		sh.repaint()
		return
	}
	if sb.Len() > sh.count {
		sh.erasePrompt()
		sh.writeLines(sb.Lines()[sh.count:])
		sh.count = sb.Len()
		sh.drawPrompt()
		return
	}
	sh.redrawInput()
}

// repaint clears the screen and draws the whole scrollback and prompt.
func (sh *shell) repaint() {
	sb := sh.ctrl.Session().Scrollback()
	sh.write("\x1b[2J\x1b[H")
	sh.writeLines(sb.Lines())
	sh.epoch, sh.count = sb.Epoch(), sb.Len()
	sh.drawPrompt()
}

func (sh *shell) writeLines(lines []term.Line) {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(sh.styles.RenderLine(l))
		b.WriteString("\r\n")
	}
	sh.write(b.String())
}

func (sh *shell) header() string {
	s := sh.ctrl.Session()
	p := s.Profile()
	return sh.styles.RenderLine(term.Line{
		{Text: "┌──(", Style: term.Prompt},
		{Text: p.User, Style: term.Accent},
		{Text: "@", Style: term.Prompt},
		{Text: p.Host, Style: term.Accent},
		{Text: ")-[", Style: term.Prompt},
		{Text: s.Cwd(), Style: term.Plain},
		{Text: "]", Style: term.Prompt},
	})
}

func (sh *shell) inputLine() string {
	return sh.styles.RenderLine(term.Line{
		{Text: promptTail, Style: term.Prompt},
		{Text: sh.value, Style: term.Plain},
	})
}

func (sh *shell) drawPrompt() {
	h, in := sh.header(), sh.inputLine()
	sh.write(h + "\r\n" + in)
	sh.headerRows, sh.inputRows = sh.rows(h), sh.rows(in)
}

func (sh *shell) erasePrompt() {
	sh.clearRows(sh.headerRows + sh.inputRows)
	sh.headerRows, sh.inputRows = 0, 0
}

func (sh *shell) redrawInput() {
	in := sh.inputLine()
	sh.clearRows(sh.inputRows)
	sh.write(in)
	sh.inputRows = sh.rows(in)
}

// clearRows moves to the first of the last n rows and erases to the end of
// the screen.
func (sh *shell) clearRows(n int) {
	var b strings.Builder
	for i := 1; i < n; i++ {
		b.WriteString("\x1b[1A")
	}
	b.WriteString("\r\x1b[J")
	sh.write(b.String())
}

// rows is how many terminal rows s takes at the current width.
func (sh *shell) rows(s string) int {
	w := ansi.StringWidth(s)
	if w == 0 {
		return 1
	}
	return (w + sh.cols - 1) / sh.cols
}

func (sh *shell) write(s string) { _, _ = io.WriteString(sh.w, s) }
