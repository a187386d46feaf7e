package term

import "strings"

// Scrollback is the append-only output log of a session. Only Reset (used
// by clear) removes lines; every Reset bumps Epoch so incremental renderers
// know to repaint.
type Scrollback struct {
	lines []Line
	epoch int
}

// Append adds lines verbatim.
func (b *Scrollback) Append(lines ...Line) {
	b.lines = append(b.lines, lines...)
}

// Print splits text on line breaks and appends one line per non-blank
// segment in the given style. Leading and trailing blank segments vanish
// along with blank segments in between.
func (b *Scrollback) Print(style Style, text string) {
	for _, seg := range strings.Split(text, "\n") {
		seg = strings.TrimRight(seg, "\r")
		if strings.TrimSpace(seg) == "" {
			continue
		}
		b.lines = append(b.lines, styled(style, seg))
	}
}

// Blank appends one empty line.
func (b *Scrollback) Blank() { b.lines = append(b.lines, Line{}) }

// Reset drops every line.
func (b *Scrollback) Reset() {
	b.lines = nil
	b.epoch++
}

// Lines returns the current lines. Callers must not modify the result.
func (b *Scrollback) Lines() []Line { return b.lines }

// Len returns the number of lines.
func (b *Scrollback) Len() int { return len(b.lines) }

// Epoch counts Resets.
func (b *Scrollback) Epoch() int { return b.epoch }
