// Package history keeps the submitted command lines of one terminal and the
// cursor used to walk through them with the arrow keys.
package history

// Buffer is an append-only list of submitted lines plus a navigation cursor.
// The cursor ranges over [0, Len()]; Len() is the live (unsubmitted) line.
// The zero value is ready to use.
type Buffer struct {
	entries []string
	cursor  int
}

// Push records line unless it repeats the previous entry, then resets the
// cursor to the live line. Empty lines are ignored.
func (b *Buffer) Push(line string) {
	if line == "" {
		return
	}
	if n := len(b.entries); n == 0 || b.entries[n-1] != line {
		b.entries = append(b.entries, line)
	}
	b.Reset()
}

// Reset moves the cursor back to the live line.
func (b *Buffer) Reset() { b.cursor = len(b.entries) }

// Navigate moves the cursor by dir (-1 older, +1 newer), clamped to
// [0, Len()], and returns the line to show. At Len() that is the empty live
// line, never the last entry.
func (b *Buffer) Navigate(dir int) string {
	c := b.cursor + dir
	if c < 0 {
		c = 0
	}
	if c >= len(b.entries) {
		b.cursor = len(b.entries)
		return ""
	}
	b.cursor = c
	return b.entries[c]
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// Len returns the number of stored entries.
func (b *Buffer) Len() int { return len(b.entries) }

// Entries returns a copy of the stored lines, oldest first.
func (b *Buffer) Entries() []string {
	return append([]string(nil), b.entries...)
}
