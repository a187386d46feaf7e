package history

import "testing"

func TestNavigate_OlderNewer(t *testing.T) {
	var b Buffer
	b.Push("ls")
	b.Push("tree")

	if got := b.Navigate(-1); got != "tree" {
		t.Fatalf("first older: got %q", got)
	}
	if got := b.Navigate(-1); got != "ls" {
		t.Fatalf("second older: got %q", got)
	}
	if got := b.Navigate(-1); got != "ls" || b.Cursor() != 0 {
		t.Fatalf("older past the first entry should stay at ls, got %q at %d", got, b.Cursor())
	}
	if got := b.Navigate(1); got != "tree" {
		t.Fatalf("newer: got %q", got)
	}
	if got := b.Navigate(1); got != "" || b.Cursor() != 2 {
		t.Fatalf("newer past the last entry should be the empty live line, got %q at %d", got, b.Cursor())
	}
	if got := b.Navigate(1); got != "" || b.Cursor() != 2 {
		t.Fatalf("repeated newer should stay empty, got %q at %d", got, b.Cursor())
	}
}

func TestNavigate_Empty(t *testing.T) {
	var b Buffer
	if got := b.Navigate(-1); got != "" || b.Cursor() != 0 {
		t.Fatalf("older on empty history: %q at %d", got, b.Cursor())
	}
	if got := b.Navigate(1); got != "" || b.Cursor() != 0 {
		t.Fatalf("newer on empty history: %q at %d", got, b.Cursor())
	}
}

func TestPush_Dedup(t *testing.T) {
	var b Buffer
	b.Push("help")
	b.Push("help")
	if b.Len() != 1 {
		t.Fatalf("adjacent repeat should be skipped, len=%d", b.Len())
	}

	var c Buffer
	c.Push("help")
	c.Push("ls")
	c.Push("help")
	if c.Len() != 3 {
		t.Fatalf("non-adjacent repeat should be kept, len=%d", c.Len())
	}
	if e := c.Entries(); e[0] != "help" || e[1] != "ls" || e[2] != "help" {
		t.Fatalf("unexpected entries: %v", e)
	}
}

func TestPush_ResetsCursor(t *testing.T) {
	var b Buffer
	b.Push("a")
	b.Push("b")
	b.Navigate(-1)
	b.Navigate(-1)
	b.Push("b")
	if b.Cursor() != b.Len() {
		t.Fatalf("cursor should be at the live line after push, got %d", b.Cursor())
	}
	if b.Len() != 2 {
		t.Fatalf("repeat of last entry should not be stored, len=%d", b.Len())
	}
}
