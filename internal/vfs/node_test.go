package vfs

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve_RootAliases(t *testing.T) {
	root := Portfolio()
	for _, p := range []string{"", ".", "~"} {
		got, err := Resolve(root, p)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", p, err)
		}
		if got != root {
			t.Fatalf("Resolve(%q) did not return root", p)
		}
	}
}

func TestResolve_TopLevelOnly(t *testing.T) {
	root := Portfolio()
	d, err := Resolve(root, "projects")
	if err != nil || d.Name() != "projects" {
		t.Fatalf("expected projects dir, got %v / %v", d, err)
	}
	if d, err := Resolve(root, "./scripts"); err != nil || d.Name() != "scripts" {
		t.Fatalf("expected ./scripts to resolve, got %v / %v", d, err)
	}
	if _, err := Resolve(root, "dotfiles/nvim"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("nested path should not resolve, got %v", err)
	}
	if _, err := Resolve(root, ".."); !errors.Is(err, ErrNotExist) {
		t.Fatalf("'..' should not resolve, got %v", err)
	}
	if _, err := Resolve(root, "nosuchdir"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if _, err := Resolve(root, "about.txt"); !errors.Is(err, ErrNotDir) {
		t.Fatalf("expected ErrNotDir for a file, got %v", err)
	}
}

func TestEntries_SortedByName(t *testing.T) {
	d, _ := Resolve(Portfolio(), "projects")
	var names []string
	for _, e := range d.Entries() {
		names = append(names, e.DisplayName())
	}
	want := "inference-server/ rss-feed-aggregator/ skripsi-lab/"
	if got := strings.Join(names, " "); got != want {
		t.Fatalf("unexpected order: %q", got)
	}

	var root []string
	for _, e := range Portfolio().Entries() {
		root = append(root, e.Name())
	}
	if root[0] != ".vimrc" || root[1] != ".zshrc" || root[2] != "README.md" || root[len(root)-1] != "skills.json" {
		t.Fatalf("unexpected root order: %v", root)
	}
}

func TestDir_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate entry")
		}
	}()
	_ = Dir("x", File("a"), File("a"))
}

func TestTree_Connectors(t *testing.T) {
	root := Dir("~",
		Dir("a",
			File("x"),
			Dir("y", File("z")),
		),
		Dir("empty"),
		File("b"),
	)
	var got []string
	for _, l := range Tree(root) {
		got = append(got, l.Prefix+l.Node.DisplayName())
	}
	want := []string{
		"├── a/",
		"│   ├── x",
		"│   └── y/",
		"│       └── z",
		"├── b",
		"└── empty/",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestTree_EmptyDir(t *testing.T) {
	if lines := Tree(Dir("empty")); len(lines) != 0 {
		t.Fatalf("expected no lines for empty dir, got %d", len(lines))
	}
}
