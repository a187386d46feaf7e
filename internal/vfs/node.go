// Package vfs holds the fabricated, read-only directory tree shown by the
// terminal's ls and tree commands. Nothing here touches the real filesystem.
package vfs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotExist reports a path that names no top-level entry.
	ErrNotExist = errors.New("no such file or directory")
	// ErrNotDir reports a path that names a file where a directory was expected.
	ErrNotDir = errors.New("not a directory")
)

// Kind tags a Node as a file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Node is either a file or a directory with named children.
// Nodes are immutable once built.
type Node struct {
	name     string
	kind     Kind
	children map[string]*Node
}

// File returns a file node.
func File(name string) *Node {
	return &Node{name: name, kind: KindFile}
}

// Dir returns a directory node holding children. Tree literals are program
// constants, so a duplicate name is a programming error and panics.
func Dir(name string, children ...*Node) *Node {
	d := &Node{name: name, kind: KindDir, children: make(map[string]*Node, len(children))}
	for _, c := range children {
		if _, dup := d.children[c.name]; dup {
			panic(fmt.Sprintf("vfs: duplicate entry %q in %q", c.name, name))
		}
		d.children[c.name] = c
	}
	return d
}

func (n *Node) Name() string { return n.name }
func (n *Node) IsDir() bool  { return n.kind == KindDir }

// Len returns the number of direct children (0 for files).
func (n *Node) Len() int { return len(n.children) }

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Entries returns the direct children sorted by name (byte order).
func (n *Node) Entries() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// DisplayName is the name with a trailing slash for directories.
func (n *Node) DisplayName() string {
	if n.IsDir() {
		return n.name + "/"
	}
	return n.name
}

// Resolve finds the directory a command argument refers to. "", "." and "~"
// mean root. Only one level is supported: anything else must be the exact
// name of a top-level entry, optionally prefixed with "./".
func Resolve(root *Node, path string) (*Node, error) {
	if path == "" || path == "." || path == "~" {
		return root, nil
	}
	clean := strings.TrimPrefix(path, "./")
	n, ok := root.Child(clean)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
	}
	if !n.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
	}
	return n, nil
}
