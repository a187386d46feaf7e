package vfs

const (
	branch = "├── "
	corner = "└── "
	pipe   = "│   "
	blank  = "    "
)

// TreeLine is one row of a rendered tree: the box-drawing prefix (including
// the connector) followed by the entry itself.
type TreeLine struct {
	Prefix string
	Node   *Node
}

// Tree walks dir depth-first, sorted by name at every level, and returns one
// line per entry below dir. The last entry of a level uses the corner
// connector and a blank continuation; the others use a branch connector and
// a vertical continuation. Files and empty directories end the recursion.
func Tree(dir *Node) []TreeLine {
	var out []TreeLine
	walk(dir, "", &out)
	return out
}

func walk(dir *Node, prefix string, out *[]TreeLine) {
	entries := dir.Entries()
	for i, e := range entries {
		last := i == len(entries)-1
		conn, cont := branch, pipe
		if last {
			conn, cont = corner, blank
		}
		*out = append(*out, TreeLine{Prefix: prefix + conn, Node: e})
		if e.IsDir() && e.Len() > 0 {
			walk(e, prefix+cont, out)
		}
	}
}
