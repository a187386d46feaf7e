package content

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"defterm/internal/theme"
)

// glamourGutter is the margin glamour adds around the document.
const glamourGutter = 2

// RenderTerminal renders the post body for a terminal of the given width.
func RenderTerminal(p Post, width int) (string, error) {
	wrap := width - glamourGutter
	if wrap < 10 {
		wrap = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(theme.Glamour()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render("# " + p.Title + "\n\n" + p.Body)
	if err != nil {
		return "", err
	}
	return trimEdgeBlankLines(out), nil
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts the post body to HTML. Raw HTML in the source is
// omitted.
func RenderHTML(p Post) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(p.Body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func trimEdgeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
