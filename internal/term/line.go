package term

import "strings"

// Style is the semantic role of a span. Front ends map styles to colours;
// the core never emits markup. Accent marks directories, the prompt's user
// and host and the logo; Label marks bold field names; Hint is the italic
// help text.
type Style int

const (
	Plain Style = iota
	Heading
	Accent
	Label
	Success
	Info
	Hint
	Error
	Warning
	Prompt
)

var styleNames = [...]string{"plain", "heading", "accent", "label", "success", "info", "hint", "error", "warning", "prompt"}

// String returns a short lowercase name, also used as the CSS class suffix
// by the web UI.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "plain"
	}
	return styleNames[s]
}

// Span is a run of text in a single style.
type Span struct {
	Text  string
	Style Style
}

// Line is one rendered line of output. An empty Line is a blank line.
type Line []Span

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func span(style Style, text string) Span { return Span{Text: text, Style: style} }

func line(spans ...Span) Line { return Line(spans) }

func styled(style Style, text string) Line { return Line{span(style, text)} }
