package theme

import (
	"strings"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// Glamour returns a glamour ANSI style config matching the palette, used to
// render posts in the terminal.
func Glamour() ansi.StyleConfig {
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 {
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	text := hex(Ricing.Text)
	secondary := hex(Ricing.Secondary)
	muted := hex(Ricing.Muted)
	accent := hex(Ricing.Accent)
	green := hex(Ricing.Green)
	yellow := hex(Ricing.Warning)
	info := hex(Ricing.Info)
	red := hex(Ricing.Red)
	bgSoft := hex(Ricing.BgSoft)

	heading := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(accent), Bold: bp(true)}}
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
			Margin:         up(1),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)},
			Indent:         up(1),
			IndentToken:    sp("│ "),
		},
		List:        ansi.StyleList{LevelIndent: 2},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},

		Heading: heading,
		H1:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "# ", Color: sp(accent), Bold: bp(true)}},
		H2:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "## ", Color: sp(accent), Bold: bp(true)}},
		H3:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "### ", Color: sp(accent), Bold: bp(true)}},
		H4:      heading,
		H5:      heading,
		H6:      heading,

		Text:           ansi.StylePrimitive{Color: sp(text)},
		Emph:           ansi.StylePrimitive{Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true)},
		Strikethrough:  ansi.StylePrimitive{CrossedOut: bp(true)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(muted), Format: "\n────────\n"},

		Link:     ansi.StylePrimitive{Color: sp(accent), Underline: bp(true)},
		LinkText: ansi.StylePrimitive{Color: sp(accent), Bold: bp(true)},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
				Margin:         up(2),
			},
			Chroma: &ansi.Chroma{
				Text:            ansi.StylePrimitive{Color: sp(text)},
				Comment:         ansi.StylePrimitive{Color: sp(muted), Italic: bp(true)},
				Keyword:         ansi.StylePrimitive{Color: sp(red)},
				NameFunction:    ansi.StylePrimitive{Color: sp(info)},
				NameBuiltin:     ansi.StylePrimitive{Color: sp(accent)},
				LiteralString:   ansi.StylePrimitive{Color: sp(info)},
				LiteralNumber:   ansi.StylePrimitive{Color: sp(accent)},
				Operator:        ansi.StylePrimitive{Color: sp(red)},
				Punctuation:     ansi.StylePrimitive{Color: sp(secondary)},
				GenericDeleted:  ansi.StylePrimitive{Color: sp(red)},
				GenericInserted: ansi.StylePrimitive{Color: sp(green)},
				GenericStrong:   ansi.StylePrimitive{Bold: bp(true)},
			},
		},

		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("│"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},

		DefinitionTerm:        ansi.StylePrimitive{Bold: bp(true)},
		DefinitionDescription: ansi.StylePrimitive{Color: sp(secondary)},
	}
}
