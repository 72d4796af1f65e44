// Package render turns the line-oriented markdown-like text the models
// produce into HTML fragments. It is deliberately lossy and order-preserving
// and is not meant to round-trip arbitrary markdown.
package render

import (
	"fmt"
	"html"
	"strings"
)

// FragmentKind identifies what a rendered line became.
type FragmentKind string

const (
	KindHeading   FragmentKind = "heading"
	KindListItem  FragmentKind = "list-item"
	KindBold      FragmentKind = "bold"
	KindParagraph FragmentKind = "paragraph"
)

// MaxHeadingLevel caps the heading level derived from consecutive '#'s.
const MaxHeadingLevel = 4

// Fragment is one rendered line.
type Fragment struct {
	Kind FragmentKind
	HTML string
}

// Lines renders text line by line: '#' prefixes become headings, '-'/'*'
// prefixes become list items (loose <li> elements, not wrapped in a list
// container), '**…**'-wrapped lines become bold paragraphs, any other
// non-blank line becomes a paragraph, and blank lines are dropped. Content
// is HTML-escaped.
func Lines(text string) []Fragment {
	var fragments []Fragment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			content := strings.TrimSpace(line[level:])
			if level > MaxHeadingLevel {
				level = MaxHeadingLevel
			}
			fragments = append(fragments, Fragment{
				Kind: KindHeading,
				HTML: fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(content), level),
			})

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			fragments = append(fragments, Fragment{
				Kind: KindListItem,
				HTML: fmt.Sprintf("<li>%s</li>", html.EscapeString(strings.TrimSpace(line[2:]))),
			})

		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			fragments = append(fragments, Fragment{
				Kind: KindBold,
				HTML: fmt.Sprintf("<p><strong>%s</strong></p>", html.EscapeString(line[2:len(line)-2])),
			})

		default:
			fragments = append(fragments, Fragment{
				Kind: KindParagraph,
				HTML: fmt.Sprintf("<p>%s</p>", html.EscapeString(line)),
			})
		}
	}
	return fragments
}

// HTML renders text and joins the fragments with newlines.
func HTML(text string) string {
	fragments := Lines(text)
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.HTML
	}
	return strings.Join(parts, "\n")
}
