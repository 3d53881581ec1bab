package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/blockpad/blockpad/pkg/richtext"
)

// Render writes the markup tree as an HTML-ish string with escaped text.
// Used for debugging and the clipboard's rich projection; the editing path
// never parses this back.
func Render(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
	case KindLineBreak:
		b.WriteString("<br>")
	case KindElement:
		open, close := tagPair(n)
		b.WriteString(open)
		for _, child := range n.Children {
			render(b, child)
		}
		b.WriteString(close)
	}
}

func tagPair(n *Node) (string, string) {
	switch n.Tag {
	case TagRoot:
		return "", ""
	case TagColor:
		return fmt.Sprintf(`<span class=%q>`, "color-"+string(n.Color)), "</span>"
	case TagLink:
		return fmt.Sprintf(`<a href=%q>`, n.Href), "</a>"
	default:
		return "<" + string(n.Tag) + ">", "</" + string(n.Tag) + ">"
	}
}

// RenderRuns is shorthand for Render(ToMarkup(runs)).
func RenderRuns(runs []richtext.Run) string {
	return Render(ToMarkup(runs))
}
