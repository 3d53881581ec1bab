package markup

import (
	"strings"

	"github.com/blockpad/blockpad/pkg/richtext"
)

// ToMarkup serializes runs into a markup tree. Wrapper order is fixed,
// innermost first: code, color, bold, italic, underline, strikethrough,
// link. The order is a contract: repeated round-trips of the same
// annotation set must produce an identical tree.
//
// Embedded newlines become line-break nodes inside the run's wrappers, so
// the surrounding annotation state survives the break.
func ToMarkup(runs []richtext.Run) *Node {
	root := NewRoot()
	for _, run := range richtext.Normalize(runs) {
		if node := runToNode(run); node != nil {
			root.Children = append(root.Children, node...)
		}
	}
	return root
}

func runToNode(run richtext.Run) []*Node {
	if run.Content == "" {
		return nil
	}

	var inner []*Node
	for i, segment := range strings.Split(run.Content, "\n") {
		if i > 0 {
			inner = append(inner, NewLineBreak())
		}
		if segment != "" {
			inner = append(inner, NewText(segment))
		}
	}

	a := run.Annotations
	if a.Code {
		inner = []*Node{NewElement(TagCode, inner...)}
	}
	// The code accent color is implied by the code tag; emitting it would
	// only add a redundant wrapper on every round-trip.
	if a.Color != richtext.ColorDefault && !(a.Code && a.Color == richtext.CodeAccentColor) {
		inner = []*Node{NewColorSpan(a.Color, inner...)}
	}
	if a.Bold {
		inner = []*Node{NewElement(TagBold, inner...)}
	}
	if a.Italic {
		inner = []*Node{NewElement(TagItalic, inner...)}
	}
	if a.Underline {
		inner = []*Node{NewElement(TagUnderline, inner...)}
	}
	if a.Strikethrough {
		inner = []*Node{NewElement(TagStrike, inner...)}
	}
	if run.Link != "" {
		inner = []*Node{NewLink(run.Link, inner...)}
	}
	return inner
}

type walkState struct {
	annotations richtext.Annotations
	link        string
}

// FromMarkup walks the markup tree accumulating an active annotation state
// that is extended, never retracted, as wrapper tags are entered. Adjacent
// text under identical state coalesces into one run. Nested color wrappers
// overwrite the inherited color: innermost wins, backgrounds included.
// A code span with no explicit color picks up the fixed accent color.
func FromMarkup(root *Node) []richtext.Run {
	if root == nil {
		return nil
	}
	var runs []richtext.Run
	state := walkState{annotations: richtext.Annotations{Color: richtext.ColorDefault}}
	walk(root.Children, state, &runs)
	return richtext.MergeAdjacent(runs)
}

func walk(nodes []*Node, state walkState, runs *[]richtext.Run) {
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			emit(runs, state, n.Text)
		case KindLineBreak:
			// newline is content, not a state reset
			emit(runs, state, "\n")
		case KindElement:
			walk(n.Children, extend(state, n), runs)
		}
	}
}

func extend(state walkState, n *Node) walkState {
	switch n.Tag {
	case TagCode:
		state.annotations.Code = true
	case TagColor:
		if c := n.Color.Normalized(); c != richtext.ColorDefault {
			state.annotations.Color = c
		}
	case TagBold:
		state.annotations.Bold = true
	case TagItalic:
		state.annotations.Italic = true
	case TagUnderline:
		state.annotations.Underline = true
	case TagStrike:
		state.annotations.Strikethrough = true
	case TagLink:
		if n.Href != "" {
			state.link = n.Href
		}
	}
	return state
}

func emit(runs *[]richtext.Run, state walkState, content string) {
	if content == "" {
		return
	}
	a := state.annotations
	if a.Code && a.Color == richtext.ColorDefault {
		a.Color = richtext.CodeAccentColor
	}
	*runs = append(*runs, richtext.Run{
		Content:     content,
		Annotations: a,
		Link:        state.link,
		PlainText:   content,
	})
}
