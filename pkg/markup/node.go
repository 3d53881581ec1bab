// Package markup implements the editable-surface codec: the bidirectional
// mapping between a rich-text run list and a neutral tree of inline markup
// nodes. Any concrete surface (native text widget, HTML DOM, rope buffer)
// that exposes this tree satisfies the same contract.
package markup

import (
	"github.com/blockpad/blockpad/pkg/richtext"
)

// Kind discriminates markup nodes.
type Kind int

const (
	// KindElement is an inline wrapper tag with children.
	KindElement Kind = iota + 1
	// KindText is a leaf holding literal text.
	KindText
	// KindLineBreak is a soft line-break marker; on deserialization it
	// emits a literal newline into the run stream and resets nothing.
	KindLineBreak
)

// Tag names an inline wrapper element.
type Tag string

const (
	TagRoot      Tag = "div"
	TagCode      Tag = "code"
	TagColor     Tag = "span"
	TagBold      Tag = "b"
	TagItalic    Tag = "i"
	TagUnderline Tag = "u"
	TagStrike    Tag = "s"
	TagLink      Tag = "a"
)

// Node is one node of the markup tree.
type Node struct {
	Kind     Kind
	Tag      Tag            // elements only
	Color    richtext.Color // TagColor elements only
	Href     string         // TagLink elements only
	Text     string         // text leaves only
	Children []*Node
}

// NewRoot returns an empty container element.
func NewRoot(children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: TagRoot, Children: children}
}

// NewText returns a text leaf.
func NewText(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// NewLineBreak returns a line-break marker.
func NewLineBreak() *Node {
	return &Node{Kind: KindLineBreak}
}

// NewElement returns a wrapper element with the given children.
func NewElement(tag Tag, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// NewColorSpan returns a color wrapper.
func NewColorSpan(color richtext.Color, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: TagColor, Color: color, Children: children}
}

// NewLink returns a link wrapper.
func NewLink(href string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: TagLink, Href: href, Children: children}
}
