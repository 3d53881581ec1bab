// Package block defines the document's content blocks and the pure tree
// operations over them.
//
// A page's content is a strict forest of blocks: children are owned
// exclusively by their parent and the model carries no parent pointers, so
// cycles are impossible by construction. Parent lookup is always a fresh
// traversal (FindWithParent). All mutating operations are copy-on-write:
// they return a new forest sharing every subtree that was not on the path to
// the mutated node.
package block

import (
	"github.com/blockpad/blockpad/pkg/richtext"
)

// Type tags the block union.
type Type string

const (
	TypeParagraph        Type = "paragraph"
	TypeHeading1         Type = "heading_1"
	TypeHeading2         Type = "heading_2"
	TypeHeading3         Type = "heading_3"
	TypeToggleHeading1   Type = "toggle_heading_1"
	TypeToggleHeading2   Type = "toggle_heading_2"
	TypeToggleHeading3   Type = "toggle_heading_3"
	TypeToggleList       Type = "toggle_list"
	TypeBulletedListItem Type = "bulleted_list_item"
	TypeNumberedListItem Type = "numbered_list_item"
	TypeToDo             Type = "to_do"
	TypeCallout          Type = "callout"
	TypeCode             Type = "code"
	TypeQuote            Type = "quote"
	TypeImage            Type = "image"
	TypeDivider          Type = "divider"
)

// Types lists every known block type in a stable order.
var Types = []Type{
	TypeParagraph,
	TypeHeading1, TypeHeading2, TypeHeading3,
	TypeToggleHeading1, TypeToggleHeading2, TypeToggleHeading3,
	TypeToggleList,
	TypeBulletedListItem, TypeNumberedListItem,
	TypeToDo, TypeCallout, TypeCode, TypeQuote, TypeImage, TypeDivider,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// IsToggle reports whether the type owns collapsible children.
func (t Type) IsToggle() bool {
	switch t {
	case TypeToggleHeading1, TypeToggleHeading2, TypeToggleHeading3, TypeToggleList:
		return true
	}
	return false
}

// HasRichText reports whether the type carries a rich text body.
// Only dividers do not.
func (t Type) HasRichText() bool {
	return t != TypeDivider
}

// HeadingLevel returns 1..3 for heading and toggle-heading types, 0 otherwise.
func (t Type) HeadingLevel() int {
	switch t {
	case TypeHeading1, TypeToggleHeading1:
		return 1
	case TypeHeading2, TypeToggleHeading2:
		return 2
	case TypeHeading3, TypeToggleHeading3:
		return 3
	}
	return 0
}

// Block is one addressable node in the document forest. The ID is assigned
// at creation and never changes for the block's lifetime.
type Block struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`

	RichText []richtext.Run `json:"richText,omitempty"`

	// to_do only.
	Checked bool `json:"checked,omitempty"`

	// Toggle variants render children expanded or collapsed; structurally
	// any block may carry children.
	Collapsed bool     `json:"collapsed,omitempty"`
	Children  []*Block `json:"children,omitempty"`

	// code only.
	Language string `json:"language,omitempty"`

	// callout only.
	Icon string `json:"icon,omitempty"`

	// image only.
	ImageURL          string `json:"imageUrl,omitempty"`
	ImageWidthPercent int    `json:"imageWidthPercent,omitempty"`
}

// PlainText returns the block's text content without annotations.
func (b *Block) PlainText() string {
	return richtext.PlainText(b.RichText)
}

// shallowCopy copies the block value itself; children and runs are shared.
func (b *Block) shallowCopy() *Block {
	c := *b
	return &c
}
