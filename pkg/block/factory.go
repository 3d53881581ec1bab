package block

import (
	"github.com/blockpad/blockpad/internal/ulid"
	"github.com/blockpad/blockpad/pkg/richtext"
)

const (
	// DefaultCalloutIcon is the glyph a fresh callout starts with.
	DefaultCalloutIcon = "💡"
	// DefaultCodeLanguage is the language tag a fresh code block starts with.
	DefaultCodeLanguage = "plain"
	// DefaultImageWidthPercent is the initial display width of an image.
	DefaultImageWidthPercent = 70
)

// New creates a block of the given type with a fresh id and the type's
// default field set applied.
func New(t Type) *Block {
	b := &Block{
		ID:   ulid.GenerateID(),
		Type: t,
	}

	switch {
	case t == TypeToDo:
		b.Checked = false
	case t.IsToggle():
		b.Collapsed = false
		b.Children = []*Block{}
	case t == TypeCode:
		b.Language = DefaultCodeLanguage
	case t == TypeCallout:
		b.Icon = DefaultCalloutIcon
	case t == TypeImage:
		b.ImageWidthPercent = DefaultImageWidthPercent
	}

	return b
}

// NewWithText creates a block of the given type holding plain text.
func NewWithText(t Type, text string) *Block {
	b := New(t)
	if t.HasRichText() {
		b.RichText = richtext.FromPlainText(text)
	}
	return b
}

// Clone returns a deep copy of the block, ids retained. History snapshots
// and clipboard captures use it so later edits cannot reach back into the
// captured state.
func (b *Block) Clone() *Block {
	clone := b.shallowCopy()
	clone.RichText = richtext.Clone(b.RichText)
	if b.Children != nil {
		clone.Children = CloneTree(b.Children)
	}
	return clone
}

// CloneWithNewIDs returns a deep copy with a fresh id assigned to the block
// and every descendant. Required whenever a block is duplicated, so identity
// never collides with a block already in the tree.
func (b *Block) CloneWithNewIDs() *Block {
	clone := b.Clone()
	reassignIDs(clone)
	return clone
}

func reassignIDs(b *Block) {
	b.ID = ulid.GenerateID()
	for _, child := range b.Children {
		reassignIDs(child)
	}
}

// CloneTree deep-copies a forest, ids retained.
func CloneTree(tree []*Block) []*Block {
	if tree == nil {
		return nil
	}
	out := make([]*Block, len(tree))
	for i, b := range tree {
		out[i] = b.Clone()
	}
	return out
}

// CloneTreeWithNewIDs deep-copies a forest assigning fresh ids throughout.
func CloneTreeWithNewIDs(tree []*Block) []*Block {
	out := make([]*Block, len(tree))
	for i, b := range tree {
		out[i] = b.CloneWithNewIDs()
	}
	return out
}
