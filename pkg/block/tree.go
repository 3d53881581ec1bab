package block

// Location describes where a block lives in the forest. Siblings is the
// exact array the block belongs to: the top-level forest itself or some
// ancestor's Children. Parent is nil for top-level blocks.
type Location struct {
	Block    *Block
	Siblings []*Block
	Index    int
	Parent   *Block
}

// FindWithParent locates id with a depth-first preorder search.
// It returns nil if the id is not in the forest.
func FindWithParent(tree []*Block, id string) *Location {
	return findWithParent(tree, nil, id)
}

func findWithParent(siblings []*Block, parent *Block, id string) *Location {
	for i, b := range siblings {
		if b.ID == id {
			return &Location{Block: b, Siblings: siblings, Index: i, Parent: parent}
		}
		if loc := findWithParent(b.Children, b, id); loc != nil {
			return loc
		}
	}
	return nil
}

// Find returns the block with the given id, or nil.
func Find(tree []*Block, id string) *Block {
	if loc := FindWithParent(tree, id); loc != nil {
		return loc.Block
	}
	return nil
}

// Flatten returns the forest in document order (depth-first preorder).
func Flatten(tree []*Block) []*Block {
	var out []*Block
	for _, b := range tree {
		out = append(out, b)
		out = append(out, Flatten(b.Children)...)
	}
	return out
}

// InsertAfter inserts blk immediately following the anchor, in whatever
// sibling array the anchor lives in. A nil anchor id appends to the top
// level; a missing anchor also appends to the top level rather than
// dropping content.
func InsertAfter(tree []*Block, anchorID string, blk *Block) []*Block {
	return InsertManyAfter(tree, anchorID, []*Block{blk})
}

// InsertManyAfter is the batched form of InsertAfter and preserves the
// relative order of blocks.
func InsertManyAfter(tree []*Block, anchorID string, blocks []*Block) []*Block {
	if len(blocks) == 0 {
		return tree
	}
	if anchorID == "" {
		return append(append([]*Block{}, tree...), blocks...)
	}
	out, ok := spliceAfter(tree, anchorID, blocks)
	if !ok {
		return append(append([]*Block{}, tree...), blocks...)
	}
	return out
}

func spliceAfter(tree []*Block, anchorID string, blocks []*Block) ([]*Block, bool) {
	for i, b := range tree {
		if b.ID == anchorID {
			out := make([]*Block, 0, len(tree)+len(blocks))
			out = append(out, tree[:i+1]...)
			out = append(out, blocks...)
			out = append(out, tree[i+1:]...)
			return out, true
		}
	}
	for i, b := range tree {
		if len(b.Children) == 0 {
			continue
		}
		if children, ok := spliceAfter(b.Children, anchorID, blocks); ok {
			return replaceChild(tree, i, children), true
		}
	}
	return tree, false
}

// InsertBefore inserts blk immediately preceding the anchor. Used for
// "split at block start": a new block goes in front while focus stays on
// the anchor. A missing anchor appends to the top level.
func InsertBefore(tree []*Block, anchorID string, blk *Block) []*Block {
	out, ok := spliceBefore(tree, anchorID, blk)
	if !ok {
		return append(append([]*Block{}, tree...), blk)
	}
	return out
}

func spliceBefore(tree []*Block, anchorID string, blk *Block) ([]*Block, bool) {
	for i, b := range tree {
		if b.ID == anchorID {
			out := make([]*Block, 0, len(tree)+1)
			out = append(out, tree[:i]...)
			out = append(out, blk)
			out = append(out, tree[i:]...)
			return out, true
		}
	}
	for i, b := range tree {
		if len(b.Children) == 0 {
			continue
		}
		if children, ok := spliceBefore(b.Children, anchorID, blk); ok {
			return replaceChild(tree, i, children), true
		}
	}
	return tree, false
}

// Update applies fn to a copy of the located block and returns the rewritten
// forest. The callback receives the copy, so partial updates merge into the
// block without the caller ever touching shared state. Children are carried
// over untouched unless fn replaces them. Missing ids are a no-op.
func Update(tree []*Block, id string, fn func(*Block)) []*Block {
	out, _ := update(tree, id, fn)
	return out
}

func update(tree []*Block, id string, fn func(*Block)) ([]*Block, bool) {
	for i, b := range tree {
		if b.ID == id {
			updated := b.shallowCopy()
			fn(updated)
			updated.ID = b.ID // identity is immutable
			out := append([]*Block{}, tree...)
			out[i] = updated
			return out, true
		}
		if len(b.Children) == 0 {
			continue
		}
		if children, ok := update(b.Children, id, fn); ok {
			return replaceChild(tree, i, children), true
		}
	}
	return tree, false
}

// Delete removes the block and its entire subtree. Deleting a toggle
// deletes its nested content; that cascade is intentional. Missing ids are
// a no-op.
func Delete(tree []*Block, id string) []*Block {
	return DeleteMany(tree, map[string]struct{}{id: {}})
}

// DeleteMany removes every block whose id is in the set, at any depth. If a
// block and one of its descendants are both selected, removing the ancestor
// covers the descendant; the redundant entry is harmless.
func DeleteMany(tree []*Block, ids map[string]struct{}) []*Block {
	if len(ids) == 0 {
		return tree
	}
	out, _ := deleteMany(tree, ids)
	return out
}

func deleteMany(tree []*Block, ids map[string]struct{}) ([]*Block, bool) {
	out := make([]*Block, 0, len(tree))
	changed := false
	for _, b := range tree {
		if _, gone := ids[b.ID]; gone {
			changed = true
			continue
		}
		if children, childChanged := deleteMany(b.Children, ids); childChanged {
			b = b.shallowCopy()
			b.Children = children
			changed = true
		}
		out = append(out, b)
	}
	if !changed {
		return tree, false
	}
	return out, true
}

// MoveUp swaps the block with its previous sibling within the same parent
// array. A block already at the boundary stays put; moves never cross
// levels.
func MoveUp(tree []*Block, id string) []*Block {
	out, _ := swapWithNeighbor(tree, id, -1)
	return out
}

// MoveDown swaps the block with its next sibling within the same parent
// array.
func MoveDown(tree []*Block, id string) []*Block {
	out, _ := swapWithNeighbor(tree, id, +1)
	return out
}

func swapWithNeighbor(tree []*Block, id string, delta int) ([]*Block, bool) {
	for i, b := range tree {
		if b.ID == id {
			j := i + delta
			if j < 0 || j >= len(tree) {
				return tree, true // boundary: found but nothing to do
			}
			out := append([]*Block{}, tree...)
			out[i], out[j] = out[j], out[i]
			return out, true
		}
		if len(b.Children) == 0 {
			continue
		}
		if children, ok := swapWithNeighbor(b.Children, id, delta); ok {
			return replaceChild(tree, i, children), true
		}
	}
	return tree, false
}

// ToggleCollapse flips the collapsed flag on a toggle-variant block.
// Non-toggle blocks are left alone; the engine checks the type rather than
// assuming the caller did.
func ToggleCollapse(tree []*Block, id string) []*Block {
	return Update(tree, id, func(b *Block) {
		if b.Type.IsToggle() {
			b.Collapsed = !b.Collapsed
		}
	})
}

// AddChild appends blk to the parent's children, materializing the array if
// absent. Missing parents are a no-op.
func AddChild(tree []*Block, parentID string, blk *Block) []*Block {
	return Update(tree, parentID, func(b *Block) {
		children := make([]*Block, 0, len(b.Children)+1)
		children = append(children, b.Children...)
		b.Children = append(children, blk)
	})
}

// Ordinal computes the displayed number of a numbered-list item: one plus
// the count of immediately preceding siblings of the same type, stopping at
// the first non-matching sibling. Lists restart whenever interrupted by any
// other block type. The value is recomputed on every render pass, never
// stored.
func Ordinal(tree []*Block, id string) int {
	loc := FindWithParent(tree, id)
	if loc == nil || loc.Block.Type != TypeNumberedListItem {
		return 0
	}
	n := 1
	for i := loc.Index - 1; i >= 0; i-- {
		if loc.Siblings[i].Type != TypeNumberedListItem {
			break
		}
		n++
	}
	return n
}

func replaceChild(tree []*Block, i int, children []*Block) []*Block {
	updated := tree[i].shallowCopy()
	updated.Children = children
	out := append([]*Block{}, tree...)
	out[i] = updated
	return out
}
