package editor

import (
	"go.uber.org/zap"

	"github.com/blockpad/blockpad/internal/history"
	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
	"github.com/blockpad/blockpad/pkg/richtext"
)

// record captures the pre-mutation state. Discrete operations force a
// checkpoint; typing-level edits coalesce through the debounce window.
func (s *Session) record(checkpoint bool) {
	page := s.workspace.CurrentPage()
	if checkpoint {
		s.history.PushCheckpoint(page, s.cursor)
	} else {
		s.history.RecordAuto(page, s.cursor)
	}
}

// InsertBlockAfter creates a block of the given type after the anchor and
// focuses it. A missing anchor appends at top level.
func (s *Session) InsertBlockAfter(anchorID string, t block.Type) *block.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.Valid() {
		return nil
	}
	s.record(true)
	blk := block.New(t)
	page := s.workspace.CurrentPage()
	page.Blocks = block.InsertAfter(page.Blocks, anchorID, blk)
	s.cursor = history.Cursor{BlockID: blk.ID}
	s.scheduleSave()
	return blk.Clone()
}

// AddChildBlock nests a new block of the given type as the parent's last
// child and focuses it.
func (s *Session) AddChildBlock(parentID string, t block.Type) *block.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.Valid() {
		return nil
	}
	page := s.workspace.CurrentPage()
	if block.Find(page.Blocks, parentID) == nil {
		return nil
	}
	s.record(true)
	blk := block.New(t)
	page.Blocks = block.AddChild(page.Blocks, parentID, blk)
	s.cursor = history.Cursor{BlockID: blk.ID}
	s.scheduleSave()
	return blk.Clone()
}

// UpdateBlockText replaces a block's rich text. Successive calls within the
// debounce window collapse into one undo step.
func (s *Session) UpdateBlockText(id string, runs []richtext.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(false)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		b.RichText = richtext.MergeAdjacent(richtext.Clone(runs))
	})
	s.scheduleSave()
}

// ToggleAnnotation flips a formatting attribute over [start, end) of a
// block's text.
func (s *Session) ToggleAnnotation(id string, start, end int, attr richtext.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		b.RichText = richtext.Toggle(b.RichText, start, end, attr)
	})
	s.scheduleSave()
}

// SetTextColor colors [start, end) of a block's text.
func (s *Session) SetTextColor(id string, start, end int, color richtext.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		b.RichText = richtext.SetColor(b.RichText, start, end, color)
	})
	s.scheduleSave()
}

// SetBlockType converts a block to another type, keeping its text and
// children. Fields the new type does not carry are reset; fields it
// introduces get the type's defaults.
func (s *Session) SetBlockType(id string, t block.Type) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.Valid() {
		return
	}
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		if b.Type == t {
			return
		}
		defaults := block.New(t)
		b.Type = t
		b.Checked = false
		b.Collapsed = false
		b.Language = defaults.Language
		b.Icon = defaults.Icon
		b.ImageURL = ""
		b.ImageWidthPercent = defaults.ImageWidthPercent
		if !t.HasRichText() {
			b.RichText = nil
		}
	})
	s.scheduleSave()
}

// ToggleChecked flips a to-do block's checkbox.
func (s *Session) ToggleChecked(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		if b.Type == block.TypeToDo {
			b.Checked = !b.Checked
		}
	})
	s.scheduleSave()
}

// ToggleCollapse flips a toggle block's expansion state. Collapse changes
// are view state and still undoable, matching the snapshot model.
func (s *Session) ToggleCollapse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.ToggleCollapse(page.Blocks, id)
	s.scheduleSave()
}

// SetCodeLanguage sets the language tag on a code block.
func (s *Session) SetCodeLanguage(id, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(true)
	page := s.workspace.CurrentPage()
	page.Blocks = block.Update(page.Blocks, id, func(b *block.Block) {
		if b.Type == block.TypeCode {
			b.Language = language
		}
	})
	s.scheduleSave()
}

// MoveBlockUp swaps a block with its previous sibling. At the boundary the
// call is a no-op and no history entry is kept.
func (s *Session) MoveBlockUp(id string) {
	s.moveBlock(id, block.MoveUp)
}

// MoveBlockDown swaps a block with its next sibling.
func (s *Session) MoveBlockDown(id string) {
	s.moveBlock(id, block.MoveDown)
}

func (s *Session) moveBlock(id string, move func([]*block.Block, string) []*block.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.workspace.CurrentPage()
	// tree ops are copy-on-write, so the move can be probed before the
	// checkpoint is taken
	moved := move(page.Blocks, id)
	if sameOrder(page.Blocks, moved) {
		return
	}
	s.history.PushCheckpoint(page, s.cursor)
	page.Blocks = moved
	s.scheduleSave()
}

// DeleteBlock removes a block and its subtree. Focus moves to the next
// surviving block, or the previous one at the end of the page.
func (s *Session) DeleteBlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteBlocks(map[string]struct{}{id: {}})
}

// DeleteSelection removes every selected block. With an empty selection the
// cursor block is deleted instead.
func (s *Session) DeleteSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.selection.IDs()
	if len(ids) == 0 {
		if s.cursor.BlockID == "" {
			return
		}
		ids = map[string]struct{}{s.cursor.BlockID: {}}
	}
	s.deleteBlocks(ids)
	s.selection.Clear()
}

func (s *Session) deleteBlocks(ids map[string]struct{}) {
	page := s.workspace.CurrentPage()
	selected := document.CollectOrdered(page.Blocks, ids)
	if len(selected) == 0 {
		return
	}
	// deletion cascades, so the focus search must skip descendants too
	doomed := make(map[string]struct{})
	for _, sel := range selected {
		for _, d := range block.Flatten([]*block.Block{sel}) {
			doomed[d.ID] = struct{}{}
		}
	}
	s.record(true)

	next := survivorAfterDeletion(page.Blocks, doomed)
	page.Blocks = block.DeleteMany(page.Blocks, ids)
	if len(page.Blocks) == 0 {
		// a page always keeps at least one editable block
		blk := block.New(block.TypeParagraph)
		page.Blocks = []*block.Block{blk}
		next = blk.ID
	}
	s.cursor = history.Cursor{BlockID: next}
	s.logger.Debug("deleted blocks", zap.Int("count", len(doomed)))
	s.scheduleSave()
}

// survivorAfterDeletion picks the focus target: the first block after the
// last doomed one in document order, else the last block before the first
// doomed one.
func survivorAfterDeletion(tree []*block.Block, doomed map[string]struct{}) string {
	flat := block.Flatten(tree)
	lastDoomed := -1
	firstDoomed := len(flat)
	for i, b := range flat {
		if _, ok := doomed[b.ID]; ok {
			if i < firstDoomed {
				firstDoomed = i
			}
			lastDoomed = i
		}
	}
	for i := lastDoomed + 1; i < len(flat); i++ {
		if _, ok := doomed[flat[i].ID]; !ok {
			return flat[i].ID
		}
	}
	for i := firstDoomed - 1; i >= 0; i-- {
		if _, ok := doomed[flat[i].ID]; !ok {
			return flat[i].ID
		}
	}
	return ""
}

func sameOrder(a, b []*block.Block) bool {
	fa, fb := block.Flatten(a), block.Flatten(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].ID != fb[i].ID {
			return false
		}
	}
	return true
}

// SelectBlock replaces the selection with a single block.
func (s *Session) SelectBlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Select(id)
}

// ToggleSelectMember adds or removes one block from the selection.
func (s *Session) ToggleSelectMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.ToggleMember(id)
}

// SelectRangeTo extends the selection from its anchor to the target in
// document order.
func (s *Session) SelectRangeTo(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	anchor := s.selection.Anchor()
	if anchor == "" {
		anchor = s.cursor.BlockID
	}
	s.selection.SelectRange(s.workspace.CurrentPage().Blocks, anchor, targetID)
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// SelectedIDs returns the selected block ids.
func (s *Session) SelectedIDs() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}
