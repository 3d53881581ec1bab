package editor

import (
	"github.com/blockpad/blockpad/internal/clipboard"
	"github.com/blockpad/blockpad/internal/history"
	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
)

// Copy writes the selected blocks, or the cursor block when nothing is
// selected, to the clipboard as a native payload.
func (s *Session) Copy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blocks := s.copyTargets()
	if len(blocks) == 0 {
		return nil
	}
	payload, err := clipboard.Encode(blocks)
	if err != nil {
		return err
	}
	return s.clip.Write(payload)
}

// CopyPlainText writes the markdown-ish projection instead of the native
// payload, for pasting into foreign applications.
func (s *Session) CopyPlainText() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blocks := s.copyTargets()
	if len(blocks) == 0 {
		return nil
	}
	return s.clip.Write(clipboard.PlainText(blocks))
}

// Cut copies then deletes in one undo step.
func (s *Session) Cut() error {
	if err := s.Copy(); err != nil {
		return err
	}
	s.DeleteSelection()
	return nil
}

// Paste reads the clipboard and inserts its content after the cursor block.
// Native payloads keep their structure with fresh ids; anything else goes
// through the markdown importer.
func (s *Session) Paste() error {
	content, err := s.clip.Read()
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}

	if blocks := clipboard.Decode(content); blocks != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(blocks) == 0 {
			return nil
		}
		s.record(true)
		fresh := block.CloneTreeWithNewIDs(blocks)
		page := s.workspace.CurrentPage()
		page.Blocks = block.InsertManyAfter(page.Blocks, s.pasteAnchor(page), fresh)
		s.cursor = history.Cursor{BlockID: fresh[0].ID}
		s.scheduleSave()
		return nil
	}

	s.PasteText(content)
	return nil
}

// PasteText runs foreign text through the markdown importer and applies the
// result at the cursor block: the first parsed block replaces the target's
// content in place, the rest are inserted after it. Focus lands on the last
// inserted block.
func (s *Session) PasteText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parsed := s.parser.Parse(text)
	if len(parsed) == 0 {
		return
	}
	s.record(true)

	page := s.workspace.CurrentPage()
	targetID := s.cursor.BlockID
	if block.Find(page.Blocks, targetID) == nil {
		fresh := block.CloneTreeWithNewIDs(parsed)
		page.Blocks = block.InsertManyAfter(page.Blocks, "", fresh)
		s.cursor = history.Cursor{BlockID: fresh[len(fresh)-1].ID}
		s.scheduleSave()
		return
	}

	first := parsed[0]
	page.Blocks = block.Update(page.Blocks, targetID, func(b *block.Block) {
		b.Type = first.Type
		b.RichText = first.RichText
		b.Checked = first.Checked
		b.Language = first.Language
		b.Icon = first.Icon
		b.ImageURL = first.ImageURL
		b.ImageWidthPercent = first.ImageWidthPercent
		b.Children = block.CloneTreeWithNewIDs(first.Children)
	})
	focus := targetID
	if rest := parsed[1:]; len(rest) > 0 {
		fresh := block.CloneTreeWithNewIDs(rest)
		page.Blocks = block.InsertManyAfter(page.Blocks, targetID, fresh)
		focus = fresh[len(fresh)-1].ID
	}
	s.cursor = history.Cursor{BlockID: focus}
	s.scheduleSave()
}

// pasteAnchor resolves where pasted blocks land: after the selection's last
// block in document order, else after the cursor block. An empty result
// falls through to appending at the end of the page.
func (s *Session) pasteAnchor(page *document.Page) string {
	if !s.selection.Empty() {
		ordered := document.CollectOrdered(page.Blocks, s.selection.IDs())
		if len(ordered) > 0 {
			return ordered[len(ordered)-1].ID
		}
	}
	return s.cursor.BlockID
}

func (s *Session) copyTargets() []*block.Block {
	page := s.workspace.CurrentPage()
	if !s.selection.Empty() {
		return document.CollectOrdered(page.Blocks, s.selection.IDs())
	}
	if b := block.Find(page.Blocks, s.cursor.BlockID); b != nil {
		return []*block.Block{b}
	}
	return nil
}
