package editor

import (
	"github.com/blockpad/blockpad/internal/history"
	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/richtext"
)

// Undo restores the previous snapshot of the current page and reports
// whether anything changed. The caret returns to where it was when the
// snapshot was taken, deferred so the host can re-render first.
func (s *Session) Undo() bool {
	s.mu.Lock()
	page := s.workspace.CurrentPage()
	entry, ok := s.history.Undo(page, s.cursor)
	if ok {
		s.workspace.ReplacePage(entry.Page)
		s.selection.Clear()
		s.scheduleSave()
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.deferFn(func() { s.restoreCursor(entry.Cursor) })
	return true
}

// Redo re-applies the snapshot most recently undone.
func (s *Session) Redo() bool {
	s.mu.Lock()
	page := s.workspace.CurrentPage()
	entry, ok := s.history.Redo(page, s.cursor)
	if ok {
		s.workspace.ReplacePage(entry.Page)
		s.selection.Clear()
		s.scheduleSave()
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.deferFn(func() { s.restoreCursor(entry.Cursor) })
	return true
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo(s.workspace.CurrentPageID)
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo(s.workspace.CurrentPageID)
}

// restoreCursor puts focus back where the restored snapshot had it, falling
// back to the end of the content when that block no longer exists.
func (s *Session) restoreCursor(cursor history.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.workspace.CurrentPage()
	if block.Find(page.Blocks, cursor.BlockID) != nil {
		s.cursor = cursor
		return
	}
	if flat := block.Flatten(page.Blocks); len(flat) > 0 {
		last := flat[len(flat)-1]
		s.cursor = history.Cursor{BlockID: last.ID, Offset: richtext.Length(last.RichText)}
	}
}
