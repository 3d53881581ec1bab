// Package history implements bounded per-page undo/redo with time-debounced
// coalescing.
//
// Every entry is a full page snapshot plus the cursor position at capture
// time. Rapid keystroke-level mutations coalesce into one undo step per
// burst of typing; structurally distinct operations push an explicit
// checkpoint beforehand and are therefore always exactly one step.
package history

import (
	"time"

	"github.com/blockpad/blockpad/pkg/document"
)

const (
	// Limit caps each page's undo and redo stacks; the oldest entry is
	// evicted on overflow.
	Limit = 50

	// DebounceInterval is the minimum gap between two automatic commits.
	DebounceInterval = 500 * time.Millisecond
)

// Cursor records where editing focus was when a snapshot was taken, so undo
// can put the caret back.
type Cursor struct {
	BlockID string
	Offset  int
}

// Entry is one recoverable state.
type Entry struct {
	Page   *document.Page
	Cursor Cursor
}

type pageHistory struct {
	undo       []Entry
	redo       []Entry
	lastCommit time.Time
}

// Manager keeps an independent undo/redo stack pair per page.
type Manager struct {
	// Now is the clock; tests substitute it to drive coalescing.
	Now func() time.Time

	pages map[string]*pageHistory
}

func NewManager() *Manager {
	return &Manager{
		Now:   time.Now,
		pages: make(map[string]*pageHistory),
	}
}

func (m *Manager) pageHistory(pageID string) *pageHistory {
	h, ok := m.pages[pageID]
	if !ok {
		h = &pageHistory{}
		m.pages[pageID] = h
	}
	return h
}

// PushCheckpoint records an explicit save point. It always commits,
// resets the coalescing window and clears the redo stack.
func (m *Manager) PushCheckpoint(page *document.Page, cursor Cursor) {
	h := m.pageHistory(page.ID)
	m.commit(h, page, cursor)
}

// RecordAuto attempts an automatic commit and reports whether one happened.
// Commits are suppressed while the debounce window since the last commit is
// still open, coalescing a typing burst into a single undo step.
func (m *Manager) RecordAuto(page *document.Page, cursor Cursor) bool {
	h := m.pageHistory(page.ID)
	if m.Now().Sub(h.lastCommit) < DebounceInterval {
		return false
	}
	m.commit(h, page, cursor)
	return true
}

func (m *Manager) commit(h *pageHistory, page *document.Page, cursor Cursor) {
	h.undo = append(h.undo, Entry{Page: page.Clone(), Cursor: cursor})
	if len(h.undo) > Limit {
		h.undo = h.undo[len(h.undo)-Limit:]
	}
	h.redo = nil
	h.lastCommit = m.Now()
}

// Undo pops the most recent entry, pushing the current state onto the redo
// stack. It bypasses the debounce logic entirely and never creates undo
// entries of its own. Returns false when there is nothing to undo.
func (m *Manager) Undo(current *document.Page, cursor Cursor) (Entry, bool) {
	h := m.pageHistory(current.ID)
	if len(h.undo) == 0 {
		return Entry{}, false
	}
	entry := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	h.redo = append(h.redo, Entry{Page: current.Clone(), Cursor: cursor})
	if len(h.redo) > Limit {
		h.redo = h.redo[len(h.redo)-Limit:]
	}
	return entry, true
}

// Redo is symmetric to Undo. Returns false when there is nothing to redo.
func (m *Manager) Redo(current *document.Page, cursor Cursor) (Entry, bool) {
	h := m.pageHistory(current.ID)
	if len(h.redo) == 0 {
		return Entry{}, false
	}
	entry := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	h.undo = append(h.undo, Entry{Page: current.Clone(), Cursor: cursor})
	if len(h.undo) > Limit {
		h.undo = h.undo[len(h.undo)-Limit:]
	}
	return entry, true
}

func (m *Manager) CanUndo(pageID string) bool {
	h, ok := m.pages[pageID]
	return ok && len(h.undo) > 0
}

func (m *Manager) CanRedo(pageID string) bool {
	h, ok := m.pages[pageID]
	return ok && len(h.redo) > 0
}

// UndoDepth returns the number of recoverable undo entries for a page.
func (m *Manager) UndoDepth(pageID string) int {
	h, ok := m.pages[pageID]
	if !ok {
		return 0
	}
	return len(h.undo)
}

// DropPage forgets a deleted page's history.
func (m *Manager) DropPage(pageID string) {
	delete(m.pages, pageID)
}
