// Package editor ties the document model, history, selection, clipboard and
// persistence together into a single mutation surface. Every edit goes
// through a Session so history capture and autosave stay consistent.
package editor

import (
	"sync"

	"go.uber.org/zap"

	"github.com/blockpad/blockpad/internal/clipboard"
	"github.com/blockpad/blockpad/internal/history"
	"github.com/blockpad/blockpad/internal/importer"
	"github.com/blockpad/blockpad/internal/storage"
	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
)

// Deferrer schedules a callback to run after the current mutation has been
// rendered. UI hosts hand in their event loop; the default runs inline.
type Deferrer func(fn func())

// Session is the single owner of a workspace during editing. All methods are
// safe for concurrent use; internally everything runs under one lock.
type Session struct {
	mu        sync.Mutex
	workspace *document.Workspace
	history   *history.Manager
	selection *document.Selection
	cursor    history.Cursor
	parser    *importer.Parser
	clip      clipboard.Provider
	saver     *storage.Autosaver
	deferFn   Deferrer
	logger    *zap.Logger
}

type Option func(*Session)

// WithWorkspace starts the session from an existing workspace instead of a
// fresh one.
func WithWorkspace(w *document.Workspace) Option {
	return func(s *Session) {
		if w != nil {
			s.workspace = w
		}
	}
}

// WithClipboard swaps the clipboard provider, e.g. for headless hosts.
func WithClipboard(p clipboard.Provider) Option {
	return func(s *Session) { s.clip = p }
}

// WithAutosaver enables debounced background persistence.
func WithAutosaver(a *storage.Autosaver) Option {
	return func(s *Session) { s.saver = a }
}

// WithDeferrer sets the callback scheduler used for post-mutation focus
// restoration.
func WithDeferrer(d Deferrer) Option {
	return func(s *Session) {
		if d != nil {
			s.deferFn = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		workspace: document.NewWorkspace(),
		history:   history.NewManager(),
		selection: document.NewSelection(),
		parser:    importer.New(),
		clip:      &clipboard.Memory{},
		deferFn:   func(fn func()) { fn() },
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	page := s.workspace.CurrentPage()
	if len(page.Blocks) > 0 {
		s.cursor = history.Cursor{BlockID: page.Blocks[0].ID}
	}
	return s
}

// Workspace returns a deep copy of the current workspace state.
func (s *Session) Workspace() *document.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	pages := make([]*document.Page, len(s.workspace.Pages))
	for i, p := range s.workspace.Pages {
		pages[i] = p.Clone()
	}
	return &document.Workspace{Pages: pages, CurrentPageID: s.workspace.CurrentPageID}
}

// CurrentPage returns a deep copy of the current page.
func (s *Session) CurrentPage() *document.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspace.CurrentPage().Clone()
}

// Cursor reports where editing focus currently is.
func (s *Session) Cursor() history.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SetCursor moves editing focus. Unknown block ids are ignored.
func (s *Session) SetCursor(blockID string, offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if block.Find(s.workspace.CurrentPage().Blocks, blockID) == nil {
		return
	}
	s.cursor = history.Cursor{BlockID: blockID, Offset: offset}
}

// AddPage creates a page, makes it current and focuses its first block.
func (s *Session) AddPage(title string) *document.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.workspace.AddPage(title)
	s.selection.Clear()
	s.cursor = history.Cursor{BlockID: page.Blocks[0].ID}
	s.scheduleSave()
	return page.Clone()
}

// DeletePage removes a page along with its history.
func (s *Session) DeletePage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspace.DeletePage(id)
	s.history.DropPage(id)
	s.selection.Clear()
	s.focusFirstBlock()
	s.scheduleSave()
}

// SwitchPage makes another page current. Selection does not carry across
// pages.
func (s *Session) SwitchPage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.workspace.PageByID(id) == nil {
		return
	}
	s.workspace.SetCurrent(id)
	s.selection.Clear()
	s.focusFirstBlock()
	s.scheduleSave()
}

// RenamePage sets a page title. Title edits coalesce like typing.
func (s *Session) RenamePage(id, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.workspace.PageByID(id)
	if page == nil {
		return
	}
	if page.ID == s.workspace.CurrentPageID {
		s.history.RecordAuto(page, s.cursor)
	}
	page.Title = title
	s.scheduleSave()
}

// SaveNow persists the workspace synchronously, bypassing the autosave
// debounce.
func (s *Session) SaveNow(disk *storage.Disk) error {
	return disk.Save(s.Workspace())
}

// Close flushes pending autosaves.
func (s *Session) Close() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Close()
}

func (s *Session) focusFirstBlock() {
	page := s.workspace.CurrentPage()
	if len(page.Blocks) > 0 {
		s.cursor = history.Cursor{BlockID: page.Blocks[0].ID}
	} else {
		s.cursor = history.Cursor{}
	}
}

func (s *Session) scheduleSave() {
	if s.saver == nil {
		return
	}
	pages := make([]*document.Page, len(s.workspace.Pages))
	for i, p := range s.workspace.Pages {
		pages[i] = p.Clone()
	}
	s.saver.Schedule(&document.Workspace{Pages: pages, CurrentPageID: s.workspace.CurrentPageID})
}
