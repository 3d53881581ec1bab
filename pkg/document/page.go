// Package document owns the page and workspace model: one page is one
// document, a workspace is the set of pages with exactly one current at a
// time.
package document

import (
	"github.com/google/uuid"

	"github.com/blockpad/blockpad/pkg/block"
)

// Page is a single document: a title and the top-level block forest.
// Ordering of Blocks is document order.
type Page struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Blocks []*block.Block `json:"blocks"`
}

// NewPage creates an empty page with the given title and one empty
// paragraph, the minimal editable state.
func NewPage(title string) *Page {
	return &Page{
		ID:     uuid.NewString(),
		Title:  title,
		Blocks: []*block.Block{block.New(block.TypeParagraph)},
	}
}

// Clone deep-copies the page, block ids retained. History snapshots rely on
// this so the live tree and the snapshot never share blocks.
func (p *Page) Clone() *Page {
	return &Page{
		ID:     p.ID,
		Title:  p.Title,
		Blocks: block.CloneTree(p.Blocks),
	}
}

// Workspace owns zero or more pages; exactly one is current.
type Workspace struct {
	Pages         []*Page `json:"pages"`
	CurrentPageID string  `json:"currentPageId"`
}

// NewWorkspace creates a workspace holding one fresh default page.
func NewWorkspace() *Workspace {
	page := NewPage("Untitled")
	return &Workspace{
		Pages:         []*Page{page},
		CurrentPageID: page.ID,
	}
}

// CurrentPage returns the current page, falling back to the first page when
// CurrentPageID is stale. A workspace is never empty, so the fallback is
// always available.
func (w *Workspace) CurrentPage() *Page {
	for _, p := range w.Pages {
		if p.ID == w.CurrentPageID {
			return p
		}
	}
	if len(w.Pages) == 0 {
		page := NewPage("Untitled")
		w.Pages = append(w.Pages, page)
		w.CurrentPageID = page.ID
		return page
	}
	w.CurrentPageID = w.Pages[0].ID
	return w.Pages[0]
}

// PageByID returns the page with the given id, or nil.
func (w *Workspace) PageByID(id string) *Page {
	for _, p := range w.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddPage appends a fresh page and makes it current.
func (w *Workspace) AddPage(title string) *Page {
	page := NewPage(title)
	w.Pages = append(w.Pages, page)
	w.CurrentPageID = page.ID
	return page
}

// DeletePage removes the page with the given id. Deleting the last page
// synthesizes a fresh default page so the workspace is never empty. When the
// current page is deleted, the first remaining page becomes current.
func (w *Workspace) DeletePage(id string) {
	pages := make([]*Page, 0, len(w.Pages))
	for _, p := range w.Pages {
		if p.ID != id {
			pages = append(pages, p)
		}
	}
	w.Pages = pages

	if len(w.Pages) == 0 {
		page := NewPage("Untitled")
		w.Pages = []*Page{page}
		w.CurrentPageID = page.ID
		return
	}
	if w.PageByID(w.CurrentPageID) == nil {
		w.CurrentPageID = w.Pages[0].ID
	}
}

// SetCurrent switches the current page. Unknown ids are ignored.
func (w *Workspace) SetCurrent(id string) {
	if w.PageByID(id) != nil {
		w.CurrentPageID = id
	}
}

// ReplacePage swaps the stored page with the same id for the given one.
// Undo/redo restores snapshots through this.
func (w *Workspace) ReplacePage(page *Page) {
	for i, p := range w.Pages {
		if p.ID == page.ID {
			w.Pages[i] = page
			return
		}
	}
}
