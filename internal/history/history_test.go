package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
)

// fakeClock advances only when told to, letting tests drive the coalescing
// window deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestManager() (*Manager, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	m := NewManager()
	m.Now = func() time.Time { return clock.now }
	return m, clock
}

func pageWithText(text string) *document.Page {
	page := document.NewPage("Test")
	page.Blocks = []*block.Block{block.NewWithText(block.TypeParagraph, text)}
	return page
}

func setText(page *document.Page, text string) {
	page.Blocks = block.Update(page.Blocks, page.Blocks[0].ID, func(b *block.Block) {
		b.RichText = nil
		if text != "" {
			b.RichText = block.NewWithText(block.TypeParagraph, text).RichText
		}
	})
}

func TestPushCheckpoint_Bound(t *testing.T) {
	m, _ := newTestManager()
	page := pageWithText("v0")

	for i := 0; i < 60; i++ {
		setText(page, fmt.Sprintf("v%d", i))
		m.PushCheckpoint(page, Cursor{})
	}

	assert.Equal(t, Limit, m.UndoDepth(page.ID))

	// walk all the way back: the oldest 10 snapshots were evicted, so the
	// earliest recoverable state is v10
	var last Entry
	for m.CanUndo(page.ID) {
		entry, ok := m.Undo(page, Cursor{})
		require.True(t, ok)
		last = entry
	}
	assert.Equal(t, "v10", last.Page.Blocks[0].PlainText())
}

func TestRecordAuto_Coalesces(t *testing.T) {
	m, clock := newTestManager()
	page := pageWithText("a")

	assert.True(t, m.RecordAuto(page, Cursor{}), "first mutation commits")

	// keystrokes inside the window coalesce
	for i := 0; i < 5; i++ {
		clock.advance(50 * time.Millisecond)
		assert.False(t, m.RecordAuto(page, Cursor{}))
	}
	assert.Equal(t, 1, m.UndoDepth(page.ID))

	clock.advance(DebounceInterval)
	assert.True(t, m.RecordAuto(page, Cursor{}))
	assert.Equal(t, 2, m.UndoDepth(page.ID))
}

func TestPushCheckpoint_ResetsWindowAndClearsRedo(t *testing.T) {
	m, clock := newTestManager()
	page := pageWithText("a")

	m.PushCheckpoint(page, Cursor{})
	setText(page, "b")
	m.PushCheckpoint(page, Cursor{})

	_, ok := m.Undo(page, Cursor{})
	require.True(t, ok)
	require.True(t, m.CanRedo(page.ID))

	// a new commit discards the redo branch
	m.PushCheckpoint(page, Cursor{})
	assert.False(t, m.CanRedo(page.ID))

	// checkpoint resets the coalescing window: an auto record immediately
	// afterwards is suppressed
	clock.advance(10 * time.Millisecond)
	assert.False(t, m.RecordAuto(page, Cursor{}))
}

func TestUndoRedo_EmptyStacksAreNoops(t *testing.T) {
	m, _ := newTestManager()
	page := pageWithText("a")

	_, ok := m.Undo(page, Cursor{})
	assert.False(t, ok)
	_, ok = m.Redo(page, Cursor{})
	assert.False(t, ok)
}

func TestUndoRedo_Symmetry(t *testing.T) {
	m, _ := newTestManager()
	page := pageWithText("v0")
	states := []string{"v0"}

	// n mutations, each preceded by a checkpoint
	for i := 1; i <= 5; i++ {
		m.PushCheckpoint(page, Cursor{})
		setText(page, fmt.Sprintf("v%d", i))
		states = append(states, fmt.Sprintf("v%d", i))
	}

	// undo all the way back to the pre-mutation state
	for i := 4; i >= 0; i-- {
		entry, ok := m.Undo(page, Cursor{})
		require.True(t, ok)
		page = entry.Page
		assert.Equal(t, states[i], page.Blocks[0].PlainText())
	}

	// redo all the way forward
	for i := 1; i <= 5; i++ {
		entry, ok := m.Redo(page, Cursor{})
		require.True(t, ok)
		page = entry.Page
		assert.Equal(t, states[i], page.Blocks[0].PlainText())
	}
}

func TestUndo_SnapshotsAreIsolated(t *testing.T) {
	m, _ := newTestManager()
	page := pageWithText("original")
	m.PushCheckpoint(page, Cursor{BlockID: page.Blocks[0].ID, Offset: 4})

	// mutate the live page after the snapshot
	setText(page, "changed")

	entry, ok := m.Undo(page, Cursor{})
	require.True(t, ok)
	assert.Equal(t, "original", entry.Page.Blocks[0].PlainText())
	assert.Equal(t, 4, entry.Cursor.Offset)
}

func TestManager_PagesAreIndependent(t *testing.T) {
	m, _ := newTestManager()
	a, b := pageWithText("a"), pageWithText("b")

	m.PushCheckpoint(a, Cursor{})

	assert.True(t, m.CanUndo(a.ID))
	assert.False(t, m.CanUndo(b.ID))
}

func TestDropPage(t *testing.T) {
	m, _ := newTestManager()
	page := pageWithText("a")
	m.PushCheckpoint(page, Cursor{})

	m.DropPage(page.ID)

	assert.False(t, m.CanUndo(page.ID))
}
