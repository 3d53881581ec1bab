package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpad/blockpad/pkg/block"
)

func TestNewWorkspace(t *testing.T) {
	ws := NewWorkspace()

	require.Len(t, ws.Pages, 1)
	assert.Equal(t, ws.Pages[0].ID, ws.CurrentPageID)
	require.Len(t, ws.Pages[0].Blocks, 1)
	assert.Equal(t, block.TypeParagraph, ws.Pages[0].Blocks[0].Type)
}

func TestWorkspace_DeleteLastPageSynthesizesDefault(t *testing.T) {
	ws := NewWorkspace()
	old := ws.CurrentPageID

	ws.DeletePage(old)

	require.Len(t, ws.Pages, 1)
	assert.NotEqual(t, old, ws.Pages[0].ID)
	assert.Equal(t, ws.Pages[0].ID, ws.CurrentPageID)
	require.Len(t, ws.Pages[0].Blocks, 1)
	assert.Equal(t, block.TypeParagraph, ws.Pages[0].Blocks[0].Type)
}

func TestWorkspace_DeleteCurrentFallsBackToFirst(t *testing.T) {
	ws := NewWorkspace()
	first := ws.Pages[0]
	second := ws.AddPage("Second")
	require.Equal(t, second.ID, ws.CurrentPageID)

	ws.DeletePage(second.ID)

	assert.Equal(t, first.ID, ws.CurrentPageID)
	assert.Len(t, ws.Pages, 1)
}

func TestWorkspace_CurrentPageStaleID(t *testing.T) {
	ws := NewWorkspace()
	ws.CurrentPageID = "stale"

	page := ws.CurrentPage()

	require.NotNil(t, page)
	assert.Equal(t, page.ID, ws.CurrentPageID)
}

func TestWorkspace_SetCurrentUnknownIgnored(t *testing.T) {
	ws := NewWorkspace()
	current := ws.CurrentPageID
	ws.SetCurrent("unknown")
	assert.Equal(t, current, ws.CurrentPageID)
}

func TestPage_CloneIsolation(t *testing.T) {
	page := NewPage("Original")
	page.Blocks = []*block.Block{block.NewWithText(block.TypeParagraph, "body")}

	clone := page.Clone()
	clone.Title = "Changed"
	clone.Blocks[0].RichText[0].Content = "changed"

	assert.Equal(t, "Original", page.Title)
	assert.Equal(t, "body", page.Blocks[0].PlainText())
	assert.Equal(t, page.ID, clone.ID)
}

func selectionTree() []*block.Block {
	toggle := block.NewWithText(block.TypeToggleList, "toggle")
	toggle.Children = []*block.Block{
		block.NewWithText(block.TypeParagraph, "child1"),
		block.NewWithText(block.TypeParagraph, "child2"),
	}
	return []*block.Block{
		block.NewWithText(block.TypeParagraph, "a"),
		toggle,
		block.NewWithText(block.TypeParagraph, "b"),
	}
}

func TestSelection_SelectRange(t *testing.T) {
	tree := selectionTree()
	sel := NewSelection()

	// anchor after target: direction agnostic
	sel.SelectRange(tree, tree[2].ID, tree[0].ID)

	assert.Equal(t, 5, sel.Len()) // a, toggle, child1, child2, b
	assert.Equal(t, tree[2].ID, sel.Anchor())
	assert.True(t, sel.Contains(tree[1].Children[0].ID))
}

func TestSelection_SelectRangeMissingIDNoop(t *testing.T) {
	tree := selectionTree()
	sel := NewSelection()
	sel.Select(tree[0].ID)

	sel.SelectRange(tree, tree[0].ID, "missing")

	assert.Equal(t, 1, sel.Len())
}

func TestSelection_ToggleMember(t *testing.T) {
	sel := NewSelection()
	sel.ToggleMember("a")
	sel.ToggleMember("b")
	assert.Equal(t, "a", sel.Anchor())

	sel.ToggleMember("a")
	assert.False(t, sel.Contains("a"))
	assert.Equal(t, "b", sel.Anchor())
}

func TestCollectOrdered_SkipsSelectedDescendants(t *testing.T) {
	tree := selectionTree()
	toggle := tree[1]

	got := CollectOrdered(tree, map[string]struct{}{
		toggle.ID:             {},
		toggle.Children[1].ID: {}, // child of a selected ancestor
	})

	require.Len(t, got, 1)
	assert.Same(t, toggle, got[0])
}

func TestCollectOrdered_DocumentOrder(t *testing.T) {
	tree := selectionTree()

	got := CollectOrdered(tree, map[string]struct{}{
		tree[2].ID:             {},
		tree[0].ID:             {},
		tree[1].Children[0].ID: {},
	})

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].PlainText())
	assert.Equal(t, "child1", got[1].PlainText())
	assert.Equal(t, "b", got[2].PlainText())
}
