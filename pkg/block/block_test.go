package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpad/blockpad/pkg/richtext"
)

func TestNew_Defaults(t *testing.T) {
	t.Run("to_do", func(t *testing.T) {
		b := New(TypeToDo)
		assert.False(t, b.Checked)
		assert.True(t, b.Type.HasRichText())
	})

	t.Run("toggle variants", func(t *testing.T) {
		for _, typ := range []Type{TypeToggleHeading1, TypeToggleHeading2, TypeToggleHeading3, TypeToggleList} {
			b := New(typ)
			assert.False(t, b.Collapsed, typ)
			assert.NotNil(t, b.Children, typ)
			assert.True(t, b.Type.IsToggle(), typ)
		}
	})

	t.Run("code", func(t *testing.T) {
		assert.Equal(t, "plain", New(TypeCode).Language)
	})

	t.Run("callout", func(t *testing.T) {
		assert.Equal(t, DefaultCalloutIcon, New(TypeCallout).Icon)
	})

	t.Run("image", func(t *testing.T) {
		assert.Equal(t, 70, New(TypeImage).ImageWidthPercent)
	})

	t.Run("divider has no rich text", func(t *testing.T) {
		b := NewWithText(TypeDivider, "ignored")
		assert.Nil(t, b.RichText)
		assert.False(t, b.Type.HasRichText())
	})
}

func TestNew_UniqueIDs(t *testing.T) {
	a, b := New(TypeParagraph), New(TypeParagraph)
	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestClone_RetainsIDsAndIsolates(t *testing.T) {
	parent := NewWithText(TypeToggleList, "parent")
	child := NewWithText(TypeParagraph, "child")
	parent.Children = append(parent.Children, child)

	clone := parent.Clone()

	assert.Equal(t, parent.ID, clone.ID)
	require.Len(t, clone.Children, 1)
	assert.Equal(t, child.ID, clone.Children[0].ID)

	// mutating the clone must not leak into the original
	clone.RichText[0].Content = "changed"
	clone.Children[0].RichText[0].Content = "changed"
	assert.Equal(t, "parent", parent.PlainText())
	assert.Equal(t, "child", child.PlainText())
}

func TestCloneWithNewIDs(t *testing.T) {
	parent := NewWithText(TypeToggleList, "parent")
	parent.Children = append(parent.Children, NewWithText(TypeParagraph, "a"), NewWithText(TypeParagraph, "b"))

	clone := parent.CloneWithNewIDs()

	assert.NotEqual(t, parent.ID, clone.ID)
	require.Len(t, clone.Children, 2)
	for i := range clone.Children {
		assert.NotEqual(t, parent.Children[i].ID, clone.Children[i].ID)
		assert.Equal(t, parent.Children[i].PlainText(), clone.Children[i].PlainText())
	}
}

func TestTypeHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, TypeHeading1.HeadingLevel())
	assert.Equal(t, 2, TypeToggleHeading2.HeadingLevel())
	assert.Equal(t, 3, TypeHeading3.HeadingLevel())
	assert.Equal(t, 0, TypeParagraph.HeadingLevel())
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeCallout.Valid())
	assert.False(t, Type("table").Valid())
}

func TestNewWithText(t *testing.T) {
	b := NewWithText(TypeParagraph, "hi")
	require.Len(t, b.RichText, 1)
	assert.Equal(t, richtext.ColorDefault, b.RichText[0].Annotations.Color)
	assert.Equal(t, "hi", b.PlainText())
}
