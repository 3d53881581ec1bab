package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	runs := []Run{
		{Content: "hello"},
		{Content: "world", Annotations: Annotations{Bold: true, Color: "bogus"}},
	}

	got := Normalize(runs)

	require.Len(t, got, 2)
	assert.Equal(t, ColorDefault, got[0].Annotations.Color)
	assert.Equal(t, "hello", got[0].PlainText)
	assert.Equal(t, ColorDefault, got[1].Annotations.Color)
	assert.True(t, got[1].Annotations.Bold)

	// input untouched
	assert.Empty(t, runs[0].PlainText)
}

func TestEqual(t *testing.T) {
	a := []Run{{Content: "x", Annotations: Annotations{Color: ""}}}
	b := []Run{{Content: "x", Annotations: Annotations{Color: ColorDefault}, PlainText: "x"}}
	assert.True(t, Equal(a, b))

	c := []Run{{Content: "x", Annotations: Annotations{Bold: true}}}
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, []Run{}))
}

func TestFromPlainText(t *testing.T) {
	assert.Nil(t, FromPlainText(""))

	runs := FromPlainText("a\nb")
	require.Len(t, runs, 1)
	assert.Equal(t, "a\nb", runs[0].Content)
	assert.Equal(t, "a\nb", runs[0].PlainText)
	assert.Equal(t, ColorDefault, runs[0].Annotations.Color)
}

func TestPlainText(t *testing.T) {
	runs := []Run{{Content: "foo "}, {Content: "bar", Annotations: Annotations{Bold: true}}}
	assert.Equal(t, "foo bar", PlainText(runs))
}

func TestMergeAdjacent(t *testing.T) {
	bold := Annotations{Bold: true, Color: ColorDefault}
	runs := []Run{
		{Content: "a", Annotations: bold},
		{Content: "b", Annotations: bold},
		{Content: ""},
		{Content: "c"},
		{Content: "d", Link: "https://example.com"},
		{Content: "e", Link: "https://example.com"},
	}

	got := MergeAdjacent(runs)

	require.Len(t, got, 3)
	assert.Equal(t, "ab", got[0].Content)
	assert.Equal(t, "c", got[1].Content)
	assert.Equal(t, "de", got[2].Content)
}

func TestMergeAdjacent_LinkSplitsRuns(t *testing.T) {
	runs := []Run{
		{Content: "a", Link: "https://one"},
		{Content: "b", Link: "https://two"},
	}
	assert.Len(t, MergeAdjacent(runs), 2)
}

func TestToggle(t *testing.T) {
	runs := FromPlainText("hello world")

	got := Toggle(runs, 0, 5, AttrBold)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Content)
	assert.True(t, got[0].Annotations.Bold)
	assert.Equal(t, " world", got[1].Content)
	assert.False(t, got[1].Annotations.Bold)
}

func TestToggle_SameRangeTwiceIsIdentity(t *testing.T) {
	runs := FromPlainText("hello world")

	once := Toggle(runs, 3, 8, AttrBold)
	twice := Toggle(once, 3, 8, AttrBold)

	assert.True(t, Equal(Normalize(runs), twice), "expected %v, got %v", runs, twice)
	require.Len(t, twice, 1)
}

func TestToggle_MixedRangeAppliesEverywhere(t *testing.T) {
	runs := Toggle(FromPlainText("abcd"), 0, 2, AttrItalic)

	// range covers italic and plain text, so the whole range becomes italic
	got := Toggle(runs, 0, 4, AttrItalic)
	require.Len(t, got, 1)
	assert.True(t, got[0].Annotations.Italic)
}

func TestToggle_EmptyRange(t *testing.T) {
	runs := FromPlainText("abc")
	assert.Equal(t, runs, Toggle(runs, 2, 2, AttrBold))
}

func TestSetColor(t *testing.T) {
	runs := FromPlainText("abcdef")

	got := SetColor(runs, 2, 4, ColorBlueBackground)

	require.Len(t, got, 3)
	assert.Equal(t, "cd", got[1].Content)
	assert.Equal(t, ColorBlueBackground, got[1].Annotations.Color)
	assert.True(t, got[1].Annotations.Color.IsBackground())
	assert.Equal(t, ColorDefault, got[0].Annotations.Color)
}

func TestLength_Unicode(t *testing.T) {
	runs := []Run{{Content: "héllo"}, {Content: "🙂"}}
	assert.Equal(t, 6, Length(runs))
}

func TestColorNormalized(t *testing.T) {
	assert.Equal(t, ColorDefault, Color("").Normalized())
	assert.Equal(t, ColorDefault, Color("magenta").Normalized())
	assert.Equal(t, ColorRedBackground, ColorRedBackground.Normalized())
}
