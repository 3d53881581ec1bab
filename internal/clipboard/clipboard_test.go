package clipboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpad/blockpad/pkg/block"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	parent := block.NewWithText(block.TypeToggleList, "parent")
	child := block.NewWithText(block.TypeParagraph, "child")
	parent.Children = []*block.Block{child}
	blocks := []*block.Block{parent, block.NewWithText(block.TypeToDo, "task")}

	s, err := Encode(blocks)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, FormatMarker))

	decoded := Decode(s)
	require.Len(t, decoded, 2)
	assert.Equal(t, parent.ID, decoded[0].ID, "native payloads retain ids")
	require.Len(t, decoded[0].Children, 1)
	assert.Equal(t, "child", decoded[0].Children[0].PlainText())
	assert.Equal(t, block.TypeToDo, decoded[1].Type)
}

func TestEncode_ClonesInput(t *testing.T) {
	b := block.NewWithText(block.TypeParagraph, "before")
	s, err := Encode([]*block.Block{b})
	require.NoError(t, err)

	b.RichText[0].Content = "after"

	decoded := Decode(s)
	require.Len(t, decoded, 1)
	assert.Equal(t, "before", decoded[0].PlainText())
}

func TestDecode_Foreign(t *testing.T) {
	assert.Nil(t, Decode("just some pasted text"))
	assert.Nil(t, Decode(""))
	assert.Nil(t, Decode(FormatMarker+"{not json"))
	assert.Nil(t, Decode(FormatMarker+`{"blocks":[{"type":"martian"}]}`))
}

func TestDecode_EmptyPayload(t *testing.T) {
	s, err := Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, Decode(s))
}

func TestPlainText(t *testing.T) {
	code := block.NewWithText(block.TypeCode, "fmt.Println(1)\nfmt.Println(2)")
	code.Language = "go"
	todo := block.NewWithText(block.TypeToDo, "done")
	todo.Checked = true
	quote := block.NewWithText(block.TypeQuote, "line one\nline two")
	bullet := block.NewWithText(block.TypeBulletedListItem, "outer")
	bullet.Children = []*block.Block{block.NewWithText(block.TypeBulletedListItem, "inner")}

	blocks := []*block.Block{
		block.NewWithText(block.TypeHeading1, "Title"),
		bullet,
		block.NewWithText(block.TypeNumberedListItem, "first"),
		todo,
		quote,
		code,
		block.New(block.TypeDivider),
		block.NewWithText(block.TypeParagraph, "closing"),
	}

	want := strings.Join([]string{
		"# Title",
		"- outer",
		"  - inner",
		"1. first",
		"[x] done",
		"> line one",
		"> line two",
		"```go",
		"fmt.Println(1)",
		"fmt.Println(2)",
		"```",
		"---",
		"closing",
	}, "\n")
	assert.Equal(t, want, PlainText(blocks))
}

func TestPlainText_ToggleHeading(t *testing.T) {
	assert.Equal(t, "## Section", PlainText([]*block.Block{
		block.NewWithText(block.TypeToggleHeading2, "Section"),
	}))
}

func TestMemoryProvider(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Write("hello"))
	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
