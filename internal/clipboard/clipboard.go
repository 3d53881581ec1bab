// Package clipboard implements the block interchange format.
//
// A copy captures both the native block data (structure preserving) and the
// exported document shape (interop fallback), serialized behind a private
// format marker so paste can tell a native payload apart from foreign plain
// text. Foreign text goes through the import parser instead.
package clipboard

import (
	"encoding/json"
	"strings"

	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/notion"
)

// FormatMarker prefixes every native payload. Anything without it is
// treated as foreign content.
const FormatMarker = "application/x-blockpad+json;"

// Payload carries a copied block list in both representations. Blocks are
// deep clones with their original ids retained; paste assigns fresh ids.
type Payload struct {
	Blocks []*block.Block `json:"blocks"`
	Notion []notion.Block `json:"notion"`
}

// Encode serializes blocks into the tagged interchange string.
func Encode(blocks []*block.Block) (string, error) {
	payload := Payload{
		Blocks: block.CloneTree(blocks),
		Notion: notion.ExportBlocks(blocks),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return FormatMarker + string(data), nil
}

// Decode parses a native payload back into blocks. A missing marker, broken
// JSON or wrong shape yields nil without an error: the caller falls through
// to plain-text import.
func Decode(s string) []*block.Block {
	data, ok := strings.CutPrefix(s, FormatMarker)
	if !ok {
		return nil
	}
	var payload Payload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil
	}
	for _, b := range payload.Blocks {
		if b == nil || !b.Type.Valid() {
			return nil
		}
	}
	return payload.Blocks
}

// PlainText renders blocks as a markdown-ish projection for foreign
// clipboard targets. Numbered items always use a literal "1." prefix and
// children indent two spaces per depth level.
func PlainText(blocks []*block.Block) string {
	var sb strings.Builder
	writePlainText(&sb, blocks, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writePlainText(sb *strings.Builder, blocks []*block.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, b := range blocks {
		text := b.PlainText()
		switch b.Type {
		case block.TypeHeading1, block.TypeToggleHeading1:
			sb.WriteString(indent + "# " + text + "\n")
		case block.TypeHeading2, block.TypeToggleHeading2:
			sb.WriteString(indent + "## " + text + "\n")
		case block.TypeHeading3, block.TypeToggleHeading3:
			sb.WriteString(indent + "### " + text + "\n")
		case block.TypeBulletedListItem:
			sb.WriteString(indent + "- " + text + "\n")
		case block.TypeNumberedListItem:
			sb.WriteString(indent + "1. " + text + "\n")
		case block.TypeToDo:
			box := "[ ]"
			if b.Checked {
				box = "[x]"
			}
			sb.WriteString(indent + box + " " + text + "\n")
		case block.TypeQuote:
			for _, line := range strings.Split(text, "\n") {
				sb.WriteString(indent + "> " + line + "\n")
			}
		case block.TypeCode:
			sb.WriteString(indent + "```" + b.Language + "\n")
			for _, line := range strings.Split(text, "\n") {
				sb.WriteString(indent + line + "\n")
			}
			sb.WriteString(indent + "```\n")
		case block.TypeDivider:
			sb.WriteString(indent + "---\n")
		default:
			sb.WriteString(indent + text + "\n")
		}
		writePlainText(sb, b.Children, depth+1)
	}
}
