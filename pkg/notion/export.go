package notion

import (
	"encoding/json"
	"fmt"

	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/document"
	"github.com/blockpad/blockpad/pkg/richtext"
)

// codeLanguage maps the editor's language tag to what the Notion API
// expects for unlabeled code.
func codeLanguage(lang string) string {
	if lang == "" || lang == "plain" {
		return "plain text"
	}
	return lang
}

// ExportPage converts a page into the interchange document.
func ExportPage(page *document.Page) Document {
	return Document{
		Title:  page.Title,
		Blocks: ExportBlocks(page.Blocks),
	}
}

// ExportBlocks converts a forest into exported envelopes, children included.
func ExportBlocks(blocks []*block.Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, exportBlock(b))
	}
	return out
}

func exportBlock(b *block.Block) Block {
	exported := Block{}

	switch b.Type {
	case block.TypeParagraph, block.TypeHeading1, block.TypeHeading2, block.TypeHeading3,
		block.TypeBulletedListItem, block.TypeNumberedListItem, block.TypeQuote:
		exported.Type = string(b.Type)
		exported.Payload = TextPayload{RichText: exportRichText(b.RichText)}

	case block.TypeToggleHeading1, block.TypeToggleHeading2, block.TypeToggleHeading3, block.TypeToggleList:
		// The external format has no toggle-heading concept; every toggle
		// variant collapses to the single "toggle" tag.
		exported.Type = "toggle"
		exported.Payload = TextPayload{RichText: exportRichText(b.RichText)}

	case block.TypeToDo:
		exported.Type = string(b.Type)
		exported.Payload = ToDoPayload{RichText: exportRichText(b.RichText), Checked: b.Checked}

	case block.TypeCallout:
		payload := CalloutPayload{RichText: exportRichText(b.RichText)}
		if b.Icon != "" {
			payload.Icon = &Icon{Type: "emoji", Emoji: b.Icon}
		}
		exported.Type = string(b.Type)
		exported.Payload = payload

	case block.TypeCode:
		exported.Type = string(b.Type)
		exported.Payload = CodePayload{
			RichText: exportRichText(b.RichText),
			Language: codeLanguage(b.Language),
		}

	case block.TypeDivider:
		exported.Type = string(b.Type)
		exported.Payload = DividerPayload{}

	case block.TypeImage:
		exported.Type = string(b.Type)
		exported.Payload = ImagePayload{
			Type:     "external",
			External: ExternalImage{URL: b.ImageURL},
		}

	default:
		// The type set and this switch drifting apart is a programmer
		// error; fail loudly rather than silently dropping content.
		panic(fmt.Sprintf("notion: unhandled block type %q", b.Type))
	}

	if len(b.Children) > 0 {
		exported.Children = ExportBlocks(b.Children)
	}
	return exported
}

func exportRichText(runs []richtext.Run) []RichText {
	normalized := richtext.Normalize(runs)
	out := make([]RichText, 0, len(normalized))
	for _, r := range normalized {
		rt := RichText{
			Type: "text",
			Text: Text{Content: r.Content},
			Annotations: Annotations{
				Bold:          r.Annotations.Bold,
				Italic:        r.Annotations.Italic,
				Strikethrough: r.Annotations.Strikethrough,
				Underline:     r.Annotations.Underline,
				Code:          r.Annotations.Code,
				Color:         string(r.Annotations.Color),
			},
			PlainText: r.PlainText,
		}
		if r.Link != "" {
			link := r.Link
			rt.Text.Link = &Link{URL: link}
			rt.Href = &link
		}
		out = append(out, rt)
	}
	return out
}

// Marshal renders the document as stable, indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
