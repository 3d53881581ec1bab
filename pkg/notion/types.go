// Package notion exports a block tree as a Notion-API-compatible JSON
// document. The output is deterministic: the same tree always marshals to
// identical bytes.
package notion

import "encoding/json"

// Document is the exported page: a title and the top-level block list.
type Document struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Block is the exported envelope {"type": t, t: {...}, "children": [...]}.
// The payload key carries the block type's name.
type Block struct {
	Type     string
	Payload  interface{}
	Children []Block
}

func (b Block) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"type": b.Type,
		b.Type: b.Payload,
	}
	if len(b.Children) > 0 {
		m["children"] = b.Children
	}
	return json.Marshal(m)
}

// RichText is the exported run shape.
type RichText struct {
	Type        string      `json:"type"`
	Text        Text        `json:"text"`
	Annotations Annotations `json:"annotations"`
	PlainText   string      `json:"plain_text"`
	Href        *string     `json:"href"`
}

type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

type Link struct {
	URL string `json:"url"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// TextPayload covers every block whose payload is just rich text.
type TextPayload struct {
	RichText []RichText `json:"rich_text"`
}

type ToDoPayload struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

type CalloutPayload struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
}

type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

type CodePayload struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

type ImagePayload struct {
	Type     string        `json:"type"`
	External ExternalImage `json:"external"`
}

type ExternalImage struct {
	URL string `json:"url"`
}

// DividerPayload marshals to the empty object.
type DividerPayload struct{}
