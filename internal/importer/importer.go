// Package importer turns pasted plain text into content blocks.
//
// Parsing is best-effort markdown: headings, lists, quotes, fenced code,
// dividers and inline emphasis are recognized; anything else degrades to
// paragraphs. Input never fails to parse; at worst the whole paste becomes
// one paragraph.
package importer

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/blockpad/blockpad/pkg/block"
	"github.com/blockpad/blockpad/pkg/richtext"
)

type Parser struct {
	parser parser.Parser
}

func New() *Parser {
	return &Parser{parser: goldmark.DefaultParser()}
}

// Parse converts source text into a block list. Line endings are
// normalized first; an empty or blank source yields no blocks.
func (p *Parser) Parse(source string) []*block.Block {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	if strings.TrimSpace(source) == "" {
		return nil
	}

	src := []byte(source)
	root := p.parser.Parse(text.NewReader(src))
	return p.convertChildren(root, src)
}

func (p *Parser) convertChildren(parent ast.Node, src []byte) []*block.Block {
	var out []*block.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, p.convert(n, src)...)
	}
	return out
}

func (p *Parser) convert(n ast.Node, src []byte) []*block.Block {
	switch node := n.(type) {
	case *ast.Heading:
		b := block.New(headingType(node.Level))
		b.RichText = inlineRuns(node, src)
		return []*block.Block{b}

	case *ast.ThematicBreak:
		return []*block.Block{block.New(block.TypeDivider)}

	case *ast.FencedCodeBlock:
		b := block.New(block.TypeCode)
		b.Language = normalizeLanguage(string(node.Language(src)))
		b.RichText = richtext.FromPlainText(codeLines(node, src))
		return []*block.Block{b}

	case *ast.CodeBlock:
		b := block.New(block.TypeCode)
		b.RichText = richtext.FromPlainText(codeLines(node, src))
		return []*block.Block{b}

	case *ast.Blockquote:
		return []*block.Block{p.quoteBlock(node, src)}

	case *ast.List:
		return p.listItems(node, src)

	case *ast.Paragraph:
		b := block.New(block.TypeParagraph)
		b.RichText = inlineRuns(node, src)
		return []*block.Block{b}

	default:
		// unrecognized structure degrades to its paragraph-like children
		return p.convertChildren(n, src)
	}
}

// quoteBlock merges every line of the blockquote into a single quote block,
// consecutive source lines joined with newlines.
func (p *Parser) quoteBlock(node *ast.Blockquote, src []byte) *block.Block {
	b := block.New(block.TypeQuote)
	var runs []richtext.Run
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if len(runs) > 0 {
			runs = append(runs, richtext.Run{Content: "\n"})
		}
		runs = append(runs, inlineRuns(child, src)...)
	}
	b.RichText = richtext.MergeAdjacent(runs)
	return b
}

// listItems emits one block per list item, each independently inline-parsed.
// Nested lists become children of the item they belong to.
func (p *Parser) listItems(list *ast.List, src []byte) []*block.Block {
	typ := block.TypeBulletedListItem
	if list.IsOrdered() {
		typ = block.TypeNumberedListItem
	}

	var out []*block.Block
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		b := block.New(typ)
		var runs []richtext.Run
		for part := item.FirstChild(); part != nil; part = part.NextSibling() {
			switch part.Kind() {
			case ast.KindList:
				b.Children = append(b.Children, p.listItems(part.(*ast.List), src)...)
			default:
				if len(runs) > 0 {
					runs = append(runs, richtext.Run{Content: "\n"})
				}
				runs = append(runs, inlineRuns(part, src)...)
			}
		}
		b.RichText = richtext.MergeAdjacent(runs)
		out = append(out, b)
	}
	return out
}

func headingType(level int) block.Type {
	switch level {
	case 1:
		return block.TypeHeading1
	case 2:
		return block.TypeHeading2
	default:
		// markdown knows six levels, the block model three
		return block.TypeHeading3
	}
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "":
		return block.DefaultCodeLanguage
	case "c++", "cpp":
		return "cpp"
	}
	return lang
}

// codeLines returns the verbatim lines between the fences, fence lines
// excluded, without the trailing newline.
func codeLines(node ast.Node, src []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(src))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// inlineRuns flattens a block node's inline content into annotation runs.
// Wrappers extend the active state as they nest; soft and hard line breaks
// become literal newlines.
func inlineRuns(n ast.Node, src []byte) []richtext.Run {
	var runs []richtext.Run
	state := richtext.Annotations{Color: richtext.ColorDefault}
	collectInline(n, src, state, "", &runs)
	return richtext.MergeAdjacent(runs)
}

func collectInline(n ast.Node, src []byte, state richtext.Annotations, link string, runs *[]richtext.Run) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			appendRun(runs, state, link, string(node.Segment.Value(src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				appendRun(runs, state, link, "\n")
			}

		case *ast.String:
			appendRun(runs, state, link, string(node.Value))

		case *ast.CodeSpan:
			code := state
			code.Code = true
			if code.Color == richtext.ColorDefault {
				code.Color = richtext.CodeAccentColor
			}
			collectInline(node, src, code, link, runs)

		case *ast.Emphasis:
			emphasized := state
			if node.Level >= 2 {
				emphasized.Bold = true
			} else {
				emphasized.Italic = true
			}
			collectInline(node, src, emphasized, link, runs)

		case *ast.Link:
			collectInline(node, src, state, string(node.Destination), runs)

		case *ast.AutoLink:
			url := string(node.URL(src))
			appendRun(runs, state, url, url)

		default:
			collectInline(child, src, state, link, runs)
		}
	}
}

func appendRun(runs *[]richtext.Run, state richtext.Annotations, link, content string) {
	if content == "" {
		return
	}
	*runs = append(*runs, richtext.Run{
		Content:     content,
		Annotations: state,
		Link:        link,
		PlainText:   content,
	})
}
