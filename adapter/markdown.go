package adapter

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/VerbaLabs/doctrans"
)

// MarkdownAdapter extracts and applies translations to Markdown content.
// Goldmark's AST carries the byte offsets of every text node in the source,
// so Apply splices translations back by offset and all surrounding markup
// survives byte for byte. Code blocks and code spans are not translated.
type MarkdownAdapter struct{}

// NewMarkdownAdapter creates a new Markdown adapter.
func NewMarkdownAdapter() *MarkdownAdapter {
	return &MarkdownAdapter{}
}

// parsedMarkdown holds the raw source and the text segment byte ranges.
type parsedMarkdown struct {
	content []byte
	ranges  [][]int // (start, stop) byte ranges into content, in document order
}

// Extract parses the Markdown and collects text segments in document order.
func (a *MarkdownAdapter) Extract(content []byte) (any, []TextNode, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	p := &parsedMarkdown{content: content}
	var nodes []TextNode

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.CodeSpan, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			seg := t.Segment
			raw := content[seg.Start:seg.Stop]
			if strings.TrimSpace(string(raw)) == "" {
				return ast.WalkContinue, nil
			}
			p.ranges = append(p.ranges, []int{seg.Start, seg.Stop})
			nodes = append(nodes, TextNode{Text: string(raw), NodeType: "md_text"})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, nil, &doctrans.AdapterError{
			Message:     "failed to parse Markdown",
			Cause:       err,
			ContentType: "markdown",
		}
	}

	return p, nodes, nil
}

// Apply splices translations into the source by byte offset. Empty
// translations leave the source text in place; overlapping or regressive
// ranges are skipped.
func (a *MarkdownAdapter) Apply(parsed any, translations []string) ([]byte, error) {
	p, ok := parsed.(*parsedMarkdown)
	if !ok {
		return nil, &doctrans.AdapterError{
			Message:     "unexpected parsed document type",
			ContentType: "markdown",
		}
	}

	var out bytes.Buffer
	cursor := 0
	for i, r := range p.ranges {
		if i >= len(translations) {
			break
		}
		if r[0] < cursor {
			continue
		}
		out.Write(p.content[cursor:r[0]])
		if translations[i] != "" {
			out.WriteString(translations[i])
		} else {
			out.Write(p.content[r[0]:r[1]])
		}
		cursor = r[1]
	}
	out.Write(p.content[cursor:])
	return out.Bytes(), nil
}

// ContentType identifies the document format.
func (a *MarkdownAdapter) ContentType() string {
	return "markdown"
}

// Verify MarkdownAdapter implements Adapter
var _ Adapter = (*MarkdownAdapter)(nil)
