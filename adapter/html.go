package adapter

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/VerbaLabs/doctrans"
)

// ignoredTags contains HTML tags whose content should not be translated.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// HTMLAdapter extracts and applies translations to HTML content. Unlike a
// deduplicating cache-keyed pipeline, extraction here is strictly positional:
// every non-blank DOM text node becomes one segment, repeated text included,
// so Apply can zip translations back by index.
type HTMLAdapter struct {
	ignoredTags map[string]bool
}

// NewHTMLAdapter creates a new HTML adapter with default ignored tags.
func NewHTMLAdapter() *HTMLAdapter {
	return &HTMLAdapter{ignoredTags: ignoredTags}
}

// NewHTMLAdapterWithIgnoredTags creates a new HTML adapter with custom ignored tags.
func NewHTMLAdapterWithIgnoredTags(tags []string) *HTMLAdapter {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLAdapter{ignoredTags: ignored}
}

// parsedHTML holds the parsed document and the text-node references in
// extraction order, with the surrounding whitespace split off so it can be
// restored around the translation.
type parsedHTML struct {
	root     *html.Node
	refs     []*html.Node
	prefixes []string
	suffixes []string
}

// Extract parses the HTML and collects translatable text nodes in document
// order.
func (a *HTMLAdapter) Extract(content []byte) (any, []TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, &doctrans.AdapterError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	p := &parsedHTML{root: doc.Nodes[0]}
	var nodes []TextNode

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if a.ignoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				prefix := n.Data[:strings.Index(n.Data, trimmed)]
				suffix := n.Data[len(prefix)+len(trimmed):]
				p.refs = append(p.refs, n)
				p.prefixes = append(p.prefixes, prefix)
				p.suffixes = append(p.suffixes, suffix)
				nodes = append(nodes, TextNode{Text: trimmed, NodeType: "html_text"})
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p.root)

	return p, nodes, nil
}

// Apply replaces the text nodes positionally, restoring surrounding
// whitespace, and re-renders the document. Empty translations leave the
// source text in place.
func (a *HTMLAdapter) Apply(parsed any, translations []string) ([]byte, error) {
	p, ok := parsed.(*parsedHTML)
	if !ok {
		return nil, &doctrans.AdapterError{
			Message:     "unexpected parsed document type",
			ContentType: "html",
		}
	}

	for i, ref := range p.refs {
		if i >= len(translations) || translations[i] == "" {
			continue
		}
		ref.Data = p.prefixes[i] + translations[i] + p.suffixes[i]
	}

	var out bytes.Buffer
	if err := html.Render(&out, p.root); err != nil {
		return nil, &doctrans.AdapterError{
			Message:     "failed to render HTML",
			Cause:       err,
			ContentType: "html",
		}
	}
	return out.Bytes(), nil
}

// ContentType identifies the document format.
func (a *HTMLAdapter) ContentType() string {
	return "html"
}

// Verify HTMLAdapter implements Adapter
var _ Adapter = (*HTMLAdapter)(nil)
