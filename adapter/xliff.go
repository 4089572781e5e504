package adapter

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/VerbaLabs/doctrans"
)

var (
	transUnitPattern  = regexp.MustCompile(`(?s)<trans-unit\b[^>]*>.*?</trans-unit>`)
	sourcePattern     = regexp.MustCompile(`(?s)<source\b[^>]*>(.*?)</source>`)
	targetPattern     = regexp.MustCompile(`(?s)<target\b[^>]*>.*?</target>|<target\b[^>]*/>`)
	closeUnitPattern  = regexp.MustCompile(`</trans-unit>`)
	fileTagPattern    = regexp.MustCompile(`<file\b[^>]*>`)
	sourceLangPattern = regexp.MustCompile(`source-language="([^"]*)"`)
	targetLangPattern = regexp.MustCompile(`target-language="([^"]*)"`)
)

// XLIFFAdapter extracts and applies translations to XLIFF 1.2 documents. Each
// trans-unit contributes exactly one segment: the flattened inner XML of its
// <source> element, inline tags included (the service is instructed to carry
// them through). Apply fills or creates the unit's <target>, inserting the
// translation as escaped character data.
type XLIFFAdapter struct{}

// NewXLIFFAdapter creates a new XLIFF adapter.
func NewXLIFFAdapter() *XLIFFAdapter {
	return &XLIFFAdapter{}
}

// parsedXLIFF holds the raw document and the trans-unit byte ranges.
type parsedXLIFF struct {
	content []byte
	units   [][]int // (start, end) byte ranges of each trans-unit, in order
}

// Extract locates every trans-unit and flattens its source. Units without a
// <source> contribute an empty segment so positional alignment is preserved.
func (a *XLIFFAdapter) Extract(content []byte) (any, []TextNode, error) {
	if !bytes.Contains(content, []byte("<xliff")) {
		return nil, nil, &doctrans.AdapterError{
			Message:     "not an XLIFF document",
			ContentType: "xliff",
		}
	}

	units := transUnitPattern.FindAllIndex(content, -1)
	nodes := make([]TextNode, 0, len(units))
	for _, u := range units {
		text := ""
		if m := sourcePattern.FindSubmatch(content[u[0]:u[1]]); m != nil {
			text = strings.TrimSpace(string(m[1]))
		}
		nodes = append(nodes, TextNode{Text: text, NodeType: "xliff_source"})
	}

	return &parsedXLIFF{content: content, units: units}, nodes, nil
}

// Apply writes translations into the trans-units positionally. Existing
// targets are replaced; missing ones are inserted before the closing tag.
// Units beyond the translation count stay untouched.
func (a *XLIFFAdapter) Apply(parsed any, translations []string) ([]byte, error) {
	d, ok := parsed.(*parsedXLIFF)
	if !ok {
		return nil, &doctrans.AdapterError{
			Message:     "unexpected parsed document type",
			ContentType: "xliff",
		}
	}

	var out bytes.Buffer
	cursor := 0
	for i, u := range d.units {
		if i >= len(translations) {
			break
		}
		out.Write(d.content[cursor:u[0]])
		out.WriteString(fillTarget(string(d.content[u[0]:u[1]]), translations[i]))
		cursor = u[1]
	}
	out.Write(d.content[cursor:])
	return out.Bytes(), nil
}

// ContentType identifies the document format.
func (a *XLIFFAdapter) ContentType() string {
	return "xliff"
}

// fillTarget replaces or inserts the <target> of one trans-unit. Splicing by
// index keeps dollar signs in translations out of regexp expansion.
func fillTarget(unit, translation string) string {
	target := "<target>" + escapeXML(translation) + "</target>"
	if loc := targetPattern.FindStringIndex(unit); loc != nil {
		return unit[:loc[0]] + target + unit[loc[1]:]
	}
	if loc := closeUnitPattern.FindStringIndex(unit); loc != nil {
		return unit[:loc[0]] + target + unit[loc[0]:]
	}
	return unit
}

// DetectLangs reads the language pair from the XLIFF <file> element. Missing
// attributes come back empty.
func DetectLangs(content []byte) (sourceLang, targetLang string) {
	tag := fileTagPattern.Find(content)
	if tag == nil {
		return "", ""
	}
	if m := sourceLangPattern.FindSubmatch(tag); m != nil {
		sourceLang = string(m[1])
	}
	if m := targetLangPattern.FindSubmatch(tag); m != nil {
		targetLang = string(m[1])
	}
	return sourceLang, targetLang
}

// Verify XLIFFAdapter implements Adapter
var _ Adapter = (*XLIFFAdapter)(nil)
