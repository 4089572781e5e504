// Package adapter provides structured-document adapters: each one extracts an
// ordered sequence of translatable text nodes from a document format and
// writes translations back by positional correspondence.
package adapter

import (
	"strings"

	"github.com/VerbaLabs/doctrans"
)

// Adapter is the interface for document format adapters.
// This is an alias to the main package interface for convenience.
type Adapter = doctrans.DocumentAdapter

// TextNode is an alias to the main package type.
type TextNode = doctrans.TextNode

var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	xmlUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
)

// escapeXML escapes text for insertion into XML character data.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// unescapeXML resolves the predefined XML entities in extracted character
// data. Numeric character references pass through untouched.
func unescapeXML(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return xmlUnescaper.Replace(s)
}
