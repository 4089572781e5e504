// Package doctrans provides an AI-powered structured-document translation engine.
package doctrans

import "context"

// DefaultMaxPerBatch is the maximum number of segments sent to the service in
// one request when no explicit limit is configured.
const DefaultMaxPerBatch = 150

// DefaultMaxTokens bounds the response size of a single service request.
const DefaultMaxTokens = 200000

// TextNode represents one translatable unit of text extracted from a document.
// Nodes are addressed by position only: the order produced by an adapter's
// Extract is the order its Apply consumes.
type TextNode struct {
	Text     string // Raw text content, may be empty
	NodeType string // Content type: "docx_run", "xliff_source", "html_text", "md_text"
}

// Request is the composed payload for one batch sent to the external service.
type Request struct {
	System     string   // System instruction for the service
	Prompt     string   // Full user prompt embedding the batch, one segment per line
	Segments   []string // The batch segments, in order
	SourceLang string
	TargetLang string
	MaxTokens  int // Upper bound on response size/cost
	HintCount  int // Number of translation-memory hints embedded in the prompt
}

// ServiceCaller is the interface for the external translation service: a
// fallible black-box function from a composed request to raw response text.
// The response is expected to contain one translated line per input segment,
// but that is advisory only; realignment repairs violations.
type ServiceCaller interface {
	Call(ctx context.Context, req Request) (string, error)
}

// Memory is the lookup capability of a translation-memory index. Lookup trims
// the source text and returns the stored translation for the target language,
// preferring an exact normalized-language match over a prefix match.
type Memory interface {
	Lookup(sourceText, targetLang string) (string, bool)
}

// HintLookup resolves a single source segment to a translation-memory match.
// It is passed explicitly into the composer so the composer stays testable in
// isolation.
type HintLookup func(sourceText string) (string, bool)

// DocumentAdapter extracts translatable text nodes from a document and writes
// translations back by positional correspondence. Implementations live in the
// adapter subpackage; the container/markup details are out of pipeline scope.
type DocumentAdapter interface {
	// Extract parses the document and returns an opaque parsed form together
	// with the ordered sequence of translatable text nodes.
	Extract(content []byte) (parsed any, nodes []TextNode, err error)

	// Apply writes translations back into the parsed form, strictly by
	// position (translations[i] replaces the i-th extracted node), and
	// serializes the document.
	Apply(parsed any, translations []string) ([]byte, error)

	// ContentType identifies the document format ("docx", "xliff", "html",
	// "markdown").
	ContentType() string
}

// Result is the outcome of a document translation.
type Result struct {
	Content    []byte // Translated document
	TotalNodes int    // Translatable nodes found
	BatchCount int    // Service requests made
	HintCount  int    // Translation-memory hints surfaced across all batches
}
