package doctrans

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed role instruction for the external service.
const systemPrompt = "You are a professional technical translator specializing in structured documents, device interfaces (OSD), and manuals."

// ComposeRequest builds the service request for one batch. Each non-empty
// segment is looked up individually through the injected hint capability and
// surfaced as an advisory translation-memory example; formatting rules for the
// target language are attached as instructions. Segments are joined with
// newlines and the service is told to answer one line per segment.
//
// The composer is stateless and depends only on its inputs.
func ComposeRequest(batch []string, sourceLang, targetLang string, lookup HintLookup, rules RuleSet) Request {
	src := NormalizeLang(sourceLang)
	trg := NormalizeLang(targetLang)

	var b strings.Builder

	fmt.Fprintf(&b, "Translate the following segments from %s to %s.\n", LanguageName(src), LanguageName(trg))
	b.WriteString(`Perform a precise, terminologically consistent translation, strictly preserving document structure and inline markup.

# Markup
- Keep all inline tags such as <g>, <x>, <bpt>, <ept>, <ph>, <it> and their attributes exactly as they appear.
- Translate only the text between tags; never add, remove, or reorder tags.
- Preserve all special characters, spaces, and non-breaking spaces.
`)

	hints := composeHints(batch, lookup)
	if len(hints) > 0 {
		b.WriteString("\n# Translation memory\nPrefer the style of these reference translations:\n")
		for _, h := range hints {
			fmt.Fprintf(&b, "- %q -> %q\n", h.source, h.target)
		}
	}

	b.WriteString(`
# Formatting
- Use a non-breaking space (U+00A0) between a number and its unit.
- Do not translate international units (W, V, Hz, degC, mm, cm).
`)
	if rule, ok := rules.For(trg); ok {
		if rule.Quotes != "" {
			fmt.Fprintf(&b, "- Use national quotation marks: %s\n", rule.Quotes)
		}
		if rule.Script != "" {
			fmt.Fprintf(&b, "- %s\n", rule.Script)
		}
		if rule.Notes != "" {
			fmt.Fprintf(&b, "- %s\n", rule.Notes)
		}
	} else {
		fmt.Fprintf(&b, "- Follow the grammar, orthography, and standard script of %s.\n", LanguageName(trg))
	}

	b.WriteString(`
# Style
- If a segment is short (5 words or fewer) and looks like a menu/OSD item, translate tersely, without articles or filler.
- If a segment is descriptive, use a neutral technical register.

# Output
Below is the batch of segments, one segment per line. Output ONLY the translations, line by line, with exactly the same number of lines, no comments, no Markdown:
`)
	b.WriteString(strings.Join(batch, "\n"))

	return Request{
		System:     systemPrompt,
		Prompt:     b.String(),
		Segments:   batch,
		SourceLang: src,
		TargetLang: trg,
		MaxTokens:  DefaultMaxTokens,
		HintCount:  len(hints),
	}
}

type hint struct {
	source string
	target string
}

// composeHints resolves per-segment memory matches. Lookup granularity is per
// line, matching the batching unit, and blank lines are skipped.
func composeHints(batch []string, lookup HintLookup) []hint {
	if lookup == nil {
		return nil
	}

	var hints []hint
	seen := make(map[string]bool)
	for _, line := range batch {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		if match, ok := lookup(line); ok {
			hints = append(hints, hint{source: line, target: match})
		}
	}
	return hints
}
