// Package tm provides translation-memory indexing and lookup backends.
//
// A translation memory is built from a corpus of aligned bilingual units and
// supports exact source lookup with exact-then-prefix language matching.
// Loading always replaces the whole index atomically: concurrent readers see
// either the previous corpus or the new one in full, never a mix.
package tm

import (
	"sort"
	"strings"

	"github.com/VerbaLabs/doctrans"
)

// LangText is one (language, text) pair inside an aligned unit.
type LangText struct {
	Lang string
	Text string
}

// AlignedUnit is one translation-memory record: an ordered sequence of
// (language, text) pairs. The first pair is the source; every subsequent pair
// is a target for that source in its respective language.
type AlignedUnit []LangText

// LoadSummary reports what a load indexed, for observability only.
type LoadSummary struct {
	Sources int // Distinct source segments
	Pairs   int // Total (source, language) pairs
}

// Index is a translation-memory backend.
type Index interface {
	// Load rebuilds the index from the corpus, replacing any prior content.
	Load(units []AlignedUnit) (LoadSummary, error)

	// Lookup returns the stored translation of sourceText for targetLang.
	// The source is matched exactly after trimming; the language exactly
	// after normalization, falling back to a deterministic prefix match.
	Lookup(sourceText, targetLang string) (string, bool)
}

// buildEntries aggregates aligned units into the source -> lang -> target
// mapping shared by all backends. Units with fewer than two usable pairs are
// skipped; blank texts or languages skip the pair; a duplicate (source, lang)
// is last-write-wins. Stored language keys are lower-cased but keep their
// region subtags, so "sr-Latn" remains distinguishable from "sr".
func buildEntries(units []AlignedUnit) (map[string]map[string]string, LoadSummary) {
	entries := make(map[string]map[string]string)

	for _, unit := range units {
		usable := unit[:0:0]
		for _, p := range unit {
			if strings.TrimSpace(p.Text) != "" {
				usable = append(usable, p)
			}
		}
		if len(usable) < 2 {
			continue
		}

		src := strings.TrimSpace(usable[0].Text)
		for _, p := range usable[1:] {
			lang := strings.ToLower(strings.TrimSpace(p.Lang))
			if lang == "" {
				continue
			}
			langs, ok := entries[src]
			if !ok {
				langs = make(map[string]string)
				entries[src] = langs
			}
			langs[lang] = strings.TrimSpace(p.Text)
		}
		if len(entries[src]) == 0 {
			delete(entries, src)
		}
	}

	summary := LoadSummary{Sources: len(entries)}
	for _, langs := range entries {
		summary.Pairs += len(langs)
	}
	return entries, summary
}

// pickTarget applies the shared language-matching policy to one source's
// language map: an exact match on the normalized target code wins; otherwise
// the lexicographically smallest stored key with that prefix is chosen, which
// pins prefix ambiguity down deterministically.
func pickTarget(langs map[string]string, targetLang string) (string, bool) {
	trg := doctrans.NormalizeLang(targetLang)
	if trg == "" {
		return "", false
	}

	if v, ok := langs[trg]; ok {
		return v, true
	}

	var best string
	for k := range langs {
		if strings.HasPrefix(k, trg) && (best == "" || k < best) {
			best = k
		}
	}
	if best == "" {
		return "", false
	}
	return langs[best], true
}

// sortedFlatten turns a language map into a deterministic key/value sequence.
func sortedFlatten(langs map[string]string) []any {
	keys := make([]string, 0, len(langs))
	for k := range langs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flat := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		flat = append(flat, k, langs[k])
	}
	return flat
}
