package tm

import (
	"strings"
	"sync"
)

// MemoryIndex is an in-process translation memory. Load builds a fresh
// mapping and publishes it in one guarded assignment, so concurrent Lookup
// calls observe either the old or the new corpus in full.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

// NewMemoryIndex creates an empty in-memory translation memory.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		entries: make(map[string]map[string]string),
	}
}

// Load rebuilds the index from the corpus. Prior content is fully replaced,
// never merged.
func (m *MemoryIndex) Load(units []AlignedUnit) (LoadSummary, error) {
	next, summary := buildEntries(units)

	m.mu.Lock()
	m.entries = next
	m.mu.Unlock()

	return summary, nil
}

// Lookup returns the stored translation of sourceText for targetLang.
// The source text is trimmed and matched exactly; the language is matched
// exactly on its normalized form first, then by deterministic prefix scan
// (lexicographically smallest matching key).
func (m *MemoryIndex) Lookup(sourceText, targetLang string) (string, bool) {
	src := strings.TrimSpace(sourceText)
	if src == "" {
		return "", false
	}

	m.mu.RLock()
	entries := m.entries
	m.mu.RUnlock()

	langs, ok := entries[src]
	if !ok {
		return "", false
	}
	return pickTarget(langs, targetLang)
}

// Len returns the number of distinct source segments currently indexed.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Verify MemoryIndex implements Index
var _ Index = (*MemoryIndex)(nil)
