package doctrans

import (
	"context"
)

// Translator is the document translation pipeline orchestrator. It drives
// extract -> batch -> compose -> call -> realign -> write back, strictly in
// source order, and only touches the document adapter's output after every
// batch has produced a realigned result. A failure in any batch aborts the
// whole document translation with no partial output.
type Translator struct {
	sourceLang  string
	targetLang  string
	caller      ServiceCaller
	memory      Memory
	rules       RuleSet
	maxPerBatch int
	maxTokens   int
	parallelism int
	adapters    map[string]DocumentAdapter
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithMemory sets the translation-memory index consulted for per-segment
// hints. A nil or empty memory simply produces no hints.
func WithMemory(memory Memory) Option {
	return func(t *Translator) {
		t.memory = memory
	}
}

// WithMaxPerBatch sets the maximum number of segments per service request.
func WithMaxPerBatch(n int) Option {
	return func(t *Translator) {
		t.maxPerBatch = n
	}
}

// WithMaxTokens sets the response size bound passed to the service.
func WithMaxTokens(n int) Option {
	return func(t *Translator) {
		t.maxTokens = n
	}
}

// WithRules sets the per-language formatting rule table.
func WithRules(rules RuleSet) Option {
	return func(t *Translator) {
		t.rules = rules
	}
}

// WithAdapter registers a document adapter under its content type.
func WithAdapter(a DocumentAdapter) Option {
	return func(t *Translator) {
		t.adapters[a.ContentType()] = a
	}
}

// WithParallelism allows up to n batches of the same document to be translated
// concurrently. Results are still concatenated in batch order, which is the
// only ordering invariant that must survive. n <= 1 keeps the default
// strictly sequential behavior.
func WithParallelism(n int) Option {
	return func(t *Translator) {
		t.parallelism = n
	}
}

// New creates a Translator for the given language pair and service caller.
func New(sourceLang, targetLang string, caller ServiceCaller, opts ...Option) *Translator {
	t := &Translator{
		sourceLang:  sourceLang,
		targetLang:  targetLang,
		caller:      caller,
		rules:       DefaultRules(),
		maxPerBatch: DefaultMaxPerBatch,
		maxTokens:   DefaultMaxTokens,
		adapters:    make(map[string]DocumentAdapter),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SourceLang returns the source language.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

// TargetLang returns the target language.
func (t *Translator) TargetLang() string {
	return t.targetLang
}

// Translate translates a document of the given content type. The document is
// returned unchanged, with zero service calls, when it contains no
// translatable text or when source and target language coincide.
func (t *Translator) Translate(ctx context.Context, content []byte, contentType string) (*Result, error) {
	a, ok := t.adapters[contentType]
	if !ok {
		return nil, &AdapterError{
			Message:     "no adapter registered for content type",
			ContentType: contentType,
		}
	}

	parsed, nodes, err := a.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 || t.isSourceLang() {
		return &Result{Content: content, TotalNodes: len(nodes)}, nil
	}

	segments := make([]string, len(nodes))
	for i, n := range nodes {
		segments[i] = SanitizeSegment(n.Text)
	}
	batches := BatchSegments(segments, t.maxPerBatch)

	var lookup HintLookup
	if t.memory != nil {
		lookup = func(source string) (string, bool) {
			return t.memory.Lookup(source, t.targetLang)
		}
	}

	var translated []string
	var hintCount int
	if t.parallelism > 1 && len(batches) > 1 {
		translated, hintCount, err = t.translateBatchesParallel(ctx, batches, lookup)
	} else {
		translated, hintCount, err = t.translateBatches(ctx, batches, lookup)
	}
	if err != nil {
		return nil, err
	}

	// A degenerate adapter may report fewer or more nodes than segments were
	// realigned to; repair globally with the same pad/truncate policy.
	translated = RealignSlice(translated, len(nodes))

	out, err := a.Apply(parsed, translated)
	if err != nil {
		return nil, err
	}

	return &Result{
		Content:    out,
		TotalNodes: len(nodes),
		BatchCount: len(batches),
		HintCount:  hintCount,
	}, nil
}

// translateBatches processes batches one at a time, in order. The context is
// checked at every batch boundary so an in-flight document translation can be
// cancelled cooperatively between service calls.
func (t *Translator) translateBatches(ctx context.Context, batches [][]string, lookup HintLookup) ([]string, int, error) {
	var out []string
	var hintCount int

	for _, batch := range batches {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		lines, hints, err := t.translateBatch(ctx, batch, lookup)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, lines...)
		hintCount += hints
	}
	return out, hintCount, nil
}

// translateBatch composes, calls, and realigns a single batch. The returned
// slice always has exactly len(batch) entries.
func (t *Translator) translateBatch(ctx context.Context, batch []string, lookup HintLookup) ([]string, int, error) {
	req := ComposeRequest(batch, t.sourceLang, t.targetLang, lookup, t.rules)
	req.MaxTokens = t.maxTokens

	raw, err := t.caller.Call(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return Realign(raw, len(batch)), req.HintCount, nil
}

// isSourceLang reports whether target and source normalize to the same
// language, in which case translation is a no-op.
func (t *Translator) isSourceLang() bool {
	src := NormalizeLang(t.sourceLang)
	trg := NormalizeLang(t.targetLang)
	return src != "" && src == trg
}
