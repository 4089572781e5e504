package doctrans

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// translateBatchesParallel translates independent batches of one document
// concurrently, bounded by the configured parallelism. Each batch writes its
// realigned result into an index-addressed slot, so the concatenation below is
// always in original batch order regardless of completion order. The first
// batch failure cancels the remaining calls and aborts the document.
func (t *Translator) translateBatchesParallel(ctx context.Context, batches [][]string, lookup HintLookup) ([]string, int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.parallelism)

	results := make([][]string, len(batches))
	hints := make([]int, len(batches))

	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			lines, h, err := t.translateBatch(ctx, batch, lookup)
			if err != nil {
				return err
			}
			results[i] = lines
			hints[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var out []string
	var hintCount int
	for i, lines := range results {
		out = append(out, lines...)
		hintCount += hints[i]
	}
	return out, hintCount, nil
}
