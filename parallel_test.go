package doctrans

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestTranslator_ParallelOrderPreserved(t *testing.T) {
	var inFlight, peak int64
	var mu sync.Mutex

	caller := callerFunc(func(ctx context.Context, req Request) (string, error) {
		cur := atomic.AddInt64(&inFlight, 1)
		mu.Lock()
		if cur > peak {
			peak = cur
		}
		mu.Unlock()
		defer atomic.AddInt64(&inFlight, -1)

		lines := make([]string, len(req.Segments))
		for i, s := range req.Segments {
			lines[i] = strings.ToUpper(s)
		}
		return strings.Join(lines, "\n"), nil
	})

	a := &fakeAdapter{}
	tr := New("en", "de", caller,
		WithAdapter(a),
		WithMaxPerBatch(1),
		WithParallelism(4))

	result, err := tr.Translate(context.Background(), []byte("a\nb\nc\nd\ne\nf"), "lines")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	// Completion order must never leak into the output.
	if string(result.Content) != "A\nB\nC\nD\nE\nF" {
		t.Errorf("content = %q", result.Content)
	}
	if result.BatchCount != 6 {
		t.Errorf("BatchCount = %d, want 6", result.BatchCount)
	}
	mu.Lock()
	if peak > 4 {
		t.Errorf("peak concurrency = %d, limit is 4", peak)
	}
	mu.Unlock()
}

func TestTranslator_ParallelErrorAborts(t *testing.T) {
	var calls int64
	caller := callerFunc(func(ctx context.Context, req Request) (string, error) {
		if atomic.AddInt64(&calls, 1) == 2 {
			return "", &ServiceError{Message: "quota exceeded"}
		}
		return strings.Join(req.Segments, "\n"), nil
	})

	a := &fakeAdapter{}
	tr := New("en", "de", caller,
		WithAdapter(a),
		WithMaxPerBatch(1),
		WithParallelism(2))

	_, err := tr.Translate(context.Background(), []byte("a\nb\nc\nd"), "lines")
	if err == nil {
		t.Fatal("expected error")
	}
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if a.applyCalls != 0 {
		t.Error("a failed batch must abort the document before write-back")
	}
}

func TestTranslator_ParallelSingleBatchStaysSequential(t *testing.T) {
	c := &fakeCaller{transform: strings.ToUpper}
	tr := New("en", "de", c,
		WithAdapter(&fakeAdapter{}),
		WithParallelism(8))

	result, err := tr.Translate(context.Background(), []byte("hello"), "lines")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if string(result.Content) != "HELLO" {
		t.Errorf("content = %q", result.Content)
	}
	if c.calls != 1 {
		t.Errorf("service calls = %d, want 1", c.calls)
	}
}
