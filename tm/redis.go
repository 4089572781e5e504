package tm

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VerbaLabs/doctrans"
)

// RedisIndex is a Redis-backed translation memory that several worker
// processes can share. Each load writes the corpus under a fresh generation
// prefix and then flips a single current-generation pointer, so readers see a
// whole old or whole new corpus, never a partially written one. Source
// segments are keyed by SHA-256 hash.
type RedisIndex struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis-backed index.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "doctrans:tm:")
}

// NewRedisIndex creates a Redis-backed index and verifies the connection.
func NewRedisIndex(cfg RedisConfig) (*RedisIndex, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisIndexFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisIndexFromClient creates a RedisIndex from an existing Redis client.
func NewRedisIndexFromClient(client *redis.Client, keyPrefix string) *RedisIndex {
	if keyPrefix == "" {
		keyPrefix = "doctrans:tm:"
	}
	return &RedisIndex{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Load writes the corpus under a new generation and flips the current-
// generation pointer once every segment is in place. The previous generation
// is deleted afterwards; a failure before the flip leaves readers on the old
// corpus untouched.
func (r *RedisIndex) Load(units []AlignedUnit) (LoadSummary, error) {
	entries, summary := buildEntries(units)
	ctx := context.Background()

	oldGen, err := r.client.Get(ctx, r.key("current")).Result()
	if err != nil && err != redis.Nil {
		return LoadSummary{}, err
	}

	gen, err := r.client.Incr(ctx, r.key("gen")).Result()
	if err != nil {
		return LoadSummary{}, err
	}
	genStr := strconv.FormatInt(gen, 10)

	for src, langs := range entries {
		if err := r.client.HSet(ctx, r.segKey(genStr, src), sortedFlatten(langs)...).Err(); err != nil {
			return LoadSummary{}, err
		}
	}

	if err := r.client.Set(ctx, r.key("current"), genStr, 0).Err(); err != nil {
		return LoadSummary{}, err
	}

	if oldGen != "" && oldGen != genStr {
		r.dropGeneration(ctx, oldGen)
	}

	return summary, nil
}

// Lookup reads the current generation pointer and the hashed segment's
// language map, then applies the shared exact-then-prefix language policy.
// Any Redis failure is reported as a miss.
func (r *RedisIndex) Lookup(sourceText, targetLang string) (string, bool) {
	src := strings.TrimSpace(sourceText)
	if src == "" {
		return "", false
	}

	ctx := context.Background()

	gen, err := r.client.Get(ctx, r.key("current")).Result()
	if err != nil {
		return "", false
	}

	langs, err := r.client.HGetAll(ctx, r.segKey(gen, src)).Result()
	if err != nil || len(langs) == 0 {
		return "", false
	}
	return pickTarget(langs, targetLang)
}

// dropGeneration deletes a superseded generation's segment keys. Best effort:
// leftover keys are unreachable once the pointer has moved on.
func (r *RedisIndex) dropGeneration(ctx context.Context, gen string) {
	iter := r.client.Scan(ctx, 0, r.key("g"+gen+":seg:*"), 100).Iterator()
	for iter.Next(ctx) {
		r.client.Del(ctx, iter.Val())
	}
}

// Close closes the Redis connection.
func (r *RedisIndex) Close() error {
	return r.client.Close()
}

// Ping tests the Redis connection.
func (r *RedisIndex) Ping() error {
	ctx := context.Background()
	return r.client.Ping(ctx).Err()
}

func (r *RedisIndex) key(suffix string) string {
	return r.keyPrefix + suffix
}

func (r *RedisIndex) segKey(gen, sourceText string) string {
	return r.key("g" + gen + ":seg:" + doctrans.HashSegment(sourceText))
}

// Verify RedisIndex implements Index
var _ Index = (*RedisIndex)(nil)
