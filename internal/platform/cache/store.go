// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "catalog"
	scanCount        = 200
)

// store holds the redis client shared by the catalog decorators.
// A nil client turns every operation into a no-op so callers fall through
// to the database.
type store struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// newStore applies the defaults: 5 minutes for a non-positive ttl and
// "catalog" for an empty namespace.
func newStore(rdb *redis.Client, ttl time.Duration, namespace string) *store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &store{rdb: rdb, ttl: ttl, namespace: namespace}
}

// generationKey holds the namespace generation. Every cache key embeds the
// generation it was read under, so a purge is a single INCR and a value
// loaded before the purge can only land in a generation nobody reads again.
func (s *store) generationKey() string {
	return s.namespace + ":gen"
}

// key returns the key for parts under the current generation, or "" when
// the generation cannot be read. An empty key disables get and set.
func (s *store) key(ctx context.Context, parts ...interface{}) string {
	if s.rdb == nil {
		return ""
	}
	gen, err := s.rdb.Get(ctx, s.generationKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ""
	}
	return s.keyAt(gen, parts...)
}

func (s *store) keyAt(gen int64, parts ...interface{}) string {
	k := fmt.Sprintf("%s:g%d", s.namespace, gen)
	for _, p := range parts {
		k += fmt.Sprintf(":%v", p)
	}
	return k
}

// get decodes the cached value at key into dst and reports a hit.
// A corrupted entry is deleted and reported as a miss.
func (s *store) get(ctx context.Context, key string, dst interface{}) bool {
	if s.rdb == nil || key == "" {
		return false
	}
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = s.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key (best effort).
func (s *store) set(ctx context.Context, key string, v interface{}) {
	if s.rdb == nil || key == "" {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.rdb.Set(ctx, key, b, s.ttl).Err()
}

// purge moves the namespace to a new generation and then drops the keys of
// the previous one. Failures are logged, not returned: the write that
// triggered the purge has already been committed.
func (s *store) purge(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	gen, err := s.rdb.Incr(ctx, s.generationKey()).Result()
	if err != nil {
		slog.Warn("cache purge failed", "namespace", s.namespace, "error", err)
		return
	}
	if err := s.deleteByPattern(ctx, s.keyAt(gen-1)+":*"); err != nil {
		slog.Warn("cache cleanup failed", "namespace", s.namespace, "generation", gen-1, "error", err)
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (s *store) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := s.rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
