package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

const redisKeyPrefix = "bridgetorch:solution:"

// RedisSolutionCache keeps solver results in Redis as JSON values.
// A zero TTL stores entries without expiry.
type RedisSolutionCache struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

func NewRedisSolutionCache(client redis.UniversalClient, ttl time.Duration) *RedisSolutionCache {
	return &RedisSolutionCache{Client: client, TTL: ttl}
}

type redisEntry struct {
	Found    bool            `json:"found"`
	Solution json.RawMessage `json:"solution"`
}

func (r *RedisSolutionCache) Get(ctx context.Context, key string) (_ ports.CachedSolution, err error) {
	defer obs.Time(ctx, "solution.cache.redis.Get", ports.ErrCacheMiss)(&err)

	if r.Client == nil {
		return ports.CachedSolution{}, errors.New("redis solution cache: client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.CachedSolution{}, errors.New("get redis solution cache: key must not be empty")
	}

	b, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.CachedSolution{}, ports.ErrCacheMiss
	}
	if err != nil {
		return ports.CachedSolution{}, fmt.Errorf("get redis solution cache: %w", err)
	}

	var raw redisEntry
	if err := json.Unmarshal(b, &raw); err != nil {
		return ports.CachedSolution{}, fmt.Errorf("get redis solution cache: decode %q: %w", key, err)
	}

	entry := ports.CachedSolution{Found: raw.Found}
	if len(raw.Solution) > 0 {
		if err := json.Unmarshal(raw.Solution, &entry.Solution); err != nil {
			return ports.CachedSolution{}, fmt.Errorf("get redis solution cache: decode solution %q: %w", key, err)
		}
	}

	return entry, nil
}

func (r *RedisSolutionCache) Put(ctx context.Context, key string, entry ports.CachedSolution) (err error) {
	defer obs.Time(ctx, "solution.cache.redis.Put")(&err)

	if r.Client == nil {
		return errors.New("redis solution cache: client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert redis solution cache: key must not be empty")
	}

	sol, err := json.Marshal(entry.Solution)
	if err != nil {
		return fmt.Errorf("insert redis solution cache: encode solution: %w", err)
	}
	b, err := json.Marshal(redisEntry{Found: entry.Found, Solution: sol})
	if err != nil {
		return fmt.Errorf("insert redis solution cache: encode entry: %w", err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert redis solution cache key=%q: %w", key, err)
	}

	return nil
}
