package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"bridge-torch-service/internal/ports"
)

// LayeredSolutionCache reads through a fast front cache to a durable back
// cache. Back hits are copied to the front; writes go to both.
type LayeredSolutionCache struct {
	Front ports.SolutionCache
	Back  ports.SolutionCache
}

func NewLayeredSolutionCache(front, back ports.SolutionCache) *LayeredSolutionCache {
	return &LayeredSolutionCache{Front: front, Back: back}
}

func (l *LayeredSolutionCache) Get(ctx context.Context, key string) (ports.CachedSolution, error) {
	entry, err := l.Front.Get(ctx, key)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		// Front failures fall through to the back cache.
		log.Warn("front solution cache failed", "key", key, "err", err)
	}

	entry, err = l.Back.Get(ctx, key)
	if err != nil {
		return ports.CachedSolution{}, err
	}

	if err := l.Front.Put(ctx, key, entry); err != nil {
		log.Warn("front solution cache backfill failed", "key", key, "err", err)
	}
	return entry, nil
}

func (l *LayeredSolutionCache) Put(ctx context.Context, key string, entry ports.CachedSolution) error {
	if err := l.Back.Put(ctx, key, entry); err != nil {
		return fmt.Errorf("layered solution cache: %w", err)
	}
	if err := l.Front.Put(ctx, key, entry); err != nil {
		log.Warn("front solution cache put failed", "key", key, "err", err)
	}
	return nil
}
