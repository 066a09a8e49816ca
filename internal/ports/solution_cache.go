package ports

import (
	"context"
	"errors"

	"bridge-torch-service/internal/domain"
)

// ErrCacheMiss is returned by SolutionCache.Get when no entry exists.
var ErrCacheMiss = errors.New("solution cache: miss")

// Cached outcome of solving one puzzle.
// Found is false when the search proved no schedule exists.
type CachedSolution struct {
	Found    bool
	Solution domain.Solution
}

// Contract for storing solver results keyed by domain.Puzzle.Key.
type SolutionCache interface {
	// Return the cached outcome for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (CachedSolution, error)
	// Store the outcome for key, replacing any previous entry.
	Put(ctx context.Context, key string, entry CachedSolution) error
}
