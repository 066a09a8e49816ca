package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

type SolvePuzzleRequest struct {
	Puzzle    domain.Puzzle
	MaxPeople int
}

// Outcome of solving one puzzle. Solution is nil when no schedule exists.
type PuzzleResult struct {
	Puzzle   domain.Puzzle
	Solution *domain.Solution
	Cached   bool
}

func (r *PuzzleResult) Found() bool { return r.Solution != nil }

// SolvePuzzle validates the puzzle, consults the cache, and runs the
// crossing solver on a miss. cache may be nil. Cache failures are logged
// and never fail the request; cached solutions that no longer verify are
// recomputed.
func SolvePuzzle(
	ctx context.Context,
	req SolvePuzzleRequest,
	cache ports.SolutionCache,
) (_ *PuzzleResult, err error) {
	defer obs.Time(ctx, "solve.puzzle")(&err)

	p := req.Puzzle
	if err := p.Validate(req.MaxPeople); err != nil {
		return nil, fmt.Errorf("solve puzzle: %w", err)
	}

	key := p.Key()
	if cache != nil {
		entry, err := cache.Get(ctx, key)
		switch {
		case err == nil:
			if res, ok := fromCache(p, entry); ok {
				return res, nil
			}
			log.Warn("cached solution failed verification", "req_id", obs.RequestID(ctx), "key", key)
		case !errors.Is(err, ports.ErrCacheMiss):
			log.Warn("solution cache get failed", "req_id", obs.RequestID(ctx), "key", key, "err", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solve puzzle: %w", err)
	}

	sol, found := SolveCrossing(p.Times, p.MaxGroup)
	res := &PuzzleResult{Puzzle: p}
	entry := ports.CachedSolution{Found: found}
	if found {
		res.Solution = sol
		entry.Solution = *sol
	}

	if cache != nil {
		if err := cache.Put(ctx, key, entry); err != nil {
			log.Warn("solution cache put failed", "req_id", obs.RequestID(ctx), "key", key, "err", err)
		}
	}

	return res, nil
}

func fromCache(p domain.Puzzle, entry ports.CachedSolution) (*PuzzleResult, bool) {
	res := &PuzzleResult{Puzzle: p, Cached: true}
	if !entry.Found {
		return res, true
	}

	sol := entry.Solution
	if err := sol.Verify(p.Times); err != nil {
		return nil, false
	}
	res.Solution = &sol
	return res, true
}

// SolveBatch solves independent puzzles on at most workers goroutines and
// returns results in request order. The first validation error cancels
// the remaining work.
func SolveBatch(
	ctx context.Context,
	reqs []SolvePuzzleRequest,
	cache ports.SolutionCache,
	workers int,
) ([]*PuzzleResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*PuzzleResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range reqs {
		g.Go(func() error {
			res, err := SolvePuzzle(gctx, req, cache)
			if err != nil {
				return fmt.Errorf("solve batch: puzzle %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
