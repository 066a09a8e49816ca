package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

// SQLSolutionCache is a SQL-backed cache of solver results keyed by
// puzzle key. It works against SQLite and Postgres.
type SQLSolutionCache struct {
	DB      *sql.DB
	Dialect repositories.Dialect
}

func NewSQLSolutionCache(db *sql.DB, d repositories.Dialect) *SQLSolutionCache {
	return &SQLSolutionCache{DB: db, Dialect: d}
}

// Fetch the cached outcome for one puzzle key.
func (s *SQLSolutionCache) Get(ctx context.Context, key string) (_ ports.CachedSolution, err error) {
	defer obs.Time(ctx, "solution.cache.sql.Get", ports.ErrCacheMiss)(&err)

	if s.DB == nil {
		return ports.CachedSolution{}, errors.New("solution cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.CachedSolution{}, errors.New("get solution cache: key must not be empty")
	}

	q := fmt.Sprintf(`
	SELECT
		found,
		total_time,
		steps
	FROM solution_cache
	WHERE puzzle_key = %s;
	`, s.Dialect.Placeholder(1))

	var (
		found, total int
		steps        string
	)
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&found, &total, &steps)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.CachedSolution{}, ports.ErrCacheMiss
	}
	if err != nil {
		return ports.CachedSolution{}, fmt.Errorf("get solution cache: query solution_cache table: %w", err)
	}

	entry := ports.CachedSolution{Found: found != 0}
	entry.Solution.TotalTime = total
	if err := json.Unmarshal([]byte(steps), &entry.Solution.Steps); err != nil {
		return ports.CachedSolution{}, fmt.Errorf("get solution cache: decode steps for %q: %w", key, err)
	}

	return entry, nil
}

// Store the outcome for one puzzle key, replacing any existing row.
func (s *SQLSolutionCache) Put(ctx context.Context, key string, entry ports.CachedSolution) (err error) {
	defer obs.Time(ctx, "solution.cache.sql.Put")(&err)

	if s.DB == nil {
		return errors.New("solution cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert solution cache: key must not be empty")
	}

	steps := entry.Solution.Steps
	if steps == nil {
		steps = []domain.CrossingStep{}
	}
	b, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("insert solution cache: encode steps: %w", err)
	}

	found := 0
	if entry.Found {
		found = 1
	}

	q := fmt.Sprintf(`
	INSERT INTO solution_cache (
		puzzle_key,
		found,
		total_time,
		steps
	)
	VALUES (%s)
	ON CONFLICT (puzzle_key) DO UPDATE
	SET found = excluded.found,
		total_time = excluded.total_time,
		steps = excluded.steps;
	`, s.Dialect.Placeholders(4))

	if _, err := s.DB.ExecContext(ctx, q, key, found, entry.Solution.TotalTime, string(b)); err != nil {
		return fmt.Errorf("insert solution cache key=%q: %w", key, err)
	}

	return nil
}
