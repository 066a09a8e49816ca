package cache

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/platform/db"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

var classicEntry = ports.CachedSolution{
	Found: true,
	Solution: domain.Solution{
		TotalTime: 17,
		Steps: []domain.CrossingStep{
			{Participants: []int{0, 1}, Direction: domain.Forward, Duration: 2},
			{Participants: []int{0}, Direction: domain.Backward, Duration: 1},
			{Participants: []int{2, 3}, Direction: domain.Forward, Duration: 10},
			{Participants: []int{1}, Direction: domain.Backward, Duration: 2},
			{Participants: []int{0, 1}, Direction: domain.Forward, Duration: 2},
		},
	},
}

func newSQLiteCache(t *testing.T) *SQLSolutionCache {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(conn))

	return NewSQLSolutionCache(conn, repositories.SQLite)
}

func newRedisCache(t *testing.T) (*RedisSolutionCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSolutionCache(client, time.Hour), mr
}

// exerciseCache runs the behaviour every SolutionCache must share.
func exerciseCache(t *testing.T, c ports.SolutionCache) {
	ctx := context.Background()

	_, err := c.Get(ctx, "1,2,5,10/2")
	require.ErrorIs(t, err, ports.ErrCacheMiss)

	require.NoError(t, c.Put(ctx, "1,2,5,10/2", classicEntry))
	got, err := c.Get(ctx, "1,2,5,10/2")
	require.NoError(t, err)
	assert.Equal(t, classicEntry, got)

	// No-solution outcomes are cached too.
	require.NoError(t, c.Put(ctx, "empty/0", ports.CachedSolution{Found: false}))
	got, err = c.Get(ctx, "empty/0")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Empty(t, got.Solution.Steps)

	// Put replaces.
	replaced := ports.CachedSolution{Found: true, Solution: domain.Solution{
		TotalTime: 3,
		Steps:     []domain.CrossingStep{{Participants: []int{0}, Direction: domain.Forward, Duration: 3}},
	}}
	require.NoError(t, c.Put(ctx, "1,2,5,10/2", replaced))
	got, err = c.Get(ctx, "1,2,5,10/2")
	require.NoError(t, err)
	assert.Equal(t, replaced, got)
}

func TestSQLSolutionCache(t *testing.T) {
	c := newSQLiteCache(t)
	exerciseCache(t, c)

	_, err := c.Get(context.Background(), " ")
	assert.Error(t, err)
}

func TestRedisSolutionCache(t *testing.T) {
	c, mr := newRedisCache(t)
	exerciseCache(t, c)

	assert.True(t, mr.Exists(redisKeyPrefix+"1,2,5,10/2"))
	mr.FastForward(2 * time.Hour)
	_, err := c.Get(context.Background(), "1,2,5,10/2")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCacheMissIsNotLoggedAsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
	obs.SetupDefault(&buf, "info")

	sqlCache := newSQLiteCache(t)
	redisCache, _ := newRedisCache(t)

	for _, c := range []ports.SolutionCache{sqlCache, redisCache} {
		_, err := c.Get(context.Background(), "9,9/1")
		require.ErrorIs(t, err, ports.ErrCacheMiss)
	}
	assert.Empty(t, buf.String())
}

func TestMemorySolutionCache(t *testing.T) {
	exerciseCache(t, NewMemorySolutionCache())
}

func TestLayeredSolutionCacheBackfills(t *testing.T) {
	front, _ := newRedisCache(t)
	back := newSQLiteCache(t)
	layered := NewLayeredSolutionCache(front, back)
	exerciseCache(t, layered)

	ctx := context.Background()
	require.NoError(t, back.Put(ctx, "3/1", ports.CachedSolution{Found: true, Solution: domain.Solution{TotalTime: 3}}))

	_, err := front.Get(ctx, "3/1")
	require.ErrorIs(t, err, ports.ErrCacheMiss)

	got, err := layered.Get(ctx, "3/1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Solution.TotalTime)

	got, err = front.Get(ctx, "3/1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Solution.TotalTime)
}

func TestLayeredSolutionCacheSurvivesFrontOutage(t *testing.T) {
	// Nothing listens on port 1.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { client.Close() })

	front := NewRedisSolutionCache(client, time.Hour)
	back := NewMemorySolutionCache()
	layered := NewLayeredSolutionCache(front, back)

	ctx := context.Background()
	require.NoError(t, layered.Put(ctx, "1,2,5,10/2", classicEntry))
	got, err := layered.Get(ctx, "1,2,5,10/2")
	require.NoError(t, err)
	assert.Equal(t, classicEntry, got)
}
