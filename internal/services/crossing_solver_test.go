package services

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-torch-service/internal/domain"
)

func step(dir domain.Direction, duration int, participants ...int) domain.CrossingStep {
	return domain.CrossingStep{Participants: participants, Direction: dir, Duration: duration}
}

const (
	fwd = domain.Forward
	bwd = domain.Backward
)

func TestSolveCrossingKnownSchedules(t *testing.T) {
	tests := []struct {
		name     string
		times    []int
		maxGroup int
		total    int
		steps    []domain.CrossingStep
	}{
		{
			name:  "classic four",
			times: []int{1, 2, 5, 10}, maxGroup: 2, total: 17,
			steps: []domain.CrossingStep{
				step(fwd, 2, 0, 1), step(bwd, 1, 0), step(fwd, 10, 2, 3), step(bwd, 2, 1), step(fwd, 2, 0, 1),
			},
		},
		{
			name:  "five with slow pair",
			times: []int{1, 2, 5, 8, 14}, maxGroup: 2, total: 27,
			steps: []domain.CrossingStep{
				step(fwd, 2, 0, 1), step(bwd, 1, 0), step(fwd, 14, 3, 4), step(bwd, 2, 1),
				step(fwd, 2, 0, 1), step(bwd, 1, 0), step(fwd, 5, 0, 2),
			},
		},
		{
			name:  "classic four reversed order",
			times: []int{10, 5, 2, 1}, maxGroup: 2, total: 17,
			steps: []domain.CrossingStep{
				step(fwd, 2, 2, 3), step(bwd, 1, 3), step(fwd, 10, 0, 1), step(bwd, 2, 2), step(fwd, 2, 2, 3),
			},
		},
		{
			name:  "groups of three",
			times: []int{1, 2, 5, 10}, maxGroup: 3, total: 13,
			steps: []domain.CrossingStep{
				step(fwd, 2, 0, 1), step(bwd, 1, 0), step(fwd, 10, 0, 2, 3),
			},
		},
		{
			name:  "equal times",
			times: []int{4, 4, 4}, maxGroup: 2, total: 12,
			steps: []domain.CrossingStep{
				step(fwd, 4, 1, 2), step(bwd, 4, 1), step(fwd, 4, 0, 1),
			},
		},
		{
			name:  "six unit times",
			times: []int{1, 1, 1, 1, 1, 1}, maxGroup: 3, total: 5,
			steps: []domain.CrossingStep{
				step(fwd, 1, 3, 4, 5), step(bwd, 1, 3), step(fwd, 1, 1, 2, 3), step(bwd, 1, 1), step(fwd, 1, 0, 1),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol, ok := SolveCrossing(tc.times, tc.maxGroup)
			require.True(t, ok)
			assert.Equal(t, tc.total, sol.TotalTime)
			assert.Equal(t, tc.steps, sol.Steps)
			require.NoError(t, sol.Verify(tc.times))
		})
	}
}

func TestSolveCrossingSinglePerson(t *testing.T) {
	sol, ok := SolveCrossing([]int{3}, 1)
	require.True(t, ok)
	assert.Equal(t, 3, sol.TotalTime)
	require.Len(t, sol.Steps, 1)
	assert.Equal(t, domain.Forward, sol.Steps[0].Direction)
	assert.Equal(t, []int{0}, sol.Steps[0].Participants)
}

func TestSolveCrossingWholeGroupAtOnce(t *testing.T) {
	for _, times := range [][]int{{7}, {3, 9}, {1, 2, 5, 10}, {6, 2, 8, 3, 4}} {
		sol, ok := SolveCrossing(times, len(times))
		require.True(t, ok)
		require.Len(t, sol.Steps, 1)
		assert.Equal(t, slices.Max(times), sol.TotalTime)
		assert.Len(t, sol.Steps[0].Participants, len(times))
	}
}

func TestSolveCrossingDegenerateInput(t *testing.T) {
	sol, ok := SolveCrossing(nil, 0)
	require.True(t, ok)
	assert.Equal(t, 0, sol.TotalTime)
	assert.Empty(t, sol.Steps)

	sol, ok = SolveCrossing([]int{}, 2)
	require.True(t, ok)
	assert.Equal(t, 0, sol.TotalTime)

	_, ok = SolveCrossing([]int{1, 2}, 0)
	assert.False(t, ok)

	_, ok = SolveCrossing([]int{1, -2}, 2)
	assert.False(t, ok)

	_, ok = SolveCrossing(make([]int, domain.MaxPeople+1), 2)
	assert.False(t, ok)
}

// A lone crosser must carry the torch back, so nobody else ever crosses.
func TestSolveCrossingSingleFileHasNoSolution(t *testing.T) {
	for n := 2; n <= 6; n++ {
		times := make([]int, n)
		for i := range times {
			times[i] = i + 1
		}
		_, ok := SolveCrossing(times, 1)
		assert.False(t, ok, "n=%d", n)
	}
}

// optimalPairs is the closed-form optimum when at most two people cross:
// the two slowest go either escorted by the fastest, or together with the
// two fastest shuttling the torch.
func optimalPairs(times []int) int {
	t := slices.Clone(times)
	slices.Sort(t)

	total := 0
	n := len(t)
	for n > 3 {
		escort := t[0] + t[n-1] + t[0] + t[n-2]
		shuttle := t[1] + t[0] + t[n-1] + t[1]
		total += min(escort, shuttle)
		n -= 2
	}

	switch n {
	case 3:
		total += t[0] + t[1] + t[2]
	case 2:
		total += t[1]
	case 1:
		total += t[0]
	}
	return total
}

func randomTimes(r *rand.Rand, n int) []int {
	times := make([]int, n)
	for i := range times {
		times[i] = 1 + r.IntN(20)
	}
	return times
}

func TestSolveCrossingMatchesPairFormula(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 28))
	for i := 0; i < 200; i++ {
		times := randomTimes(r, 2+r.IntN(6))
		sol, ok := SolveCrossing(times, 2)
		require.True(t, ok, "times=%v", times)
		require.Equal(t, optimalPairs(times), sol.TotalTime, "times=%v", times)
	}
}

func TestSolveCrossingInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		n := 1 + r.IntN(7)
		times := randomTimes(r, n)

		prevTotal := -1
		for k := 1; k <= n; k++ {
			sol, ok := SolveCrossing(times, k)

			// Single file only works for one person; every wider bridge is solvable.
			if k == 1 && n > 1 {
				require.False(t, ok, "times=%v k=%d", times, k)
				continue
			}
			require.True(t, ok, "times=%v k=%d", times, k)

			// Verify covers alternation, participant validity, completeness
			// and cost consistency by replaying the steps.
			require.NoError(t, sol.Verify(times), "times=%v k=%d", times, k)

			for j, st := range sol.Steps {
				want := domain.Forward
				if j%2 == 1 {
					want = domain.Backward
				}
				require.Equal(t, want, st.Direction)
				require.LessOrEqual(t, len(st.Participants), k)
			}

			// More capacity never makes the crossing slower.
			if prevTotal >= 0 {
				require.LessOrEqual(t, sol.TotalTime, prevTotal, "times=%v k=%d", times, k)
			}
			prevTotal = sol.TotalTime
		}
	}
}

func TestSolveCrossingDeterministic(t *testing.T) {
	times := []int{3, 3, 3, 3, 3}
	first, ok := SolveCrossing(times, 2)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		again, ok := SolveCrossing(times, 2)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestForEachGroupOrder(t *testing.T) {
	var got [][]int
	forEachGroup([]int{1, 3, 4}, 2, func(group domain.PeopleSet, members []int) {
		assert.Equal(t, domain.SetOf(members...), group)
		got = append(got, slices.Clone(members))
	})

	assert.Equal(t, [][]int{{1}, {3}, {4}, {1, 3}, {1, 4}, {3, 4}}, got)

	calls := 0
	forEachGroup(nil, 3, func(domain.PeopleSet, []int) { calls++ })
	forEachCombination([]int{1, 2}, 3, func(domain.PeopleSet, []int) { calls++ })
	assert.Zero(t, calls)
}

func BenchmarkSolveCrossing(b *testing.B) {
	times := []int{1, 2, 5, 8, 14, 3, 9, 11, 6, 4}
	for i := 0; i < b.N; i++ {
		SolveCrossing(times, 3)
	}
}
