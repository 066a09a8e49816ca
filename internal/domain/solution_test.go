package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolutionVerify(t *testing.T) {
	times := []int{1, 2, 5, 10}

	// Classic 17-minute schedule.
	sol := &Solution{
		TotalTime: 17,
		Steps: []CrossingStep{
			{Participants: []int{0, 1}, Direction: Forward, Duration: 2},
			{Participants: []int{0}, Direction: Backward, Duration: 1},
			{Participants: []int{2, 3}, Direction: Forward, Duration: 10},
			{Participants: []int{1}, Direction: Backward, Duration: 2},
			{Participants: []int{0, 1}, Direction: Forward, Duration: 2},
		},
	}
	require.NoError(t, sol.Verify(times))

	tests := []struct {
		name   string
		mutate func(s *Solution)
	}{
		{"wrong total", func(s *Solution) { s.TotalTime = 16 }},
		{"wrong duration", func(s *Solution) { s.Steps[2].Duration = 5 }},
		{"wrong direction", func(s *Solution) { s.Steps[1].Direction = Forward }},
		{"participant on wrong bank", func(s *Solution) {
			s.Steps[1].Participants = []int{2}
			s.Steps[1].Duration = 5
			s.TotalTime = 21
		}},
		{"empty group", func(s *Solution) { s.Steps[0].Participants = nil }},
		{"out of range", func(s *Solution) { s.Steps[0].Participants = []int{0, 7} }},
		{"incomplete", func(s *Solution) { s.Steps = s.Steps[:3]; s.TotalTime = 13 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cloneSolution(sol)
			tc.mutate(c)
			require.ErrorIs(t, c.Verify(times), ErrInvalidSolution)
		})
	}
}

func TestSolutionVerifyEmptyPuzzle(t *testing.T) {
	require.NoError(t, (&Solution{}).Verify(nil))

	var nilSol *Solution
	require.ErrorIs(t, nilSol.Verify(nil), ErrInvalidSolution)
}

func cloneSolution(s *Solution) *Solution {
	out := &Solution{TotalTime: s.TotalTime, Steps: make([]CrossingStep, len(s.Steps))}
	for i, st := range s.Steps {
		out.Steps[i] = CrossingStep{
			Participants: append([]int(nil), st.Participants...),
			Direction:    st.Direction,
			Duration:     st.Duration,
		}
	}
	return out
}
