package domain

import (
	"errors"
	"fmt"
)

// Represents one crossing of the bridge.
// Participants are ascending person indices that were on the torch's bank;
// Duration is the crossing time of the slowest participant.
type CrossingStep struct {
	Participants []int     `json:"participants"`
	Direction    Direction `json:"direction"`
	Duration     int       `json:"duration"`
}

// Represents an optimal crossing schedule.
// A Solution is the output of the crossing solver: the ordered steps taking
// the initial state to the goal state and their summed duration.
// It is immutable planning data and contains no side effects.
type Solution struct {
	TotalTime int            `json:"total_time"`
	Steps     []CrossingStep `json:"steps"`
}

var ErrInvalidSolution = errors.New("invalid solution")

// Verify replays the steps from the initial state against times and checks
// that every participant stands with the torch, directions alternate
// starting forward, durations match the slowest participant, the total is
// their sum and the replay ends in the goal state.
func (s *Solution) Verify(times []int) error {
	if s == nil {
		return fmt.Errorf("%w: solution is nil", ErrInvalidSolution)
	}

	n := len(times)
	state := InitialState(n)
	total := 0

	for i, step := range s.Steps {
		if len(step.Participants) == 0 {
			return fmt.Errorf("%w: step %d has no participants", ErrInvalidSolution, i+1)
		}

		if want := DirectionFrom(state.Torch); step.Direction != want {
			return fmt.Errorf("%w: step %d direction = %s, want %s", ErrInvalidSolution, i+1, step.Direction, want)
		}

		group := PeopleSet(0)
		slowest := 0
		for _, p := range step.Participants {
			if p < 0 || p >= n {
				return fmt.Errorf("%w: step %d: person %d out of range", ErrInvalidSolution, i+1, p)
			}
			if state.SideOf(p) != state.Torch {
				return fmt.Errorf("%w: step %d: person %d is not on the %s bank", ErrInvalidSolution, i+1, p, state.Torch)
			}
			if group.Has(p) {
				return fmt.Errorf("%w: step %d: person %d listed twice", ErrInvalidSolution, i+1, p)
			}
			group |= SetOf(p)
			slowest = max(slowest, times[p])
		}

		if step.Duration != slowest {
			return fmt.Errorf("%w: step %d duration = %d, want %d", ErrInvalidSolution, i+1, step.Duration, slowest)
		}

		total += step.Duration
		state = state.Apply(group)
	}

	if n > 0 && !state.IsGoal() {
		return fmt.Errorf("%w: replay ends with %d people on the start bank", ErrInvalidSolution, state.PeopleOnStart.Len())
	}

	if total != s.TotalTime {
		return fmt.Errorf("%w: total time = %d, steps sum to %d", ErrInvalidSolution, s.TotalTime, total)
	}

	return nil
}
