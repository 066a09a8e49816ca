package render

import (
	"fmt"
	"io"
	"strings"

	"bridge-torch-service/internal/domain"
)

const noSolution = "No solution."

// Summary is the one-line headline for a solve.
func Summary(sol *domain.Solution) string {
	if sol == nil {
		return noSolution
	}
	return fmt.Sprintf("Minimal total time: %d", sol.TotalTime)
}

// StepLine renders one step, e.g. "Step 1: P1(1), P2(2) -> time 2".
func StepLine(i int, st domain.CrossingStep, times []int) string {
	return fmt.Sprintf("Step %d: %s %s time %d", i+1, participants(st, times), st.Direction.Arrow(), st.Duration)
}

func participants(st domain.CrossingStep, times []int) string {
	return personLabels(st.Participants, times)
}

// personLabels renders 0-based person indices as "P1(1), P2(2)".
func personLabels(people []int, times []int) string {
	labels := make([]string, 0, len(people))
	for _, p := range people {
		t := 0
		if p >= 0 && p < len(times) {
			t = times[p]
		}
		labels = append(labels, domain.Person{Index: p, CrossingTime: t}.Label())
	}
	return strings.Join(labels, ", ")
}

// WriteText writes the summary followed by one line per step.
// A nil solution writes only "No solution.".
func WriteText(w io.Writer, times []int, sol *domain.Solution) error {
	if _, err := fmt.Fprintln(w, Summary(sol)); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	if sol == nil {
		return nil
	}

	for i, st := range sol.Steps {
		if _, err := fmt.Fprintln(w, StepLine(i, st, times)); err != nil {
			return fmt.Errorf("write text: step %d: %w", i+1, err)
		}
	}
	return nil
}
