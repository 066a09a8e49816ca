package dto

import (
	"bridge-torch-service/internal/render"
	"bridge-torch-service/internal/services"
)

// FromResult maps a solver outcome onto its wire form.
func FromResult(res *services.PuzzleResult) SolveResponse {
	out := SolveResponse{
		Found:    res.Found(),
		Cached:   res.Cached,
		Times:    res.Puzzle.Times,
		MaxGroup: res.Puzzle.MaxGroup,
		Steps:    []StepResponse{},
		Timeline: render.Timeline(len(res.Puzzle.Times), res.Solution),
	}
	if res.Solution == nil {
		return out
	}

	total := res.Solution.TotalTime
	out.TotalTime = &total
	for _, st := range res.Solution.Steps {
		out.Steps = append(out.Steps, StepResponse{
			Participants: st.Participants,
			Direction:    st.Direction.String(),
			Duration:     st.Duration,
		})
	}
	return out
}
