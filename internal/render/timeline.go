package render

import "bridge-torch-service/internal/domain"

// Frame is one crossing placed on the clock. Start and End are offsets
// from the first departure; the bank lists describe the world after the
// crossing lands.
type Frame struct {
	Step    int                 `json:"step"`
	Group   domain.CrossingStep `json:"group"`
	Start   int                 `json:"start"`
	End     int                 `json:"end"`
	Torch   string              `json:"torch"`
	OnStart []int               `json:"on_start"`
	OnFar   []int               `json:"on_far"`
}

// Timeline replays sol for n people and returns the frames in order.
// A nil solution has no frames.
func Timeline(n int, sol *domain.Solution) []Frame {
	if sol == nil {
		return []Frame{}
	}

	frames := make([]Frame, 0, len(sol.Steps))
	state := domain.InitialState(n)
	clock := 0

	for i, st := range sol.Steps {
		state = state.Apply(domain.SetOf(st.Participants...))

		far := domain.Everyone(n) &^ state.PeopleOnStart
		frames = append(frames, Frame{
			Step:    i + 1,
			Group:   st,
			Start:   clock,
			End:     clock + st.Duration,
			Torch:   state.Torch.String(),
			OnStart: state.PeopleOnStart.Members(),
			OnFar:   far.Members(),
		})
		clock += st.Duration
	}

	return frames
}
