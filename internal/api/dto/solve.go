package dto

import "bridge-torch-service/internal/render"

type SolveRequest struct {
	Times    []int `json:"times"`
	MaxGroup int   `json:"max_group"`
}

type StepResponse struct {
	Participants []int  `json:"participants"`
	Direction    string `json:"direction"`
	Duration     int    `json:"duration"`
}

// TotalTime is null when Found is false.
type SolveResponse struct {
	Found     bool           `json:"found"`
	TotalTime *int           `json:"total_time"`
	Cached    bool           `json:"cached"`
	Times     []int          `json:"times"`
	MaxGroup  int            `json:"max_group"`
	Steps     []StepResponse `json:"steps"`
	Timeline  []render.Frame `json:"timeline"`
}

type BatchSolveRequest struct {
	Puzzles []SolveRequest `json:"puzzles"`
}

type BatchSolveResponse struct {
	Results []SolveResponse `json:"results"`
}
