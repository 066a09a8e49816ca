package domain

// A named puzzle stored in the preset catalogue.
type Preset struct {
	Name        string
	Description string
	Puzzle      Puzzle
}
