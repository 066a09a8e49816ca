package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoPeople        = errors.New("at least one person is required")
	ErrNonPositiveTime = errors.New("crossing times must be positive")
	ErrMaxGroupRange   = errors.New("max group size out of range")
	ErrTooManyPeople   = errors.New("too many people")
)

// A bridge and torch instance: per-person crossing times and the most
// people allowed on the bridge at once.
type Puzzle struct {
	Times    []int
	MaxGroup int
}

// Validate checks the solver preconditions. maxPeople bounds the search
// size; values outside 1..MaxPeople fall back to MaxPeople.
func (p Puzzle) Validate(maxPeople int) error {
	if maxPeople <= 0 || maxPeople > MaxPeople {
		maxPeople = MaxPeople
	}

	n := len(p.Times)
	if n == 0 {
		return fmt.Errorf("validate puzzle: %w", ErrNoPeople)
	}
	if n > maxPeople {
		return fmt.Errorf("validate puzzle: %w: %d people, limit is %d", ErrTooManyPeople, n, maxPeople)
	}

	for i, t := range p.Times {
		if t <= 0 {
			return fmt.Errorf("validate puzzle: %w: person %d has time %d", ErrNonPositiveTime, i+1, t)
		}
	}

	if p.MaxGroup < 1 || p.MaxGroup > n {
		return fmt.Errorf("validate puzzle: %w: max group %d, want 1..%d", ErrMaxGroupRange, p.MaxGroup, n)
	}

	return nil
}

// Key is the canonical identity of the puzzle, e.g. "1,2,5,10/2".
// Times keep their order since person identity is the index.
func (p Puzzle) Key() string {
	return FormatTimes(p.Times) + "/" + strconv.Itoa(p.MaxGroup)
}

// FormatTimes joins crossing times with commas.
func FormatTimes(times []int) string {
	var b strings.Builder
	for i, t := range times {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}
