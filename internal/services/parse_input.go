package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bridge-torch-service/internal/domain"
)

var (
	ErrInvalidTimes   = errors.New("enter comma-separated integers for times")
	ErrCountMismatch  = errors.New("times count must equal total number of people")
	ErrInvalidCount   = errors.New("enter a valid number of people")
	ErrInvalidMaxSize = errors.New("enter a valid max crossing size")
)

// ParseTimes reads comma-separated crossing times such as "1, 2, 5, 10".
// Empty fields are skipped.
func ParseTimes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("parse times: %w", domain.ErrNoPeople)
	}

	times := make([]int, 0, strings.Count(s, ",")+1)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		t, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse times: %w: %q", ErrInvalidTimes, field)
		}
		times = append(times, t)
	}

	if len(times) == 0 {
		return nil, fmt.Errorf("parse times: %w", domain.ErrNoPeople)
	}

	return times, nil
}

// ParsePuzzle builds a Puzzle from free-text form fields. count may be
// empty, in which case the number of parsed times is used. The result is
// validated against maxPeople.
func ParsePuzzle(count, times, maxGroup string, maxPeople int) (domain.Puzzle, error) {
	ts, err := ParseTimes(times)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("parse puzzle: %w", err)
	}

	if c := strings.TrimSpace(count); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil || n <= 0 {
			return domain.Puzzle{}, fmt.Errorf("parse puzzle: %w: %q", ErrInvalidCount, c)
		}
		if n != len(ts) {
			return domain.Puzzle{}, fmt.Errorf("parse puzzle: %w: %d people, %d times", ErrCountMismatch, n, len(ts))
		}
	}

	k, err := strconv.Atoi(strings.TrimSpace(maxGroup))
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("parse puzzle: %w: %q", ErrInvalidMaxSize, maxGroup)
	}

	p := domain.Puzzle{Times: ts, MaxGroup: k}
	if err := p.Validate(maxPeople); err != nil {
		return domain.Puzzle{}, fmt.Errorf("parse puzzle: %w", err)
	}

	return p, nil
}
