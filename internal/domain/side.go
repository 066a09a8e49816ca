package domain

import (
	"encoding/json"
	"fmt"
)

// A bank of the river.
type Side uint8

const (
	Start Side = iota
	Far
)

func (s Side) Opposite() Side {
	if s == Start {
		return Far
	}
	return Start
}

func (s Side) String() string {
	if s == Start {
		return "start"
	}
	return "far"
}

// Direction of a single crossing, derived from the bank the torch departs.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// DirectionFrom returns the direction of a crossing leaving side s.
func DirectionFrom(s Side) Direction {
	if s == Start {
		return Forward
	}
	return Backward
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Arrow renders the direction as in text step lists.
func (d Direction) Arrow() string {
	if d == Forward {
		return "->"
	}
	return "<-"
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("direction: %w", err)
	}

	switch s {
	case "forward":
		*d = Forward
	case "backward":
		*d = Backward
	default:
		return fmt.Errorf("direction: unknown value %q", s)
	}
	return nil
}
