package domain

import "math/bits"

// MaxPeople is the widest puzzle a PeopleSet can represent.
const MaxPeople = 64

// Set of person indices packed into a bit pattern.
// Bit i is set when person i is a member.
type PeopleSet uint64

// Everyone returns the set {0, ..., n-1}.
func Everyone(n int) PeopleSet {
	if n <= 0 {
		return 0
	}
	if n >= MaxPeople {
		return ^PeopleSet(0)
	}
	return PeopleSet(1)<<uint(n) - 1
}

// SetOf builds a set from person indices. Out of range indices are ignored.
func SetOf(indices ...int) PeopleSet {
	var s PeopleSet
	for _, i := range indices {
		if i >= 0 && i < MaxPeople {
			s |= 1 << uint(i)
		}
	}
	return s
}

func (s PeopleSet) Has(i int) bool {
	if i < 0 || i >= MaxPeople {
		return false
	}
	return s&(1<<uint(i)) != 0
}

// Toggle flips membership of every person in group.
func (s PeopleSet) Toggle(group PeopleSet) PeopleSet { return s ^ group }

func (s PeopleSet) Len() int { return bits.OnesCount64(uint64(s)) }

func (s PeopleSet) Empty() bool { return s == 0 }

// Contains reports whether every member of group is in s.
func (s PeopleSet) Contains(group PeopleSet) bool { return s&group == group }

// Members returns the person indices in ascending order.
func (s PeopleSet) Members() []int {
	out := make([]int, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// Configuration of the puzzle at one instant.
// A person is on the far bank iff absent from PeopleOnStart; the torch is
// always with the group that moved last.
type WorldState struct {
	PeopleOnStart PeopleSet
	Torch         Side
}

// InitialState has everyone and the torch on the start bank.
func InitialState(n int) WorldState {
	return WorldState{PeopleOnStart: Everyone(n), Torch: Start}
}

// GoalState has nobody on the start bank and the torch on the far bank.
func GoalState() WorldState {
	return WorldState{PeopleOnStart: 0, Torch: Far}
}

func (w WorldState) IsGoal() bool { return w == GoalState() }

// SideOf reports the bank person i is on.
func (w WorldState) SideOf(i int) Side {
	if w.PeopleOnStart.Has(i) {
		return Start
	}
	return Far
}

// Eligible returns the people among n who share a bank with the torch.
func (w WorldState) Eligible(n int) PeopleSet {
	if w.Torch == Start {
		return w.PeopleOnStart & Everyone(n)
	}
	return ^w.PeopleOnStart & Everyone(n)
}

// Apply moves group across with the torch.
func (w WorldState) Apply(group PeopleSet) WorldState {
	return WorldState{
		PeopleOnStart: w.PeopleOnStart.Toggle(group),
		Torch:         w.Torch.Opposite(),
	}
}
