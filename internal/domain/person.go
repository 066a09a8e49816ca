package domain

import "fmt"

// Represents a single person waiting to cross the bridge.
// A Person is identified by its index in the puzzle's time list and keeps
// the time it takes to cross alone. A group crosses at the pace of its
// slowest member.
type Person struct {
	Index        int
	CrossingTime int
}

// Build the people of a puzzle from per-person crossing times.
func PeopleFromTimes(times []int) []Person {
	people := make([]Person, 0, len(times))
	for i, t := range times {
		people = append(people, Person{Index: i, CrossingTime: t})
	}
	return people
}

// Label renders the person the way step lists show them, e.g. "P1(5)".
func (p Person) Label() string {
	return fmt.Sprintf("P%d(%d)", p.Index+1, p.CrossingTime)
}
