package services

import (
	"container/heap"
	"slices"

	"bridge-torch-service/internal/domain"
)

// SolveCrossing finds a minimum-time crossing schedule.
//
// The search is Dijkstra over states (people on the start bank, torch
// side). From each state every group of 1..maxGroup people standing with
// the torch may cross, at the pace of its slowest member. Stale queue
// entries are skipped lazily instead of being decreased in place.
//
// It returns false when no schedule exists. An empty times slice yields a
// zero-cost solution without steps. Inputs the search cannot represent
// (maxGroup < 1, more than domain.MaxPeople people, negative times) also
// report false instead of failing.
func SolveCrossing(times []int, maxGroup int) (*domain.Solution, bool) {
	n := len(times)
	if n == 0 {
		return &domain.Solution{TotalTime: 0, Steps: []domain.CrossingStep{}}, true
	}
	if maxGroup < 1 || n > domain.MaxPeople {
		return nil, false
	}
	for _, t := range times {
		if t < 0 {
			return nil, false
		}
	}

	s := &crossingSearch{
		times:    times,
		maxGroup: maxGroup,
		start:    domain.InitialState(n),
		goal:     domain.GoalState(),
		dist:     make(map[domain.WorldState]int),
		prev:     make(map[domain.WorldState]predecessor),
	}
	return s.run()
}

// predecessor records the edge that reached a state at its best known cost.
type predecessor struct {
	from  domain.WorldState
	group domain.PeopleSet
}

// crossingSearch holds the mutable state owned by one SolveCrossing call.
type crossingSearch struct {
	times    []int
	maxGroup int
	start    domain.WorldState
	goal     domain.WorldState

	dist map[domain.WorldState]int
	prev map[domain.WorldState]predecessor
	pq   statePQ
}

func (s *crossingSearch) run() (*domain.Solution, bool) {
	s.dist[s.start] = 0
	heap.Init(&s.pq)
	s.push(s.start, 0)

	n := len(s.times)
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*stateItem)

		// Lazy deletion: a cheaper path to this state was already found.
		if best, ok := s.dist[item.state]; ok && best < item.cost {
			continue
		}

		if item.state == s.goal {
			return s.reconstruct(item.cost), true
		}

		eligible := item.state.Eligible(n).Members()
		forEachGroup(eligible, s.maxGroup, func(group domain.PeopleSet, members []int) {
			next := item.state.Apply(group)
			cost := item.cost + s.slowest(members)

			if best, ok := s.dist[next]; ok && cost >= best {
				return
			}
			s.dist[next] = cost
			s.prev[next] = predecessor{from: item.state, group: group}
			s.push(next, cost)
		})
	}

	return nil, false
}

func (s *crossingSearch) slowest(members []int) int {
	t := 0
	for _, p := range members {
		t = max(t, s.times[p])
	}
	return t
}

func (s *crossingSearch) push(state domain.WorldState, cost int) {
	heap.Push(&s.pq, &stateItem{state: state, cost: cost})
}

// reconstruct walks predecessors from the goal back to the start, then
// replays the groups forward to assign directions.
func (s *crossingSearch) reconstruct(total int) *domain.Solution {
	groups := []domain.PeopleSet{}
	for cur := s.goal; cur != s.start; {
		p := s.prev[cur]
		groups = append(groups, p.group)
		cur = p.from
	}
	slices.Reverse(groups)

	steps := make([]domain.CrossingStep, 0, len(groups))
	state := s.start
	for _, g := range groups {
		members := g.Members()
		steps = append(steps, domain.CrossingStep{
			Participants: members,
			Direction:    domain.DirectionFrom(state.Torch),
			Duration:     s.slowest(members),
		})
		state = state.Apply(g)
	}

	return &domain.Solution{TotalTime: total, Steps: steps}
}

// stateItem is a queue entry: a state and the cost it was reached with.
type stateItem struct {
	state domain.WorldState
	cost  int
}

// statePQ is a min-heap ordered by cost, then by the start-bank bit
// pattern, then by torch side, so equal-cost entries pop in a fixed order.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.state.PeopleOnStart != b.state.PeopleOnStart {
		return a.state.PeopleOnStart < b.state.PeopleOnStart
	}
	return a.state.Torch < b.state.Torch
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
