package services

import "bridge-torch-service/internal/domain"

// forEachGroup calls fn with every group of 1..maxSize people drawn from
// eligible. Groups are produced by size, then in ascending lexicographic
// order of their index tuples, so enumeration is reproducible.
func forEachGroup(eligible []int, maxSize int, fn func(group domain.PeopleSet, members []int)) {
	limit := min(maxSize, len(eligible))
	for k := 1; k <= limit; k++ {
		forEachCombination(eligible, k, fn)
	}
}

// forEachCombination enumerates the k-element combinations of items.
// The members slice passed to fn is reused between calls.
func forEachCombination(items []int, k int, fn func(group domain.PeopleSet, members []int)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	members := make([]int, k)

	for {
		var group domain.PeopleSet
		for i, j := range idx {
			members[i] = items[j]
			group |= domain.SetOf(items[j])
		}
		fn(group, members)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
