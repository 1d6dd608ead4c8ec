package render

import "slices"

// dependencyOrder orders node indices so that each node i comes after every
// node in deps[i]. When several nodes are ready the smallest index goes
// first, so the order depends only on the input.
//
// Nodes that can never become ready, because they lie on a cycle or depend
// on one, are returned in stuck, ascending.
func dependencyOrder(deps [][]int) (order, stuck []int) {
	n := len(deps)
	pending := make([]int, n)
	dependents := make([][]int, n)

	for i, ds := range deps {
		for _, d := range slices.Compact(slices.Sorted(slices.Values(ds))) {
			pending[i]++
			dependents[d] = append(dependents[d], i)
		}
	}

	var ready []int

	for i := range n {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	order = make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		for _, j := range dependents[i] {
			pending[j]--
			if pending[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	for i := range n {
		if pending[i] > 0 {
			stuck = append(stuck, i)
		}
	}

	return order, stuck
}
