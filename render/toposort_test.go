package render

import (
	"slices"
	"testing"
)

func TestDependencyOrder(t *testing.T) {
	tests := []struct {
		name  string
		deps  [][]int
		order []int
		stuck []int
	}{
		{name: "empty"},
		{name: "chain", deps: [][]int{{2}, {0}, nil}, order: []int{2, 0, 1}},
		{name: "duplicate edges", deps: [][]int{nil, {0, 0}}, order: []int{0, 1}},
		{name: "smallest ready first", deps: [][]int{{3}, nil, nil, nil}, order: []int{1, 2, 3, 0}},
		{name: "self cycle", deps: [][]int{{0}}, stuck: []int{0}},
		{name: "cycle and dependent", deps: [][]int{nil, {2}, {1}, {1}}, order: []int{0}, stuck: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, stuck := dependencyOrder(tt.deps)

			if !slices.Equal(order, tt.order) {
				t.Errorf("order: expected %v, got %v", tt.order, order)
			}

			if !slices.Equal(stuck, tt.stuck) {
				t.Errorf("stuck: expected %v, got %v", tt.stuck, stuck)
			}
		})
	}
}
