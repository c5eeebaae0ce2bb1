package sortbench

import "sort"

// SizeSchedule builds the ascending, deduplicated size sequence the
// orchestrator walks: the union of a static list and a geometric
// progression from start to max by growth. Zero and negative entries are
// dropped; growth <= 1 contributes only the start size.
func SizeSchedule(static []int, start, max int, growth float64) []int {
	seen := make(map[int]bool)
	var out []int

	add := func(n int) {
		if n > 0 && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	for _, n := range static {
		add(n)
	}
	if start > 0 && growth > 1 {
		for n := float64(start); int(n) <= max; n *= growth {
			add(int(n))
		}
	} else if start > 0 && start <= max {
		add(start)
	}

	sort.Ints(out)
	return out
}

// DefaultSizes is the standard schedule: a handful of small fixed sizes
// plus 500 growing 2.5x up to 50000.
func DefaultSizes() []int {
	return SizeSchedule([]int{10, 25, 100, 250}, 500, 50_000, 2.5)
}
