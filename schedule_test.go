package sortbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSizeSchedule_UnionDedupAscending verifies the static and geometric
// parts merge into one ascending, duplicate-free sequence.
func TestSizeSchedule_UnionDedupAscending(t *testing.T) {
	got := SizeSchedule([]int{100, 10, 500}, 500, 5_000, 2.0)
	assert.Equal(t, []int{10, 100, 500, 1_000, 2_000, 4_000}, got)
}

// TestSizeSchedule_DropsNonPositive verifies zero and negative entries
// never reach the orchestrator.
func TestSizeSchedule_DropsNonPositive(t *testing.T) {
	got := SizeSchedule([]int{0, -5, 3}, 0, 0, 2.0)
	assert.Equal(t, []int{3}, got)
}

// TestSizeSchedule_DegenerateGrowth verifies growth <= 1 contributes only
// the start size instead of looping forever.
func TestSizeSchedule_DegenerateGrowth(t *testing.T) {
	got := SizeSchedule(nil, 100, 1_000, 1.0)
	assert.Equal(t, []int{100}, got)

	got = SizeSchedule(nil, 100, 1_000, 0.5)
	assert.Equal(t, []int{100}, got)
}

// TestDefaultSizes sanity-checks the standard schedule.
func TestDefaultSizes(t *testing.T) {
	sizes := DefaultSizes()
	assert.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1], "schedule must strictly ascend")
	}
	assert.Equal(t, 10, sizes[0])
	assert.LessOrEqual(t, sizes[len(sizes)-1], 50_000)
}
