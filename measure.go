package sortbench

import "time"

// SampleBreakpoint maps an exclusive size bound to a sample count.
// Breakpoints are evaluated in order; the first one whose MaxSize exceeds
// the array size wins.
type SampleBreakpoint struct {
	MaxSize int // exclusive upper bound on array size
	Samples int
}

// DefaultSampleLadder trades statistical stability against total run time:
// small arrays are cheap so we average many samples, large arrays dominate
// wall-clock cost so we take few.
func DefaultSampleLadder() []SampleBreakpoint {
	return []SampleBreakpoint{
		{MaxSize: 50, Samples: 200},
		{MaxSize: 500, Samples: 100},
		{MaxSize: 2_000, Samples: 25},
		{MaxSize: 10_000, Samples: 10},
	}
}

// ladderFloor is the sample count beyond the last breakpoint.
const ladderFloor = 5

// SampleSizeFor returns the sample count for an array of the given size.
// Non-increasing as size grows, for any ladder sorted by MaxSize.
func SampleSizeFor(size int, ladder []SampleBreakpoint) int {
	for _, bp := range ladder {
		if size < bp.MaxSize {
			return bp.Samples
		}
	}
	return ladderFloor
}

// Measurement is the outcome of one trial: repeated invocations of one
// algorithm on one (scenario, size) pair.
type Measurement struct {
	Average time.Duration // Total / Samples; zero when Samples == 0
	Total   time.Duration // Sum of all sample durations
	Samples int           // Invocations averaged over
}

// Measure times the algorithm against data from the scenario at the given
// size. One master array is generated up front; every sample sorts a fresh
// clone so the algorithm can never corrupt shared input across samples.
//
// Measure never inspects the algorithm's output for correctness (that is
// the verify suite's job) and retains nothing across calls.
func Measure(alg Algorithm, scn Scenario, size int, ladder []SampleBreakpoint) Measurement {
	samples := SampleSizeFor(size, ladder)

	master := scn.Generate(size)

	var total time.Duration
	for s := 0; s < samples; s++ {
		input := clone(master)
		start := time.Now()
		_ = alg.Fn(input)
		total += time.Since(start)
	}

	m := Measurement{Total: total, Samples: samples}
	if samples > 0 {
		m.Average = total / time.Duration(samples)
	}
	return m
}
