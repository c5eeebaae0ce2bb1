package sortbench

import (
	"testing"
	"time"
)

// TestSampleSizeFor_Monotonic verifies the ladder is non-increasing across
// sizes for the default breakpoints.
func TestSampleSizeFor_Monotonic(t *testing.T) {
	ladder := DefaultSampleLadder()
	sizes := []int{0, 1, 10, 49, 50, 100, 499, 500, 1_999, 2_000, 9_999, 10_000, 1_000_000}

	prev := -1
	for _, size := range sizes {
		n := SampleSizeFor(size, ladder)
		if n <= 0 {
			t.Fatalf("sample count must be positive, got %d at size %d", n, size)
		}
		if prev >= 0 && n > prev {
			t.Errorf("sample count increased: %d samples at size %d after %d", n, size, prev)
		}
		prev = n
	}

	if got := SampleSizeFor(10, ladder); got != 200 {
		t.Errorf("expected 200 samples under size 50, got %d", got)
	}
	if got := SampleSizeFor(10_000, ladder); got != 5 {
		t.Errorf("expected 5 samples at size >= 10000, got %d", got)
	}
}

// TestMeasure_Averages verifies sample accounting and the average formula.
func TestMeasure_Averages(t *testing.T) {
	alg := Algorithm{Name: "InsertionSort", Fn: InsertionSort, Domain: DomainAll}
	scn := Scenario{
		Name: "sorted-ascending",
		Kind: KindInteger,
		Generate: func(size int) []float64 {
			return SortedArray(size, KindInteger, false)
		},
	}

	m := Measure(alg, scn, 100, DefaultSampleLadder())

	if m.Samples != 100 {
		t.Errorf("expected 100 samples at size 100, got %d", m.Samples)
	}
	if m.Average < 0 || m.Total < 0 {
		t.Errorf("negative durations: avg=%v total=%v", m.Average, m.Total)
	}
	if want := m.Total / time.Duration(m.Samples); m.Average != want {
		t.Errorf("average mismatch: got %v, want %v", m.Average, want)
	}
	t.Logf("size 100: avg=%v total=%v samples=%d", m.Average, m.Total, m.Samples)
}

// TestMeasure_ZeroSamples verifies the division guard.
func TestMeasure_ZeroSamples(t *testing.T) {
	alg := Algorithm{Name: "NativeSort", Fn: NativeSort, Domain: DomainAll}
	scn := Scenario{
		Name:     "random-integer",
		Kind:     KindInteger,
		Generate: func(size int) []float64 { return RandomArray(size, 100, KindInteger) },
	}

	// A ladder whose first breakpoint covers everything with zero samples.
	ladder := []SampleBreakpoint{{MaxSize: 1 << 30, Samples: 0}}

	m := Measure(alg, scn, 100, ladder)
	if m.Samples != 0 || m.Average != 0 || m.Total != 0 {
		t.Errorf("expected zeroed measurement, got %+v", m)
	}
}

// TestMeasure_DoesNotMutateMaster verifies the per-sample clone isolates a
// deliberately mutating sort from the shared master array.
func TestMeasure_DoesNotMutateMaster(t *testing.T) {
	master := []float64{5, 4, 3, 2, 1}
	generated := false
	scn := Scenario{
		Name: "fixed",
		Kind: KindInteger,
		Generate: func(size int) []float64 {
			generated = true
			return master
		},
	}

	// In-place sort: would corrupt the master if Measure skipped the clone.
	mutating := Algorithm{
		Name: "InPlace",
		Fn: func(input []float64) []float64 {
			for i := 1; i < len(input); i++ {
				for j := i; j > 0 && input[j] < input[j-1]; j-- {
					input[j], input[j-1] = input[j-1], input[j]
				}
			}
			return input
		},
		Domain: DomainAll,
	}

	_ = Measure(mutating, scn, 5, DefaultSampleLadder())

	if !generated {
		t.Fatal("generator was never invoked")
	}
	want := []float64{5, 4, 3, 2, 1}
	for i := range want {
		if master[i] != want[i] {
			t.Fatalf("master array corrupted: %v", master)
		}
	}
}
