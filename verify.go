package sortbench

import (
	"fmt"
	"sort"
)

// The correctness suite. Independent of the benchmark engine; shares only
// the registry and the compatibility filter.

// VerifyConfig contains the sizes each (algorithm, scenario) pair is
// checked at.
type VerifyConfig struct {
	Sizes []int
}

// DefaultVerifyConfig covers the empty, singleton, pair, odd and
// medium-size edge cases.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{Sizes: []int{0, 1, 2, 17, 100}}
}

// CheckSorted verifies got is an ascending reference sort of input: same
// multiset of elements, properly ordered.
func CheckSorted(got, input []float64) error {
	if len(got) != len(input) {
		return fmt.Errorf("length changed: input %d elements, output %d", len(input), len(got))
	}

	want := make([]float64, len(input))
	copy(want, input)
	sort.Float64s(want)

	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("output wrong at index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}

// CheckNonMutating invokes fn on input and verifies the input instance is
// element-for-element identical to its pre-call snapshot.
func CheckNonMutating(fn SortFunc, input []float64) error {
	snapshot := make([]float64, len(input))
	copy(snapshot, input)

	_ = fn(input)

	for i := range snapshot {
		if input[i] != snapshot[i] {
			return fmt.Errorf("input mutated at index %d: was %v, now %v", i, snapshot[i], input[i])
		}
	}
	return nil
}

// VerifyAlgorithm checks one algorithm against every compatible scenario at
// every configured size: the output must equal a reference ascending sort
// of the input, and the input instance must be unchanged after the call.
// Returns the first failure with enough context to reproduce it.
func VerifyAlgorithm(alg Algorithm, catalog []Scenario, cfg VerifyConfig) error {
	for _, scn := range CompatibleScenarios(alg, catalog) {
		for _, size := range cfg.Sizes {
			input := scn.Generate(size)

			snapshot := make([]float64, len(input))
			copy(snapshot, input)

			got := alg.Fn(input)

			for i := range snapshot {
				if input[i] != snapshot[i] {
					return fmt.Errorf("%s on %s size %d: input mutated at index %d (was %v, now %v)",
						alg.Name, scn.Name, size, i, snapshot[i], input[i])
				}
			}
			if err := CheckSorted(got, input); err != nil {
				return fmt.Errorf("%s on %s size %d: %w", alg.Name, scn.Name, size, err)
			}
		}
	}
	return nil
}

// VerifyAll runs VerifyAlgorithm over the whole registry and collects every
// failure instead of stopping at the first, so one broken algorithm does
// not mask another.
func VerifyAll(registry *Registry, catalog []Scenario, cfg VerifyConfig) []error {
	var errs []error
	for _, alg := range registry.Algorithms() {
		if err := VerifyAlgorithm(alg, catalog, cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
