package sortbench

// Scenario is a named rule for generating test arrays with a particular
// statistical shape. Generate is a pure function of size plus the
// process-wide random source (unseeded, so repeated runs vary).
type Scenario struct {
	Name     string
	Kind     ElementKind
	Generate func(size int) []float64
}

// Default generation parameters. These shape the data, not the policy, so
// they stay package constants rather than Config fields.
const (
	defaultMaxMagnitude = 100_000
	defaultChaosPercent = 5
	defaultDistinct     = 10
	defaultDensity      = 0.05
)

// DefaultScenarios returns the standard catalog.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name: "random-integer",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return RandomArray(size, defaultMaxMagnitude, KindInteger)
			},
		},
		{
			Name: "random-float",
			Kind: KindFloat,
			Generate: func(size int) []float64 {
				return RandomArray(size, defaultMaxMagnitude, KindFloat)
			},
		},
		{
			Name: "sorted-ascending",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return SortedArray(size, KindInteger, false)
			},
		},
		{
			Name: "sorted-descending",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return SortedArray(size, KindInteger, true)
			},
		},
		{
			Name: "nearly-sorted",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return NearlySortedArray(size, defaultChaosPercent, false, KindInteger)
			},
		},
		{
			Name: "duplicate-heavy",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return DuplicateHeavyArray(size, defaultDistinct)
			},
		},
		{
			Name: "sparse",
			Kind: KindInteger,
			Generate: func(size int) []float64 {
				return SparseArray(size, defaultDensity, defaultMaxMagnitude)
			},
		},
	}
}

// CompatibleScenarios returns the subset of catalog the algorithm may be
// legally tested against. DomainNonNegativeIntegers restricts to
// integer-kind scenarios; DomainAll passes the catalog through unchanged.
// Pure function of its arguments; deterministic for a fixed catalog.
func CompatibleScenarios(alg Algorithm, catalog []Scenario) []Scenario {
	if alg.Domain != DomainNonNegativeIntegers {
		out := make([]Scenario, len(catalog))
		copy(out, catalog)
		return out
	}
	out := make([]Scenario, 0, len(catalog))
	for _, scn := range catalog {
		if scn.Kind == KindInteger {
			out = append(out, scn)
		}
	}
	return out
}
