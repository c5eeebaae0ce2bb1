package sortbench

// SortFunc sorts a sequence of numbers into ascending order.
// Implementations return a new slice and must never mutate their input.
type SortFunc func(input []float64) []float64

// Domain restricts the data an algorithm may legally be tested against.
type Domain string

const (
	// DomainAll accepts any numeric input, including floats and negatives.
	DomainAll Domain = "ALL"

	// DomainNonNegativeIntegers accepts whole values >= 0 only.
	// Counting and radix sort index by value and cannot handle anything else.
	DomainNonNegativeIntegers Domain = "NON_NEGATIVE_INTEGERS"
)

// Algorithm is one entry in the benchmark catalog.
// Immutable once registered; Name is the display key and must be unique.
type Algorithm struct {
	Name   string
	Fn     SortFunc
	Domain Domain
}

// Registry is an ordered, fixed catalog of algorithms.
// Iteration order is registration order, which the orchestrator relies on.
type Registry struct {
	algorithms []Algorithm
	byName     map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register appends an algorithm to the catalog.
// Re-registering a name replaces the earlier entry in place, keeping its
// original position.
func (r *Registry) Register(alg Algorithm) {
	if i, ok := r.byName[alg.Name]; ok {
		r.algorithms[i] = alg
		return
	}
	r.byName[alg.Name] = len(r.algorithms)
	r.algorithms = append(r.algorithms, alg)
}

// Algorithms returns the catalog in registration order.
// The returned slice is a copy; the registry itself stays immutable.
func (r *Registry) Algorithms() []Algorithm {
	out := make([]Algorithm, len(r.algorithms))
	copy(out, r.algorithms)
	return out
}

// Lookup finds an algorithm by name.
func (r *Registry) Lookup(name string) (Algorithm, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Algorithm{}, false
	}
	return r.algorithms[i], true
}

// Len reports the number of registered algorithms.
func (r *Registry) Len() int { return len(r.algorithms) }

// DefaultRegistry returns the standard catalog of eleven sorts.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Algorithm{Name: "BubbleSort", Fn: BubbleSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "InsertionSort", Fn: InsertionSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "SelectionSort", Fn: SelectionSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "MergeSort", Fn: MergeSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "QuickSort", Fn: QuickSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "HeapSort", Fn: HeapSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "ShellSort", Fn: ShellSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "CountingSort", Fn: CountingSort, Domain: DomainNonNegativeIntegers})
	r.Register(Algorithm{Name: "RadixSort", Fn: RadixSort, Domain: DomainNonNegativeIntegers})
	r.Register(Algorithm{Name: "BucketSort", Fn: BucketSort, Domain: DomainAll})
	r.Register(Algorithm{Name: "NativeSort", Fn: NativeSort, Domain: DomainAll})
	return r
}
